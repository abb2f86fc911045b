// Package shell runs base16 theme scripts, which set the terminal palette by
// printing escape sequences.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// Runner executes theme scripts with a command interpreter.
type Runner struct {
	Shell  string
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner writing to the process's own terminal.
func NewRunner(shell string) *Runner {
	return &Runner{Shell: shell, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *Runner) command(ctx context.Context, path string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Shell, path)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

// Preview starts the script and returns without waiting for it to finish.
// The process is reaped in the background.
func (r *Runner) Preview(path string) error {
	cmd := r.command(context.Background(), path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start '%s %s': %w", r.Shell, path, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Warnf("Preview of '%s' failed: %v", path, err)
		}
	}()
	return nil
}

// Apply runs the script and waits for it to exit.
func (r *Runner) Apply(ctx context.Context, path string) error {
	if err := r.command(ctx, path).Run(); err != nil {
		return fmt.Errorf("failed to run '%s %s': %w", r.Shell, path, err)
	}
	return nil
}
