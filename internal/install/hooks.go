package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bethropolis/base16-shell-preview/internal/config"
	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// RunHooks runs every regular executable file in dir, in name order, with
// BASE16_THEME set to theme. Output is discarded. Each hook runs regardless
// of earlier failures. A missing or unreadable dir runs nothing.
func RunHooks(ctx context.Context, dir, theme string) (ran []string, errs []error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Debugf("Hooks directory '%s' not usable, skipping hooks", dir)
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read hooks directory '%s': %w", dir, err)}
	}

	env := append(os.Environ(), config.ThemeNameEnv+"="+theme)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isExecutableFile(path) {
			continue
		}

		cmd := exec.CommandContext(ctx, path)
		cmd.Env = env
		cmd.Stdout = nil // os/exec connects nil to the null device
		cmd.Stderr = nil

		ran = append(ran, path)
		if err := cmd.Run(); err != nil {
			errs = append(errs, fmt.Errorf("hook '%s': %w", entry.Name(), err))
			continue
		}
		logger.DebugTagf("hooks", "Hook '%s' finished", entry.Name())
	}
	return ran, errs
}

// isExecutableFile follows symlinks, like the shell would.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
