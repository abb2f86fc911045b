// Package install makes a theme the active one: it points the theme link at
// the script and runs the user's hooks.
package install

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// Installer persists the chosen theme.
type Installer struct {
	LinkPath string // usually ~/.base16_theme
	HooksDir string // optional
}

// Result reports what happened during Install.
type Result struct {
	LinkPath   string
	HooksRun   []string
	HookErrors []error
}

// Install replaces the theme link with one pointing at path, then runs the
// hooks with name exported. Only a failure to replace the link is returned as
// an error; hook failures are collected in the result.
func (in *Installer) Install(ctx context.Context, name, path string) (Result, error) {
	res := Result{LinkPath: in.LinkPath}

	if err := os.Remove(in.LinkPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return res, fmt.Errorf("failed to remove theme link '%s': %w", in.LinkPath, err)
	}
	if err := os.Symlink(path, in.LinkPath); err != nil {
		return res, fmt.Errorf("failed to link '%s' to '%s': %w", in.LinkPath, path, err)
	}
	logger.Infof("Theme link '%s' now points at '%s'", in.LinkPath, path)

	if in.HooksDir == "" {
		return res, nil
	}
	res.HooksRun, res.HookErrors = RunHooks(ctx, in.HooksDir, name)
	if len(res.HookErrors) > 0 {
		logger.Warnf("%d hook(s) failed: %v", len(res.HookErrors), errors.Join(res.HookErrors...))
	}
	return res, nil
}
