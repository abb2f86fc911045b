package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigurationError reports a setup problem found before the terminal is
// taken over.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Paths is the resolved filesystem layout the previewer works against.
type Paths struct {
	Root       string // base16-shell checkout
	ScriptsDir string // directory holding the theme scripts
	ThemeLink  string // symlink to the active theme
	HooksDir   string // optional, empty when unset
}

// ResolvePaths locates the theme repository. The repository root comes from
// $BASE16_SHELL, the config file, or is inferred from the theme link target
// (<root>/scripts/<theme>), in that order.
func ResolvePaths(cfg PathsConfig, getenv func(string) string) (Paths, error) {
	link, err := ExpandHome(cfg.ThemeLink)
	if err != nil {
		return Paths{}, &ConfigurationError{Msg: "cannot expand theme link path", Err: err}
	}

	p := Paths{
		ThemeLink: link,
		HooksDir:  firstNonEmpty(getenv(HooksDirEnv), cfg.HooksDir),
	}
	if p.HooksDir != "" {
		if p.HooksDir, err = ExpandHome(p.HooksDir); err != nil {
			return Paths{}, &ConfigurationError{Msg: "cannot expand hooks directory", Err: err}
		}
	}

	root := firstNonEmpty(getenv(RepositoryEnv), cfg.Base16Shell)
	if root == "" {
		root, err = rootFromLink(link)
		if err != nil {
			return Paths{}, err
		}
	}
	if p.Root, err = ExpandHome(root); err != nil {
		return Paths{}, &ConfigurationError{Msg: "cannot expand repository path", Err: err}
	}
	p.ScriptsDir = filepath.Join(p.Root, ScriptsDirName)
	return p, nil
}

func rootFromLink(link string) (string, error) {
	missing := &ConfigurationError{
		Msg: fmt.Sprintf("please set the %s environment variable to the local repository path.", RepositoryEnv),
	}

	info, err := os.Lstat(link)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return "", missing
	}
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		missing.Err = err
		return "", missing
	}
	return filepath.Dir(filepath.Dir(target)), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("home directory is unknown")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
