// cmd/base16-shell-preview/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/base16-shell-preview/internal/app"
	"github.com/bethropolis/base16-shell-preview/internal/config"
	"github.com/bethropolis/base16-shell-preview/internal/install"
	"github.com/bethropolis/base16-shell-preview/internal/logger"
	"github.com/bethropolis/base16-shell-preview/internal/shell"
	"github.com/bethropolis/base16-shell-preview/internal/theme"
	"github.com/bethropolis/base16-shell-preview/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var appVersion = "1.0.1"

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   "base16-shell-preview",
	Short: "Browse and preview base16 shell themes",
	Long: `Browse the base16-shell theme scripts and preview each one live in the
current terminal.

Keys:
  up/down        move one theme
  pgup/pgdn      move one page
  home/end       first/last theme
  enter          make the highlighted theme the default and exit
  y              copy the highlighted theme name
  q, ctrl+c      exit and restore the previous theme

The repository is found through $BASE16_SHELL, or from the ~/.base16_theme
link. Executables in $BASE16_SHELL_HOOKS run after a theme is made default.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Version = appVersion
	flags.DefineFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath(os.Getenv), &flags)
	if err != nil {
		return err
	}

	closeLog, err := initLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Infof("Starting %s %s", config.AppName, appVersion)
	for _, key := range cfg.UnknownKeys {
		logger.Warnf("Unknown config key '%s'", key)
	}

	paths, err := config.ResolvePaths(cfg.Paths, os.Getenv)
	if err != nil {
		return err
	}
	logger.Debugf("Repository: %s, link: %s, hooks: %q", paths.Root, paths.ThemeLink, paths.HooksDir)

	sortKey := theme.SortByName
	if cfg.SortByBackground() {
		sortKey = theme.SortByBackground
	}
	themes, err := theme.Load(paths.ScriptsDir, sortKey)
	if err != nil {
		if errors.Is(err, theme.ErrNotFound) {
			return &config.ConfigurationError{
				Msg: fmt.Sprintf("no theme scripts in '%s', check %s", paths.ScriptsDir, config.RepositoryEnv),
				Err: err,
			}
		}
		return err
	}
	logger.Infof("Loaded %d themes sorted by %s", len(themes), sortKey)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return &config.ConfigurationError{Msg: "stdin and stdout must be a terminal"}
	}

	ui, err := tui.New()
	if err != nil {
		return err
	}

	previewer := app.New(ui, app.Options{
		Themes:       themes,
		SortKey:      sortKey,
		RestorePath:  activeTheme(paths.ThemeLink),
		ListWidth:    cfg.Preview.ListWidth,
		PreviewWidth: cfg.Preview.PreviewWidth,
		Previewer:    shell.NewRunner(cfg.Preview.Shell),
		Installer:    &install.Installer{LinkPath: paths.ThemeLink, HooksDir: paths.HooksDir},
		Copy:         copyFunc(),
	})

	if err := previewer.Run(context.Background()); err != nil {
		logger.Errorf("Previewer exited with error: %v", err)
		return err
	}
	logger.Infof("%s finished", config.AppName)
	return nil
}

// initLogger points the logger at the configured file. Without a file all
// output is discarded; the terminal is busy drawing the previewer.
func initLogger(cfg logger.Config) (func(), error) {
	if cfg.File == "" {
		logger.Init(cfg, nil)
		return func() {}, nil
	}

	path, err := config.ExpandHome(cfg.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	logger.Init(cfg, logFile)
	return func() { logFile.Close() }, nil
}

// activeTheme resolves the theme link to the script it names, or "" when
// there is no usable link.
func activeTheme(link string) string {
	target, err := filepath.EvalSymlinks(link)
	if err != nil {
		logger.Debugf("No active theme at '%s': %v", link, err)
		return ""
	}
	return target
}

func copyFunc() func(string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll
}
