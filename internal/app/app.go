// internal/app/app.go
package app

import (
	"context"
	"errors"

	"github.com/bethropolis/base16-shell-preview/internal/config"
	"github.com/bethropolis/base16-shell-preview/internal/event"
	"github.com/bethropolis/base16-shell-preview/internal/input"
	"github.com/bethropolis/base16-shell-preview/internal/install"
	"github.com/bethropolis/base16-shell-preview/internal/logger"
	"github.com/bethropolis/base16-shell-preview/internal/selector"
	"github.com/bethropolis/base16-shell-preview/internal/statusbar"
	"github.com/bethropolis/base16-shell-preview/internal/theme"
	"github.com/bethropolis/base16-shell-preview/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Previewer runs theme scripts against the terminal.
type Previewer interface {
	// Preview starts the script without waiting for it.
	Preview(path string) error
	// Apply runs the script to completion.
	Apply(ctx context.Context, path string) error
}

// Installer makes a theme the persistent default.
type Installer interface {
	Install(ctx context.Context, name, path string) (install.Result, error)
}

// Options holds the collaborators and settings for an App.
type Options struct {
	Themes  theme.Collection
	SortKey theme.SortKey

	// RestorePath is the script that was active before the session, applied
	// again on quit. Empty when there was none.
	RestorePath string

	ListWidth    int
	PreviewWidth int

	Previewer Previewer
	Installer Installer
	// Copy puts text on the system clipboard. Nil disables copying.
	Copy func(string) error
}

// State is the controller state.
type State int

const (
	StateBrowsing State = iota
	StateExited
)

// exitReason says how the browsing state was left.
type exitReason int

const (
	exitQuit exitReason = iota
	exitInterrupt
	exitConfirm
	exitFatal
)

func (r exitReason) String() string {
	switch r {
	case exitInterrupt:
		return "interrupt"
	case exitConfirm:
		return "confirm"
	case exitFatal:
		return "fatal"
	default:
		return "quit"
	}
}

// App is the previewer's controller: it owns the selection and reacts to
// terminal events one at a time.
type App struct {
	tuiManager   *tui.TUI
	opts         Options
	selector     *selector.Selector[*theme.Theme]
	input        *input.InputProcessor
	eventManager *event.Manager
	statusBar    *statusbar.StatusBar

	state State
	exit  exitReason
}

// New creates an App drawing on tuiManager.
func New(tuiManager *tui.TUI, opts Options) *App {
	if opts.ListWidth <= 0 {
		opts.ListWidth = config.DefaultListWidth
	}
	if opts.PreviewWidth <= 0 {
		opts.PreviewWidth = config.DefaultPreviewWidth
	}

	a := &App{
		tuiManager:   tuiManager,
		opts:         opts,
		selector:     selector.New([]*theme.Theme(opts.Themes), config.NumColors),
		input:        input.NewInputProcessor(),
		eventManager: event.NewManager(),
		statusBar:    statusbar.New(statusbar.DefaultConfig()),
		state:        StateBrowsing,
	}
	a.statusBar.SetSortOrder(opts.SortKey.String())

	a.eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChangedForStatus)
	a.eventManager.Subscribe(event.TypeThemePreviewed, a.handleThemePreviewedForStatus)
	a.eventManager.Subscribe(event.TypeAppQuit, a.handleAppQuitForLog)
	return a
}

// Events exposes the event bus so callers can observe the session.
func (a *App) Events() *event.Manager {
	return a.eventManager
}

// State returns the current controller state.
func (a *App) State() State {
	return a.state
}

// Run takes over the terminal until the user quits or confirms a theme. The
// screen is released before Run returns, whatever the outcome, and only then
// are the final theme scripts run so their output reaches the normal
// terminal.
func (a *App) Run(ctx context.Context) error {
	screen := a.tuiManager.GetScreen()
	stopSignals := forwardSignals(screen)
	defer stopSignals()

	loopErr := func() error {
		defer a.tuiManager.Close()
		return a.loop()
	}()
	a.state = StateExited

	return a.finish(ctx, loopErr)
}

// loop is the browsing state: one event in, one reaction out.
func (a *App) loop() error {
	if err := a.checkSize(); err != nil {
		a.exit = exitFatal
		return err
	}

	a.selectionChanged()
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.draw()

	for a.state == StateBrowsing {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			a.exit = exitQuit
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			if err := a.checkSize(); err != nil {
				a.exit = exitFatal
				return err
			}
			a.draw()
		case *tcell.EventInterrupt:
			logger.Infof("Received %v, restoring previous theme", ev.Data())
			a.leave(exitInterrupt)
		case *tcell.EventKey:
			a.handleKey(ev)
		}
	}
	return nil
}

func (a *App) handleKey(ev *tcell.EventKey) {
	action := a.input.ProcessEvent(ev)
	logger.DebugTagf("input", "Key %v -> %v", ev.Name(), action)

	switch {
	case action.IsNavigation():
		a.navigate(action)
	case action == input.ActionConfirm:
		if _, ok := a.selector.Selected(); !ok {
			a.statusBar.SetTemporaryMessage("nothing to apply")
			a.draw()
			return
		}
		a.leave(exitConfirm)
	case action == input.ActionQuit:
		a.leave(exitQuit)
	case action == input.ActionInterrupt:
		a.leave(exitInterrupt)
	case action == input.ActionCopyName:
		a.copySelectedName()
		a.draw()
	}
}

func (a *App) leave(reason exitReason) {
	a.exit = reason
	a.state = StateExited
}

// navigate moves the selection and previews the new theme, if it changed.
func (a *App) navigate(action input.Action) {
	before := a.selector.Index()

	switch action {
	case input.ActionMoveUp:
		a.selector.MoveUp()
	case input.ActionMoveDown:
		a.selector.MoveDown()
	case input.ActionMovePageUp:
		a.selector.PageUp()
	case input.ActionMovePageDown:
		a.selector.PageDown()
	case input.ActionMoveStart:
		a.selector.GoToStart()
	case input.ActionMoveEnd:
		a.selector.GoToEnd()
	}

	if a.selector.Index() != before {
		a.selectionChanged()
	}
	a.draw()
}

// selectionChanged previews the highlighted theme and announces it.
func (a *App) selectionChanged() {
	t, ok := a.selector.Selected()
	if !ok {
		return
	}

	a.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{
		Name:  t.Name,
		Path:  t.Path,
		Index: a.selector.Index(),
		Count: a.selector.Len(),
	})

	err := a.opts.Previewer.Preview(t.Path)
	if err != nil {
		logger.Warnf("Preview of '%s' failed: %v", t.Name, err)
	}
	a.eventManager.Dispatch(event.TypeThemePreviewed, event.ThemePreviewedData{Name: t.Name, Err: err})
}

func (a *App) copySelectedName() {
	t, ok := a.selector.Selected()
	if !ok {
		return
	}
	if a.opts.Copy == nil {
		a.statusBar.SetTemporaryMessage("clipboard not available")
		return
	}
	if err := a.opts.Copy(t.Name); err != nil {
		logger.Warnf("Copying '%s' failed: %v", t.Name, err)
		a.statusBar.SetTemporaryMessage("copy failed: %v", err)
		return
	}
	a.statusBar.SetTemporaryMessage("copied %s", t.Name)
}

func (a *App) checkSize() error {
	w, h := a.tuiManager.Size()
	minCols := a.opts.ListWidth + a.opts.PreviewWidth
	if h < config.NumColors || w < minCols {
		return &TerminalSizeError{Rows: h, Cols: w, MinRows: config.NumColors, MinCols: minCols}
	}
	return nil
}

// finish runs after the screen is released.
func (a *App) finish(ctx context.Context, loopErr error) error {
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Reason: a.exit.String()})

	if a.exit != exitConfirm {
		a.restore(ctx)
		return loopErr
	}

	t, _ := a.selector.Selected()
	res, err := a.opts.Installer.Install(ctx, t.Name, t.Path)
	if err != nil {
		a.restore(ctx)
		return &InstallError{Theme: t.Name, Err: err}
	}
	a.eventManager.Dispatch(event.TypeThemeInstalled, event.ThemeInstalledData{
		Name:       t.Name,
		LinkPath:   res.LinkPath,
		HookErrors: res.HookErrors,
	})

	if err := a.opts.Previewer.Apply(ctx, t.Path); err != nil {
		logger.Warnf("Applying '%s' failed: %v", t.Name, err)
	}
	return nil
}

// restore re-applies the theme that was active before the session.
func (a *App) restore(ctx context.Context) {
	if a.opts.RestorePath == "" {
		logger.Debugf("No previous theme to restore")
		return
	}
	if err := a.opts.Previewer.Apply(ctx, a.opts.RestorePath); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warnf("Restoring '%s' failed: %v", a.opts.RestorePath, err)
		}
	}
}
