package app

import (
	"github.com/bethropolis/base16-shell-preview/internal/config"
	"github.com/bethropolis/base16-shell-preview/internal/event"
	"github.com/bethropolis/base16-shell-preview/internal/logger"
	"github.com/bethropolis/base16-shell-preview/internal/tui"
)

// draw redraws the list, the preview and the status bar, in that order.
func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	visible := a.selector.Visible()
	names := make([]string, len(visible))
	for i, t := range visible {
		names[i] = t.Name
	}

	a.tuiManager.Clear()
	tui.DrawList(screen, tui.Rect{Width: a.opts.ListWidth, Height: config.NumColors}, names, a.selector.Row())
	tui.DrawPreview(screen, tui.Rect{X: a.opts.ListWidth, Width: a.opts.PreviewWidth, Height: config.NumColors}, config.NumColors)
	a.statusBar.Draw(screen, config.NumColors, width, height)
	a.tuiManager.Show()

	logger.DebugTagf("draw", "Drew offset=%d row=%d on %dx%d", a.selector.Offset(), a.selector.Row(), width, height)
}

func (a *App) handleSelectionChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionChangedData); ok {
		bg := ""
		if t, found := a.opts.Themes.Find(data.Name); found {
			bg = t.BackgroundHex()
		}
		a.statusBar.SetSelection(data.Name, bg, data.Index, data.Count)
	}
	return false
}

func (a *App) handleThemePreviewedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.ThemePreviewedData); ok && data.Err != nil {
		a.statusBar.SetTemporaryMessage("preview of %s failed", data.Name)
	}
	return false
}

func (a *App) handleAppQuitForLog(e event.Event) bool {
	if data, ok := e.Data.(event.AppQuitData); ok {
		logger.Infof("Leaving previewer (%s)", data.Reason)
	}
	return false
}
