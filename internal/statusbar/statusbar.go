// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig uses reverse video so the bar follows whatever palette the
// previewed theme has loaded.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Reverse(true),
		StyleMessage:   tcell.StyleDefault.Reverse(true).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the line under the list and preview panes.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	themeName  string
	background string
	index      int
	count      int
	sortOrder  string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetSelection updates the highlighted theme shown in the bar.
func (sb *StatusBar) SetSelection(name, background string, index, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.themeName = name
	sb.background = background
	sb.index = index
	sb.count = count
}

// SetSortOrder records the order the list is sorted by.
func (sb *StatusBar) SetSortOrder(order string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.sortOrder = order
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// Text returns what the bar currently shows and whether it is a message.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	if sb.count == 0 {
		return "no themes found -- q quit", false
	}
	text := fmt.Sprintf("%s (%d/%d)", sb.themeName, sb.index+1, sb.count)
	if sb.background != "" {
		text += " bg " + sb.background
	}
	if sb.sortOrder != "" {
		text += " -- sorted by " + sb.sortOrder
	}
	return text + " -- enter apply, q quit", false
}

// Draw renders the bar on row y. Nothing is drawn when y is off screen.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width, height int) {
	if y < 0 || y >= height || width <= 0 {
		return
	}

	text, isMessage := sb.Text()
	style := sb.config.StyleDefault
	if isMessage {
		style = sb.config.StyleMessage
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(currentX, y, runes[0], runes[1:], style)
		currentX += clusterWidth
	}
}
