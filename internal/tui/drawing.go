// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Rect is a region of the screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// DrawText draws text at (x, y) without exceeding maxWidth cells and returns
// the number of cells used.
func DrawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if used+width > maxWidth {
			break
		}
		s.SetContent(x+used, y, runes[0], runes[1:], style)
		used += width
	}
	return used
}

// fill paints width cells starting at (x, y) with spaces.
func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// DrawList draws the visible theme names. The row at selected is drawn in
// reverse video across the pane; rows past the end of names stay blank.
// The last column is left empty as a gutter.
func DrawList(s tcell.Screen, area Rect, names []string, selected int) {
	textWidth := area.Width - 1
	if textWidth <= 0 {
		return
	}
	for row := 0; row < area.Height; row++ {
		y := area.Y + row
		fill(s, area.X, y, area.Width, tcell.StyleDefault)
		if row >= len(names) {
			continue
		}

		style := tcell.StyleDefault
		if row == selected {
			style = style.Reverse(true)
		}
		fill(s, area.X, y, textWidth, style)
		DrawText(s, area.X, y, textWidth, runewidth.Truncate(names[row], textWidth, ""), style)
	}
}

// SlotLabel is the text shown in front of palette slot i.
func SlotLabel(i int) string {
	return fmt.Sprintf("color%02d ", i)
}

// DrawPreview draws one row per palette slot: the slot label in that color
// followed by a solid block of it. Colors are palette indexes, so the pane
// always shows whatever the terminal currently has loaded.
func DrawPreview(s tcell.Screen, area Rect, slots int) {
	for i := 0; i < slots && i < area.Height; i++ {
		y := area.Y + i
		style := tcell.StyleDefault.Foreground(tcell.PaletteColor(i))
		label := SlotLabel(i)

		fill(s, area.X, y, area.Width, tcell.StyleDefault)
		used := DrawText(s, area.X, y, area.Width, label, style)
		fill(s, area.X+used, y, area.Width-used-1, style.Reverse(true))
	}
}
