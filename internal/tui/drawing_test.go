package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, x, y, width int) string {
	out := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func isReverse(s tcell.Screen, x, y int) bool {
	_, _, style, _ := s.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

func TestDrawListHighlightsSelectedRow(t *testing.T) {
	s := simScreen(t, 40, 5)
	DrawList(s, Rect{Width: 10, Height: 5}, []string{"ocean", "eighties", "mocha"}, 1)

	assert.Equal(t, "ocean     ", rowText(s, 0, 0, 10))
	assert.Equal(t, "eighties  ", rowText(s, 0, 1, 10))
	assert.False(t, isReverse(s, 0, 0))
	assert.True(t, isReverse(s, 0, 1))
	assert.True(t, isReverse(s, 8, 1))
	assert.False(t, isReverse(s, 9, 1), "gutter column stays plain")

	// rows after the list are blank
	assert.Equal(t, "          ", rowText(s, 0, 4, 10))
	assert.False(t, isReverse(s, 0, 4))
}

func TestDrawListTruncatesLongNames(t *testing.T) {
	s := simScreen(t, 40, 2)
	DrawList(s, Rect{Width: 6, Height: 2}, []string{"gruvbox-dark-hard"}, 0)
	assert.Equal(t, "gruvb ", rowText(s, 0, 0, 6))
}

func TestDrawPreviewUsesPaletteSlots(t *testing.T) {
	s := simScreen(t, 80, 24)
	area := Rect{X: 35, Width: 42, Height: 22}
	DrawPreview(s, area, 22)

	for i := 0; i < 22; i++ {
		label := SlotLabel(i)
		assert.Equal(t, label, rowText(s, area.X, i, len(label)))

		_, _, style, _ := s.GetContent(area.X, i)
		fg, _, _ := style.Decompose()
		assert.Equal(t, tcell.PaletteColor(i), fg)

		blockX := area.X + len(label)
		assert.True(t, isReverse(s, blockX, i))
		assert.True(t, isReverse(s, area.X+area.Width-2, i))
		assert.False(t, isReverse(s, area.X+area.Width-1, i))
	}
	assert.Equal(t, "color21 ", rowText(s, area.X, 21, 8))
}

func TestDrawTextStopsAtWidth(t *testing.T) {
	s := simScreen(t, 20, 1)
	used := DrawText(s, 0, 0, 4, "abcdef", tcell.StyleDefault)
	assert.Equal(t, 4, used)
	assert.Equal(t, "abcd", rowText(s, 0, 0, 4))
}

func TestTUIWrapsSimulationScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s)
	require.NoError(t, err)
	s.SetSize(90, 30)

	w, h := ui.Size()
	assert.Equal(t, 90, w)
	assert.Equal(t, 30, h)

	ui.Close()
	ui.Close()
}
