package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, file, bg string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	body := "#!/bin/sh\n# base16-shell\ncolor00=\"" + bg + "\" # Base 00 - Black\ncolor01=\"ab/46/42\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func scenarioDir(t *testing.T) string {
	dir := t.TempDir()
	writeTheme(t, dir, "base16-a.sh", "00/00/00")
	writeTheme(t, dir, "base16-b.sh", "ff/ff/ff")
	writeTheme(t, dir, "base16-c.sh", "80/80/80")
	return dir
}

func TestLoadSortByName(t *testing.T) {
	c, err := Load(scenarioDir(t), SortByName)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
}

func TestLoadSortByBackground(t *testing.T) {
	c, err := Load(scenarioDir(t), SortByBackground)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, c.Names())

	var bgs []uint32
	for _, th := range c {
		bg, err := th.Background()
		require.NoError(t, err)
		bgs = append(bgs, bg)
	}
	assert.Equal(t, []uint32{0x000000, 0x808080, 0xffffff}, bgs)
}

func TestLoadBackgroundTieBreaksOnName(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "base16-zeta.sh", "10/10/10")
	writeTheme(t, dir, "base16-alpha.sh", "10/10/10")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base16-broken.sh"), []byte("echo\n"), 0o644))
	writeTheme(t, dir, "base16-dark.sh", "00/00/01")

	c, err := Load(dir, SortByBackground)
	require.NoError(t, err)
	assert.Equal(t, []string{"dark", "alpha", "zeta", "broken"}, c.Names())
}

func TestLoadNameOrderIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "base16-b.sh", "00/00/00")
	writeTheme(t, dir, "base16-B.sh", "00/00/00")
	writeTheme(t, dir, "base16-a.sh", "00/00/00")

	c, err := Load(dir, SortByName)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "a", "b"}, c.Names())
}

func TestLoadSkipsDirsAndSymlinks(t *testing.T) {
	dir := scenarioDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "base16-subdir"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "base16-a.sh"), filepath.Join(dir, "base16-link.sh")))

	c, err := Load(dir, SortByName)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())
}

func TestLoadDuplicateNamesLastWins(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "base16-ocean.sh", "00/00/00")
	last := writeTheme(t, dir, "ocean.sh", "00/00/00")

	c, err := Load(dir, SortByName)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, last, c[0].Path)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"), SortByName)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadEmptyDir(t *testing.T) {
	c, err := Load(t.TempDir(), SortByName)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestCollectionFind(t *testing.T) {
	c, err := Load(scenarioDir(t), SortByName)
	require.NoError(t, err)

	th, ok := c.Find("c")
	require.True(t, ok)
	assert.Equal(t, "base16-c.sh", filepath.Base(th.Path))

	_, ok = c.Find("missing")
	assert.False(t, ok)
}
