package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFromPath(t *testing.T) {
	cases := map[string]string{
		"/s/base16-ocean.sh":         "ocean",
		"/s/base16-gruvbox-dark.sh":  "gruvbox-dark",
		"/s/solarized.sh":            "solarized",
		"/s/base16-noext":            "noext",
		"/s/prefix-base16-keeps.sh":  "prefix-base16-keeps",
		"base16-tomorrow-night.bash": "tomorrow-night",
	}
	for path, want := range cases {
		assert.Equal(t, want, NameFromPath(path), path)
	}
}

func TestParseBackgroundLine(t *testing.T) {
	got, err := ParseBackgroundLine(`color00="1d/1f/21" # Base 00 - Black`)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1d1f21), got)

	got, err = ParseBackgroundLine(`color00="ffffff"`)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffff), got)

	_, err = ParseBackgroundLine(`color00=1d/1f/21`)
	assert.ErrorIs(t, err, ErrNoBackground)

	_, err = ParseBackgroundLine(`color00="zz/zz/zz"`)
	assert.ErrorIs(t, err, ErrNoBackground)
}

func TestBackgroundIsMemoized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base16-a.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\ncolor00=\"28/2c/34\"\n"), 0o644))

	th := New(path)
	bg, err := th.Background()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x282c34), bg)
	assert.Equal(t, "#282c34", th.BackgroundHex())

	// The file is gone but the cached value remains.
	require.NoError(t, os.Remove(path))
	bg, err = th.Background()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x282c34), bg)
}

func TestBackgroundMissingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base16-empty.sh")
	require.NoError(t, os.WriteFile(path, []byte("color01=\"ff/00/00\"\n"), 0o644))

	_, err := New(path).Background()
	assert.True(t, errors.Is(err, ErrNoBackground))
	assert.Empty(t, New(path).BackgroundHex())
}
