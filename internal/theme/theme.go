// internal/theme/theme.go
package theme

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bethropolis/base16-shell-preview/internal/config"
)

// ErrNoBackground is returned when a theme file has no usable color00 line.
var ErrNoBackground = errors.New("no color00 background")

const backgroundSlot = "color00"

// Theme is a single base16 shell script.
type Theme struct {
	Path string
	Name string

	// background is filled in on first use; theme files do not change
	// while the previewer runs.
	bgLoaded bool
	bg       uint32
	bgErr    error
}

// New builds a Theme for the script at path.
func New(path string) *Theme {
	return &Theme{Path: path, Name: NameFromPath(path)}
}

// NameFromPath strips the directory, the base16 prefix and the extension.
func NameFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, config.ThemePrefix)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Background returns the theme's color00 value as 0xRRGGBB.
func (t *Theme) Background() (uint32, error) {
	if !t.bgLoaded {
		t.bg, t.bgErr = readBackground(t.Path)
		t.bgLoaded = true
	}
	return t.bg, t.bgErr
}

// BackgroundHex formats the background as "#rrggbb", or "" when unknown.
func (t *Theme) BackgroundHex() string {
	bg, err := t.Background()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("#%06x", bg)
}

func (t *Theme) String() string { return t.Name }

func readBackground(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read theme file '%s': %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, backgroundSlot) {
			return ParseBackgroundLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read theme file '%s': %w", path, err)
	}
	return 0, fmt.Errorf("%s: %w", path, ErrNoBackground)
}

// ParseBackgroundLine decodes a line such as `color00="1d/1f/21" # Base 00`.
func ParseBackgroundLine(line string) (uint32, error) {
	parts := strings.SplitN(line, `"`, 3)
	if len(parts) < 3 {
		return 0, fmt.Errorf("unquoted value in %q: %w", line, ErrNoBackground)
	}
	hex := strings.ReplaceAll(parts[1], "/", "")
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value %q: %w", parts[1], ErrNoBackground)
	}
	return uint32(val), nil
}
