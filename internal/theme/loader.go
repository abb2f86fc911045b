// internal/theme/loader.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// ErrNotFound is returned when the theme directory cannot be listed.
var ErrNotFound = errors.New("theme directory not found")

// Load scans dir for theme scripts and returns them ordered by key.
// Only regular files are considered; symlinks and directories are skipped.
func Load(dir string, key SortKey) (Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrNotFound, dir, err)
	}

	// ReadDir returns entries sorted by filename, so on a name clash the
	// lexically last file wins.
	byName := make(map[string]int, len(entries))
	themes := make([]*Theme, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			logger.DebugTagf("theme", "Skipping non-regular entry '%s'", entry.Name())
			continue
		}
		t := New(filepath.Join(dir, entry.Name()))
		if idx, ok := byName[t.Name]; ok {
			logger.Warnf("Theme '%s' from '%s' overrides '%s'", t.Name, t.Path, themes[idx].Path)
			themes[idx] = t
			continue
		}
		byName[t.Name] = len(themes)
		themes = append(themes, t)
	}

	if key == SortByBackground {
		for _, t := range themes {
			if _, err := t.Background(); err != nil {
				logger.Warnf("Theme '%s': %v", t.Name, err)
			}
		}
	}

	c := Collection(themes)
	c.Sort(key)
	logger.Infof("Loaded %d themes from '%s'", len(c), dir)
	return c, nil
}
