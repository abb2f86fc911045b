// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/base16-shell-preview/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Preview PreviewConfig `toml:"preview"`
	Paths   PathsConfig   `toml:"paths"`

	// UnknownKeys lists keys in the config file that were not recognized.
	// They are reported once the logger is up.
	UnknownKeys []string `toml:"-"`
}

// PreviewConfig holds settings for the interactive previewer.
type PreviewConfig struct {
	Sort         string `toml:"sort"`
	Shell        string `toml:"shell"`
	ListWidth    int    `toml:"list_width"`
	PreviewWidth int    `toml:"preview_width"`
}

// PathsConfig holds filesystem locations. Environment variables win over
// the values set here.
type PathsConfig struct {
	Base16Shell string `toml:"base16_shell"`
	ThemeLink   string `toml:"theme_link"`
	HooksDir    string `toml:"hooks_dir"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Preview: PreviewConfig{
			Sort:         SortName,
			Shell:        DefaultShell,
			ListWidth:    DefaultListWidth,
			PreviewWidth: DefaultPreviewWidth,
		},
		Paths: PathsConfig{
			ThemeLink: DefaultThemeLink,
		},
	}
}

// MinCols is the narrowest terminal the two panes fit in.
func (c *Config) MinCols() int {
	return c.Preview.ListWidth + c.Preview.PreviewWidth
}

// SortByBackground reports whether themes are ordered by background color.
func (c *Config) SortByBackground() bool {
	return c.Preview.Sort == SortBackground
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.UnknownKeys = append(cfg.UnknownKeys, key.String())
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	switch strings.ToLower(c.Preview.Sort) {
	case SortName, "":
		c.Preview.Sort = SortName
	case SortBackground, "bg":
		c.Preview.Sort = SortBackground
	default:
		c.Preview.Sort = defaults.Preview.Sort
	}
	if strings.TrimSpace(c.Preview.Shell) == "" {
		c.Preview.Shell = defaults.Preview.Shell
	}
	if c.Preview.ListWidth <= 0 {
		c.Preview.ListWidth = defaults.Preview.ListWidth
	}
	if c.Preview.PreviewWidth <= 0 {
		c.Preview.PreviewWidth = defaults.Preview.PreviewWidth
	}
	if c.Paths.ThemeLink == "" {
		c.Paths.ThemeLink = defaults.Paths.ThemeLink
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
}

// DefaultPath returns the config file used when none is given explicitly.
func DefaultPath(getenv func(string) string) string {
	if p := getenv(ConfigPathEnv); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// Load orchestrates defaults, the config file, flag overrides and validation.
// An empty configFilePath skips the file.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if configFilePath != "" {
		if err := loadFromFile(configFilePath, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
