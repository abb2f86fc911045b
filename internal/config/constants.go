package config

// Base application details
const AppName = "base16-shell-preview"
const DefaultConfigFileName = "config.toml"

// ConfigPathEnv names the variable that points at an alternative config file.
const ConfigPathEnv = "BASE16_SHELL_PREVIEW_CONFIG"

// Environment shared with base16-shell itself.
const (
	RepositoryEnv = "BASE16_SHELL"
	HooksDirEnv   = "BASE16_SHELL_HOOKS"
	ThemeNameEnv  = "BASE16_THEME"
)

// Repository layout
const ScriptsDirName = "scripts"
const ThemePrefix = "base16-"
const DefaultThemeLink = "~/.base16_theme"
const DefaultShell = "/bin/sh"

// UI Layout
const NumColors = 22 // palette slots previewed, also the list height
const DefaultListWidth = 35
const DefaultPreviewWidth = 42

// Sort orders
const (
	SortName       = "name"
	SortBackground = "background"
)
