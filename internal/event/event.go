// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeAppReady         // the screen is up and the first theme is previewed
	TypeSelectionChanged // the highlighted theme changed
	TypeThemePreviewed   // a preview shell was started for a theme
	TypeThemeInstalled   // the theme link now points at a new theme
	TypeAppQuit          // the event loop is about to return
)

func (t Type) String() string {
	switch t {
	case TypeAppReady:
		return "app-ready"
	case TypeSelectionChanged:
		return "selection-changed"
	case TypeThemePreviewed:
		return "theme-previewed"
	case TypeThemeInstalled:
		return "theme-installed"
	case TypeAppQuit:
		return "app-quit"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// SelectionChangedData describes the newly highlighted theme.
type SelectionChangedData struct {
	Name  string
	Path  string
	Index int
	Count int
}

// ThemePreviewedData names the theme whose script was started.
type ThemePreviewedData struct {
	Name string
	Err  error
}

// ThemeInstalledData describes a completed install.
type ThemeInstalledData struct {
	Name       string
	LinkPath   string
	HookErrors []error
}

// AppQuitData records why the loop ended.
type AppQuitData struct {
	Reason string
}

// AppReadyData carries nothing yet.
type AppReadyData struct{}
