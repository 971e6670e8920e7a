package models

// Theme values for AppSettings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// AppSettings holds presentation preferences, persisted under the
// "app_settings" storage key.
type AppSettings struct {
	FontScale int    `json:"fontScale"` // 0-3
	Theme     string `json:"theme"`     // "light" or "dark"
}

// DefaultAppSettings returns the default presentation settings.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		FontScale: 1,
		Theme:     ThemeDark,
	}
}

// Normalize clamps out-of-range values back to defaults so a hand-edited
// settings blob cannot break rendering.
func (s *AppSettings) Normalize() {
	if s.FontScale < 0 || s.FontScale > 3 {
		s.FontScale = 1
	}
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		s.Theme = ThemeDark
	}
}
