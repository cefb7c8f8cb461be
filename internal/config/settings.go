package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLastPage         = "last_page"
	KeyRememberPage     = "remember_last_page"
	KeyTelemetryEnabled = "telemetry_enabled"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultLastPage         = 1
	DefaultRememberPage     = true
	DefaultTelemetryEnabled = true
	DefaultLanguage         = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastPage returns the last viewed page, or the first page when the
// remember-page setting is off
func (s *Settings) GetLastPage() int {
	if !s.GetRememberPage() {
		return DefaultLastPage
	}
	page := s.app.Preferences().Int(KeyLastPage)
	if page < 1 {
		return DefaultLastPage
	}
	return page
}

// SetLastPage stores the current page for the next launch
func (s *Settings) SetLastPage(page int) {
	if page < 1 {
		page = DefaultLastPage
	}
	s.app.Preferences().SetInt(KeyLastPage, page)
}

// GetRememberPage returns whether the last viewed page is restored on launch
func (s *Settings) GetRememberPage() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberPage, DefaultRememberPage)
}

// SetRememberPage sets whether the last viewed page is restored on launch
func (s *Settings) SetRememberPage(remember bool) {
	s.app.Preferences().SetBool(KeyRememberPage, remember)
}

// GetTelemetryEnabled returns whether crash reports may be sent
func (s *Settings) GetTelemetryEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyTelemetryEnabled, DefaultTelemetryEnabled)
}

// SetTelemetryEnabled sets whether crash reports may be sent
func (s *Settings) SetTelemetryEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyTelemetryEnabled, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
