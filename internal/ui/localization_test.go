package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name     string
		language string
		key      string
		want     string
	}{
		{"english default", "en", KeyRetry, "Retry"},
		{"russian translation", "ru", KeyRetry, "Повторить"},
		{"portuguese translation", "pt", KeyRetry, "Tentar novamente"},
		{"missing key falls back to english", "ru", "only_in_english", "English only"},
		{"missing key in both maps returns key", "en", "no_such_key", "no_such_key"},
	}

	l.texts["en"]["only_in_english"] = "English only"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SetLanguage(tt.language)
			if got := l.GetText(tt.key); got != tt.want {
				t.Errorf("GetText(%q) in %q = %q, want %q", tt.key, tt.language, got, tt.want)
			}
		})
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"known language", "ru", "ru"},
		{"system resolves to english", "system", "en"},
		{"unknown code keeps current language", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("after SetLanguage(%q) current language = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLocalization_UnknownLanguageAfterSwitch(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")
	l.SetLanguage("de")

	if got := l.GetCurrentLanguage(); got != "pt" {
		t.Errorf("unknown code should not change language, got %q", got)
	}
	if got := l.GetText(KeyNext); got != "Próxima" {
		t.Errorf("GetText(KeyNext) = %q, want Portuguese text", got)
	}
}
