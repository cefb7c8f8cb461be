package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "◀"
	IconNext     = "▶"
	IconError    = "❌"
	IconRetry    = "↻"
)

// Layout sizing (episode cards / grid)
const (
	CardGridItemWidth  float32 = 280
	CardGridItemHeight float32 = 96

	FallbackMinWidth float32 = 360
)

// External links
const (
	APIDocsURL = "https://rickandmortyapi.com/documentation"
)
