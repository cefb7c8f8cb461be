package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the episode service, renders the paginated card
// grid behind a render-error boundary, and exposes settings. All UI strings are
// localized via Localization.
