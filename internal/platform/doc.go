package platform

// Package platform contains OS integration glue: opening external links in
// the system default browser.
