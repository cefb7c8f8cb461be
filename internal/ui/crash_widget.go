package ui

import (
	"fyne.io/fyne/v2"
)

// CrashMessage is the fixed message raised by the fault injector
const CrashMessage = "deliberate render crash: crash widget was rendered"

// NewCrashWidget is the fault injector: a component whose construction
// unconditionally panics. It never produces output; it exists to exercise the
// render-error boundary, both from tests and from the debug menu.
func NewCrashWidget() fyne.CanvasObject {
	panic(CrashMessage)
}
