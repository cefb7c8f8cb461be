package ui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/episodik/episode-browser/internal/telemetry"
)

// Boundary isolates render faults in its subtree. Every build of the guarded
// subtree runs through a single recover-protected call; a panic during that
// call transitions the boundary to its faulted state, replaces the subtree
// with fallback content, and reports the fault once. The boundary returns to
// healthy only through the explicit Try-again control.
//
// The guard covers subtree construction only. Panics raised in event
// handlers, goroutines, or timers are not render faults and pass through
// untouched, as does a panic while building the fallback itself.
type Boundary struct {
	widget.BaseWidget

	reporter     telemetry.Reporter
	localization *Localization
	build        func() fyne.CanvasObject

	// hasError is true iff the most recent guarded build panicked. It is
	// cleared only by Reset, never by new children or refreshes.
	hasError bool
	lastErr  error

	content *fyne.Container
}

// NewBoundary creates a boundary guarding the subtree produced by build
func NewBoundary(reporter telemetry.Reporter, localization *Localization, build func() fyne.CanvasObject) *Boundary {
	b := &Boundary{
		reporter:     reporter,
		localization: localization,
		build:        build,
		content:      container.NewStack(),
	}
	b.ExtendBaseWidget(b)
	b.render()
	return b
}

// CreateRenderer implements fyne.Widget
func (b *Boundary) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

// Faulted returns true while the boundary shows fallback content
func (b *Boundary) Faulted() bool {
	return b.hasError
}

// LastError returns the error recovered from the most recent fault
func (b *Boundary) LastError() error {
	return b.lastErr
}

// SetBuild replaces the guarded subtree factory. Receiving new children never
// clears an existing fault; only Reset does.
func (b *Boundary) SetBuild(build func() fyne.CanvasObject) {
	b.build = build
	b.render()
}

// Refresh re-renders the guarded subtree, or keeps the fallback while faulted
func (b *Boundary) Refresh() {
	b.render()
	b.BaseWidget.Refresh()
}

// Reset transitions back to healthy and rebuilds the original children.
// Driven only by the Try-again control; produces no telemetry. When the
// subtree still panics the boundary re-enters the faulted state, which is a
// new transition and reports again.
func (b *Boundary) Reset() {
	b.hasError = false
	b.lastErr = nil
	b.render()
}

// render produces the boundary's output for the current state
func (b *Boundary) render() {
	if b.hasError {
		b.showFallback()
		return
	}

	child, stack, err := b.guardedBuild()
	if err != nil {
		b.fault(err, stack)
		return
	}

	b.content.Objects = []fyne.CanvasObject{child}
	b.content.Refresh()
}

// guardedBuild invokes the subtree factory with panic isolation. The stack is
// captured at recovery time, where the panic site is still on it.
func (b *Boundary) guardedBuild() (child fyne.CanvasObject, stack string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = recoveredError(rec)
			stack = string(debug.Stack())
		}
	}()

	if b.build == nil {
		return container.NewWithoutLayout(), "", nil
	}
	return b.build(), "", nil
}

// fault performs the healthy-to-faulted transition: exactly one telemetry
// report and one diagnostic record per transition.
func (b *Boundary) fault(err error, stack string) {
	b.hasError = true
	b.lastErr = err

	slog.Error("Render fault caught by boundary", "error", err)
	b.reporter.CaptureRenderFault(err, map[string]string{
		"mechanism": "render_boundary",
		"stack":     stack,
	})

	b.showFallback()
}

// showFallback replaces the subtree output with the recovery UI. Deliberately
// outside the guard: a fault while building the fallback is not recoverable
// here and must propagate.
func (b *Boundary) showFallback() {
	message := widget.NewLabel(IconError + " " + b.localization.GetText(KeyRenderFault))
	message.Alignment = fyne.TextAlignCenter
	message.TextStyle = fyne.TextStyle{Bold: true}

	detail := widget.NewLabel("")
	if b.lastErr != nil {
		detail.SetText(b.lastErr.Error())
	}
	detail.Alignment = fyne.TextAlignCenter
	detail.Wrapping = fyne.TextWrapWord

	retryBtn := widget.NewButton(b.localization.GetText(KeyTryAgain), b.Reset)
	retryBtn.Importance = widget.HighImportance

	fallback := container.NewCenter(container.NewVBox(
		message,
		detail,
		container.NewCenter(retryBtn),
	))

	b.content.Objects = []fyne.CanvasObject{fallback}
	b.content.Refresh()
}

// recoveredError normalizes a recovered panic value into an error
func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%v", rec)
}
