package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewCrashWidget_AlwaysPanics(t *testing.T) {
	test.NewApp()

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		NewCrashWidget()
	}()

	if recovered == nil {
		t.Fatal("Expected NewCrashWidget to panic")
	}

	if recovered != CrashMessage {
		t.Errorf("Expected panic with CrashMessage, got %v", recovered)
	}
}

func TestNewCrashWidget_ExercisesBoundary(t *testing.T) {
	test.NewApp()
	reporter := &recordingReporter{}

	boundary := NewBoundary(reporter, NewLocalization(), func() fyne.CanvasObject {
		return NewCrashWidget()
	})

	if !boundary.Faulted() {
		t.Error("Expected crash widget to fault the boundary")
	}

	if reporter.faultCount() != 1 {
		t.Errorf("Expected exactly 1 report, got %d", reporter.faultCount())
	}

	if boundary.LastError() == nil || boundary.LastError().Error() != CrashMessage {
		t.Errorf("Expected the fixed crash message, got %v", boundary.LastError())
	}
}
