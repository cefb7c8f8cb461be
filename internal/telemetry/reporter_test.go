package telemetry

import (
	"errors"
	"testing"
	"time"
)

func TestNewReporter_NoDSN(t *testing.T) {
	reporter := NewReporter("", true, false)

	if _, ok := reporter.(*NoopReporter); !ok {
		t.Errorf("Expected NoopReporter without a DSN, got %T", reporter)
	}
}

func TestNewReporter_Disabled(t *testing.T) {
	reporter := NewReporter("https://key@o0.ingest.sentry.io/0", false, false)

	if _, ok := reporter.(*NoopReporter); !ok {
		t.Errorf("Expected NoopReporter when reporting is disabled, got %T", reporter)
	}
}

func TestNoopReporter_DoesNotPanic(t *testing.T) {
	reporter := &NoopReporter{}

	// Must accept any input without side effects
	reporter.CaptureRenderFault(errors.New("render fault"), map[string]string{"component": "grid"})
	reporter.CaptureRenderFault(nil, nil)
	reporter.Flush(time.Millisecond)
}

func TestNewReportID(t *testing.T) {
	first := newReportID()
	second := newReportID()

	if first == "" || first == "unknown" {
		t.Errorf("Expected a generated report ID, got '%s'", first)
	}

	if first == second {
		t.Errorf("Expected unique report IDs, got '%s' twice", first)
	}
}
