package telemetry

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// Flush timeout used on shutdown
const DefaultFlushTimeout = 2 * time.Second

// Reporter delivers render-fault reports to the telemetry backend
type Reporter interface {
	// CaptureRenderFault reports an error recovered during rendering together
	// with contextual tags. It must never panic back into the caller.
	CaptureRenderFault(err error, context map[string]string)

	// Flush blocks until buffered reports are sent or the timeout elapses
	Flush(timeout time.Duration)
}

// NewReporter returns a Sentry-backed reporter when a DSN is configured and
// reporting is enabled, and a no-op reporter otherwise. A failed backend
// initialization degrades to the no-op reporter instead of failing startup.
func NewReporter(dsn string, enabled bool, debug bool) Reporter {
	if !enabled || dsn == "" {
		slog.Info("Telemetry disabled", "configured", dsn != "", "enabled", enabled)
		return &NoopReporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Debug:            debug,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Warn("Telemetry init failed, reporting disabled", "error", err)
		return &NoopReporter{}
	}

	slog.Info("Telemetry initialized")
	return &SentryReporter{}
}

// SentryReporter sends reports through the global Sentry client
type SentryReporter struct{}

// CaptureRenderFault reports a recovered render error with contextual tags
func (r *SentryReporter) CaptureRenderFault(err error, context map[string]string) {
	// Reporting is best-effort; a panicking transport must not re-enter rendering
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("Telemetry report dropped", "panic", rec)
		}
	}()

	reportID := newReportID()

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("report_id", reportID)
		for key, value := range context {
			scope.SetTag(key, value)
		}
		sentry.CaptureException(err)
	})

	slog.Debug("Render fault reported", "report_id", reportID, "error", err)
}

// Flush blocks until buffered reports are sent or the timeout elapses
func (r *SentryReporter) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// NoopReporter drops all reports. Used when no DSN is configured or the user
// opted out of telemetry.
type NoopReporter struct{}

// CaptureRenderFault logs the fault locally and drops the report
func (r *NoopReporter) CaptureRenderFault(err error, context map[string]string) {
	slog.Debug("Render fault not reported, telemetry disabled", "error", err)
}

// Flush is a no-op
func (r *NoopReporter) Flush(timeout time.Duration) {}

// newReportID returns a sortable unique ID for correlating logs with reports
func newReportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
