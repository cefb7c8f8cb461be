package telemetry

// Package telemetry wires crash reporting for render faults. Reports are
// fire-and-forget: a failing or misconfigured backend degrades to a no-op and
// never interrupts the rendering pass that produced the fault.
