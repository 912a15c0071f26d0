package ports

import "context"

// Tracer is the entry point for recording lifecycle phases.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start begins a new span for the named unit of work.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one recorded unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records a non-fatal error against the span.
	RecordError(err error)
	// SetAttribute attaches a key-value pair to the span.
	SetAttribute(key string, value any)
}
