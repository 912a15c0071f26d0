package domain

// Outcome is the result of a best-effort operation: either Ok with a value,
// or Degraded with a fallback value and the reason the preferred path was
// abandoned. Callers can surface degraded state in diagnostics without the
// operation ever returning an error.
type Outcome[T any] struct {
	value    T
	reason   string
	degraded bool
}

// Ok wraps a value produced by the preferred path.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Degraded wraps a fallback value together with the reason for the fallback.
func Degraded[T any](v T, reason string) Outcome[T] {
	return Outcome[T]{value: v, reason: reason, degraded: true}
}

// Value returns the carried value, fallback or not.
func (o Outcome[T]) Value() T {
	return o.value
}

// IsDegraded reports whether the operation fell back.
func (o Outcome[T]) IsDegraded() bool {
	return o.degraded
}

// Reason returns the degradation reason, empty for Ok outcomes.
func (o Outcome[T]) Reason() string {
	return o.reason
}
