package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful settlement value
	Value() T
	// SettledAt time of settlement (UTC)
	SettledAt() time.Time
}

// Settled defines an interface for types that carry a settled value or a failure reason
type Settled[T any] interface {
	ValueProvider[T]
	// Reason returns the failure reason if the operation failed
	Reason() error
	// IsSuccess returns true if the operation settled successfully
	IsSuccess() bool
}
