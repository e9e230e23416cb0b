package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Outcome[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	reason    error
	isSuccess bool
	hasValue  bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		reason:    nil,
		isSuccess: true,
		settledAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Failure[T any](reason error) Outcome[T] {
	return Outcome[T]{
		reason:    reason,
		isSuccess: false,
		settledAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		reason:    from.reason,
		isSuccess: from.isSuccess,
		settledAt: from.settledAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Reason() error {
	return o.reason
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess && o.reason != nil
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) SettledAt() time.Time {
	return o.settledAt
}

func (o Outcome[T]) IsEmpty() bool {
	return o.reason == nil && !o.isSuccess
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
