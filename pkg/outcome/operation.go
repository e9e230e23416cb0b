package outcome

import "context"

// Operation is one pending asynchronous computation: it blocks until it
// produces a value or a failure reason. The ctx is handed through to the
// operation untouched; nothing here cancels or times it out.
type Operation[T any] func(ctx context.Context) (T, error)

// Settle awaits op and captures its settlement. This is the single
// suspension point of every adapter invocation.
func Settle[T any](ctx context.Context, op Operation[T]) Outcome[T] {
	v, err := op(ctx)
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Future is a settlement delivered over a channel, for callers that start
// the operation early and adapt it later.
type Future[T any] <-chan Outcome[T]

// Go starts op in its own goroutine and returns a Future that yields its
// settlement exactly once.
func Go[T any](ctx context.Context, op Operation[T]) Future[T] {
	out := make(chan Outcome[T], 1)

	go func() {
		defer close(out)
		out <- Settle(ctx, op)
	}()

	return out
}

// Await blocks until the future settles. A closed, drained future yields
// an empty outcome.
func (f Future[T]) Await() Outcome[T] {
	return <-f
}

// AsOperation turns a future back into an Operation so it can be handed to
// an adapter like any direct call.
func (f Future[T]) AsOperation() Operation[T] {
	return func(ctx context.Context) (T, error) {
		o := f.Await()
		return o.Value(), o.Reason()
	}
}
