package await

import (
	"context"

	"github.com/311ecode/await-me-go/pkg/outcome"
	"github.com/311ecode/await-me-go/pkg/outcome/adapt"
)

// pair is the single go-style adapter all three helpers share.
var pair = adapt.Build(adapt.Config{Style: adapt.StyleGo})

// ValueOf awaits op and returns its value with ok=true, or the zero value
// with ok=false on failure. Callers whose operations legitimately produce
// the zero value must branch on ok, not on the value.
func ValueOf[T any](ctx context.Context, op outcome.Operation[T], cfg ...LogConfig) (T, bool) {
	v, err := run(ctx, op, cfg)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// IsSuccess awaits op and reports the settlement outcome alone.
func IsSuccess[T any](ctx context.Context, op outcome.Operation[T], cfg ...LogConfig) bool {
	_, err := run(ctx, op, cfg)
	return err == nil
}

// ToResult awaits op and folds the settlement into a Result[T]. A success
// whose value is the zero of T stays distinguishable from a failure.
func ToResult[T any](ctx context.Context, op outcome.Operation[T], cfg ...LogConfig) Result[T] {
	v, err := run(ctx, op, cfg)
	if err != nil {
		return Result[T]{Success: false, Err: err}
	}
	return Result[T]{Success: true, Data: v}
}

// run pushes op through the shared go-style adapter and fires the
// configured log side effects.
func run[T any](ctx context.Context, op outcome.Operation[T], cfg []LogConfig) (T, error) {
	v, err := pair(ctx, func(ctx context.Context) (any, error) {
		return op(ctx)
	})
	if err != nil {
		logFailure(cfg, err)
		var zero T
		return zero, err
	}
	logSuccess(cfg)
	t, _ := v.(T)
	return t, nil
}
