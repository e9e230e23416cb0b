package adapt

import (
	"context"

	"github.com/311ecode/await-me-go/pkg/outcome"
)

// Operation is the untyped form of outcome.Operation handed to an adapter
// Fn. One adapter instance serves operations of any result type, so the
// value travels as `any` until the call site restores it.
type Operation func(ctx context.Context) (any, error)

// Fn is a built adapter: it awaits one operation and maps the settlement
// to the configured output shape. The error return carries only the
// escalation paths (go-style failure pairs and the fallback re-raise);
// every shielded shape arrives through the value return with a nil error.
//
// An Fn holds no mutable state beyond its captured config and is safe for
// concurrent use.
type Fn func(ctx context.Context, op Operation) (any, error)

// Config is fixed at Build time and never mutated afterwards. Zero fields
// fall back to their documented defaults: StyleGo, empty chain, Reraise.
type Config struct {
	Style    Style
	Handlers []Handler
	Default  DefaultHandler
}

// Build constructs an adapter from cfg. Construction is total: any config,
// including the zero value, yields a working Fn.
func Build(cfg Config) Fn {
	style := cfg.Style
	if style == "" {
		style = StyleGo
	}
	handlers := make([]Handler, len(cfg.Handlers))
	copy(handlers, cfg.Handlers)
	def := cfg.Default
	if def == nil {
		def = Reraise
	}

	return func(ctx context.Context, op Operation) (any, error) {
		settled := outcome.Settle(ctx, outcome.Operation[any](op))

		if settled.IsSuccess() {
			return mapSuccess(style, settled.Value())
		}
		return mapFailure(style, handlers, def, settled.Reason())
	}
}

func mapSuccess(style Style, v any) (any, error) {
	switch style {
	case StyleGo:
		return v, nil
	case StyleOnlyError:
		return 0, nil
	case StyleBoolean:
		return true, nil
	default:
		// false-style, true-style, errorStyle and anything unrecognized
		// all hand the value back untouched on success.
		return v, nil
	}
}

func mapFailure(style Style, handlers []Handler, def DefaultHandler, reason error) (any, error) {
	matched := runChain(handlers, reason)

	switch style {
	case StyleGo:
		return nil, reason
	case StyleOnlyError:
		return 1, nil
	case StyleBoolean:
		return false, nil
	case StyleFalse:
		if !matched {
			_, _ = guardDefault(def, reason)
		}
		return false, nil
	case StyleTrue:
		if !matched {
			_, _ = guardDefault(def, reason)
		}
		return true, nil
	case StyleError:
		// The reason itself is the output; the default handler never runs.
		return reason, nil
	default:
		// Unrecognized style: a chain match escalates the reason, otherwise
		// the default handler's returns become the output as-is. The
		// asymmetry with the shielding styles above is deliberate.
		if matched {
			return nil, reason
		}
		return guardDefault(def, reason)
	}
}
