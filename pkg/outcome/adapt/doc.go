// Package adapt contains the configurable outcome adapter: it awaits one
// operation and maps its settlement to a fixed output shape, optionally
// running a first-match-wins chain of side-effect handlers on failure.
//
// Common usage:
// - Build: turn a Config into a reusable, concurrency-safe Fn
// - Style: the closed set of output shapes (go, boolean, only-error, ...)
// - Handler/Predicate/Action: the conditional chain evaluated on failure
// - Reraise: the stock default handler, surfacing the reason unchanged
// - NewBuilder: fluent construction of a Config
//
// One Fn instance serves operations of any result type; the success value
// travels as `any` through the adapter and regains its type at the call
// site (package await does exactly that for the three ready-made helpers).
package adapt
