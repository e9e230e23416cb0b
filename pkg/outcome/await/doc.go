// Package await holds the three ready-made adapter helpers most callers
// want instead of building their own adapt.Config.
//
// Highlights:
// - ValueOf: value plus comma-ok, false on failure
// - IsSuccess: settlement outcome only, value discarded
// - ToResult: a Result[T] carrying success flag, data and reason
// - LogConfig/Message/Do: optional per-call success and error logging
//
// All three run through one shared go-style adapter instance; its raw
// (value, error) pair never leaks to callers. Logging failures are
// swallowed, like every other side-effect failure in the adapter.
package await
