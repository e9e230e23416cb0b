// Package outcome holds the settled-result core shared by the adapter
// packages.
//
// Highlights:
// - Outcome[T]: one settlement, either Success(value) or Failure(reason)
// - Operation/Settle: await a blocking computation and capture its settlement
// - Future/Go/Await: channel-backed settlement for early-started operations
// - Reasons/IsCancellation: small helpers over failure reasons
//
// Outcomes are transient: one is produced per adapter invocation and
// discarded once mapped to an output shape. See package adapt for the
// mapping and package await for the ready-made helpers.
package outcome
