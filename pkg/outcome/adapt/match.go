package adapt

import (
	"errors"

	"github.com/311ecode/await-me-go/pkg/outcome"
)

// MatchIs builds a predicate claiming reasons that wrap target.
func MatchIs(target error) Predicate {
	return func(reason error) bool {
		return errors.Is(reason, target)
	}
}

// MatchCancellation claims context cancellation and deadline reasons.
func MatchCancellation() Predicate {
	return outcome.IsCancellation
}

// MatchAny claims a reason when at least one of the given predicates does.
func MatchAny(preds ...Predicate) Predicate {
	return func(reason error) bool {
		for _, p := range preds {
			if p != nil && p(reason) {
				return true
			}
		}
		return false
	}
}
