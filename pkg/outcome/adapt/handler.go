package adapt

// Predicate decides whether a handler claims a failure reason.
type Predicate func(reason error) bool

// Action performs a side effect for a claimed failure reason.
type Action func(reason error)

// Handler pairs a predicate with its action. Handlers are evaluated in
// configuration order; the first match runs its action and stops the walk.
type Handler struct {
	When Predicate
	Do   Action
}

// DefaultHandler runs on failure when no conditional handler matched. Its
// returns matter only for unrecognized styles, where they become the
// adapter's output; the shielding styles call it for its side effect alone.
type DefaultHandler func(reason error) (any, error)

// Reraise is the stock default handler: it surfaces the reason unchanged.
func Reraise(reason error) (any, error) {
	return nil, reason
}

// runChain walks the handlers in order and fires at most one action.
// Panics out of predicates or actions never escape: a panicking predicate
// counts as no match, a panicking action still counts as matched.
func runChain(handlers []Handler, reason error) (matched bool) {
	for _, h := range handlers {
		if !guardPredicate(h.When, reason) {
			continue
		}
		if h.Do != nil {
			guardAction(h.Do, reason)
		}
		return true
	}
	return false
}

func guardPredicate(p Predicate, reason error) (claimed bool) {
	if p == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			claimed = false
		}
	}()
	return p(reason)
}

func guardAction(a Action, reason error) {
	defer func() {
		_ = recover()
	}()
	a(reason)
}

func guardDefault(d DefaultHandler, reason error) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, nil
		}
	}()
	return d(reason)
}
