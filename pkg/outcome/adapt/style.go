package adapt

// Style selects the output shape an adapter produces. It is an open string
// type on purpose: callers may hand in a value outside the known set, and
// the fallback behavior for unrecognized styles is part of the contract.
type Style string

const (
	// StyleGo maps a settlement to Go's native (value, error) pair.
	StyleGo Style = "goStyle"
	// StyleFalse returns the value on success and a fixed false on failure.
	StyleFalse Style = "false-style"
	// StyleTrue returns the value on success and a fixed true on failure.
	StyleTrue Style = "true-style"
	// StyleError returns the value on success and the reason itself on failure.
	StyleError Style = "errorStyle"
	// StyleOnlyError returns 0 on success and 1 on failure, exit-code fashion.
	StyleOnlyError Style = "only-error"
	// StyleBoolean returns true on success and false on failure.
	StyleBoolean Style = "boolean"
)

// IsKnown reports whether s is one of the recognized styles. Unrecognized
// styles are still usable; they take the fallback arm on failure.
func (s Style) IsKnown() bool {
	switch s {
	case StyleGo, StyleFalse, StyleTrue, StyleError, StyleOnlyError, StyleBoolean:
		return true
	}
	return false
}

// Shields reports whether s swallows the failure reason behind a fixed
// sentinel instead of making it observable.
func (s Style) Shields() bool {
	switch s {
	case StyleFalse, StyleTrue, StyleOnlyError, StyleBoolean:
		return true
	}
	return false
}
