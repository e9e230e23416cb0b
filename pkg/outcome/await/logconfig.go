package await

import (
	"os"
	"slices"

	charmlog "github.com/charmbracelet/log"
)

// logger is the default sink for message-based log specs. Replace it at
// setup time with SetLogger; the helpers read it on every call.
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: true,
	Prefix:          "await",
})

// SetLogger replaces the default message sink. Intended for program setup
// and tests, not for concurrent reconfiguration.
func SetLogger(l *charmlog.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the current message sink.
func Logger() *charmlog.Logger {
	return logger
}

// Spec describes one logging side effect: either a plain message for the
// default sink, or an Action invoked with Args. When both are set the
// action wins.
type Spec struct {
	Message string
	Action  func(args ...any)
	Args    []any
}

// Message builds a plain-message spec.
func Message(msg string) *Spec {
	return &Spec{Message: msg}
}

// Do builds an action spec. Error-side actions receive the failure reason
// appended after args.
func Do(action func(args ...any), args ...any) *Spec {
	return &Spec{Action: action, Args: args}
}

// LogConfig optionally attaches a success and an error side effect to one
// helper call.
type LogConfig struct {
	Success *Spec
	Error   *Spec
}

// ErrorMessage is the single-string form: an error-log message, ignored on
// success.
func ErrorMessage(msg string) LogConfig {
	return LogConfig{Error: Message(msg)}
}

func pick(cfg []LogConfig) LogConfig {
	if len(cfg) == 0 {
		return LogConfig{}
	}
	return cfg[0]
}

func logSuccess(cfg []LogConfig) {
	spec := pick(cfg).Success
	if spec == nil {
		return
	}
	guard(func() {
		if spec.Action != nil {
			spec.Action(spec.Args...)
			return
		}
		if spec.Message != "" {
			logger.Info(spec.Message)
		}
	})
}

func logFailure(cfg []LogConfig, reason error) {
	spec := pick(cfg).Error
	if spec == nil {
		return
	}
	guard(func() {
		if spec.Action != nil {
			spec.Action(append(slices.Clone(spec.Args), reason)...)
			return
		}
		if spec.Message != "" {
			logger.Error(spec.Message, "reason", reason)
		}
	})
}

// guard keeps a misbehaving log side effect from reaching the caller.
func guard(f func()) {
	defer func() {
		_ = recover()
	}()
	f()
}
