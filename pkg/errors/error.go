package errors

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Error is the error convention used across go-pacer. The only runtime
// failure in this library is a caller-contract violation, so most code never
// produces one.
type Error interface {
	Fatal() bool
	Temporary() bool
	Code() int
	Reason() string
	Caller() string
	ToString() string
	Log()
}

const (
	// ErrCodePrecondition marks a caller-contract violation. The call that
	// produced it did not mutate any state.
	ErrCodePrecondition = 400

	// ErrCodeUnsupported marks an operation attempted on a platform whose
	// timing source is unavailable.
	ErrCodeUnsupported = 501
)

func PreconditionError(reason string, caller string) Error {
	return &genericErr{
		fatal:     false,
		temporary: false,
		code:      ErrCodePrecondition,
		reason:    reason,
		caller:    caller,
	}
}

func NonFatalError(code int, reason string, caller string) Error {
	return &genericErr{
		fatal:     false,
		temporary: false,
		code:      code,
		reason:    reason,
		caller:    caller,
	}
}

func FatalError(code int, reason string, caller string) Error {
	return &genericErr{
		fatal:     true,
		temporary: false,
		code:      code,
		reason:    reason,
		caller:    caller,
	}
}

type genericErr struct {
	fatal     bool
	temporary bool
	code      int
	reason    string
	caller    string
}

func (err *genericErr) Fatal() bool {
	return err.fatal
}

func (err *genericErr) Temporary() bool {
	return err.temporary
}

func (err *genericErr) Code() int {
	return err.code
}

func (err *genericErr) Reason() string {
	return err.reason
}

func (err *genericErr) Caller() string {
	return err.caller
}

func (err *genericErr) ToString() string {
	return fmt.Sprintf("[%s] code: %d, reason: %s", err.caller, err.code, err.reason)
}

func (err *genericErr) Log() {
	log.Errorf("[%s]: Error code: %d, Reason: %s", err.Caller(), err.Code(), err.Reason())
}
