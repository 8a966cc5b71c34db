package timer

import "github.com/nm-morais/go-pacer/pkg/errors"

const timerCaller = "IntervalTimer"

// DefaultTicksPerSecond is the interval rate a freshly constructed timer
// starts with (1/60th of a second, the usual game-loop rate).
const DefaultTicksPerSecond = 60

// IntervalTimer measures the time between a marked start point and the most
// recently marked stop point, against an optional target interval. It can be
// used both for one-shot measurements and for regulating loops.
//
// The timer is a plain value type: all operations are synchronous and it
// performs no locking. Callers sharing one instance across goroutines must
// serialize access themselves.
//
// Two interchangeable implementations exist: CounterTimer reads the platform
// counter API directly, MonotonicTimer relies on the runtime's monotonic
// clock. Both honor the exact same contract.
type IntervalTimer interface {
	// IsSupportedPlatform reports whether the underlying time source is
	// usable. It is determined once at construction. When false, every
	// numeric query below returns meaningless values.
	IsSupportedPlatform() bool

	// GetInterval returns the configured interval in seconds.
	GetInterval() float64

	// SetInterval sets the interval to 1/ticksPerSecond seconds, e.g. 60
	// yields an interval of 1/60th of a second. A rate of zero is a
	// contract violation: the call returns a non-nil error and leaves the
	// interval untouched. Any other finite rate is accepted as-is,
	// including negative ones.
	SetInterval(ticksPerSecond float64) errors.Error

	// Start marks the current instant as both the start and stop point,
	// resetting the measurement window.
	Start()

	// Stop marks the current instant as the stop point only. It does not
	// actually "stop" anything and may be called repeatedly; each call
	// re-measures from the original Start.
	Stop()

	// GetElapsed returns the time between the start and stop points in
	// fractional milliseconds.
	GetElapsed() float64

	// GetRemaining returns interval minus elapsed, in milliseconds. The
	// result goes negative once the interval is overshot; callers use it
	// as a deadline value, it is never clamped.
	GetRemaining() float64

	// IntervalHasElapsed reports whether the time between start and stop
	// has reached the interval. The comparison happens at the clock's
	// native resolution, not on the rounded millisecond values.
	IntervalHasElapsed() bool
}

func zeroRateError() errors.Error {
	return errors.PreconditionError("interval rate must not be zero", timerCaller)
}
