package timer

import (
	"time"

	"github.com/nm-morais/go-pacer/pkg/errors"
)

// MonotonicTimer is the portable IntervalTimer backend. It rides on the
// monotonic clock reading the runtime attaches to time.Time, so it works
// everywhere, though its resolution is whatever the runtime provides.
type MonotonicTimer struct {
	startTime time.Time
	stopTime  time.Time
	interval  float64 // seconds
}

func NewMonotonicTimer() *MonotonicTimer {
	return &MonotonicTimer{
		interval: 1.0 / DefaultTicksPerSecond,
	}
}

// IsSupportedPlatform always returns true: the runtime clock is standard.
func (t *MonotonicTimer) IsSupportedPlatform() bool {
	return true
}

func (t *MonotonicTimer) GetInterval() float64 {
	return t.interval
}

func (t *MonotonicTimer) SetInterval(ticksPerSecond float64) errors.Error {
	if ticksPerSecond == 0 {
		return zeroRateError()
	}
	t.interval = 1 / ticksPerSecond
	return nil
}

func (t *MonotonicTimer) Start() {
	t.startTime = time.Now()
	t.stopTime = t.startTime
}

func (t *MonotonicTimer) Stop() {
	t.stopTime = time.Now()
}

func (t *MonotonicTimer) GetElapsed() float64 {
	return float64(t.stopTime.Sub(t.startTime).Nanoseconds()) / float64(time.Millisecond)
}

func (t *MonotonicTimer) GetRemaining() float64 {
	return t.interval*1000 - t.GetElapsed()
}

func (t *MonotonicTimer) IntervalHasElapsed() bool {
	return t.stopTime.Sub(t.startTime).Seconds() >= t.interval
}
