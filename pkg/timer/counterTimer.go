package timer

import (
	"github.com/nm-morais/go-pacer/internal/clock"
	"github.com/nm-morais/go-pacer/pkg/errors"
)

// CounterTimer is the IntervalTimer backend that reads the platform counter
// API directly (QueryPerformanceCounter on Windows, CLOCK_MONOTONIC
// elsewhere). Instants are kept as raw ticks and only scaled to time units
// when queried, so no precision is lost between Start and the queries.
type CounterTimer struct {
	counter        clock.Counter
	startTick      int64
	stopTick       int64
	perMillisecond float64
	interval       float64 // ticks
}

// NewCounterTimer queries the counter frequency once. If the query fails the
// timer is still returned, but IsSupportedPlatform reports false and all
// numeric queries are meaningless; callers must check the flag before
// trusting any measurement.
func NewCounterTimer() *CounterTimer {
	c := clock.NewCounter()
	return &CounterTimer{
		counter:        c,
		perMillisecond: float64(c.TicksPerSecond()) / 1000,
		interval:       float64(c.TicksPerSecond()) / DefaultTicksPerSecond,
	}
}

func (t *CounterTimer) IsSupportedPlatform() bool {
	return t.counter.Supported()
}

func (t *CounterTimer) GetInterval() float64 {
	return t.interval / float64(t.counter.TicksPerSecond())
}

func (t *CounterTimer) SetInterval(ticksPerSecond float64) errors.Error {
	if ticksPerSecond == 0 {
		return zeroRateError()
	}
	t.interval = float64(t.counter.TicksPerSecond()) / ticksPerSecond
	return nil
}

func (t *CounterTimer) Start() {
	t.startTick = t.counter.Now()
	t.stopTick = t.startTick
}

func (t *CounterTimer) Stop() {
	t.stopTick = t.counter.Now()
}

func (t *CounterTimer) GetElapsed() float64 {
	return float64(t.stopTick-t.startTick) / t.perMillisecond
}

func (t *CounterTimer) GetRemaining() float64 {
	return (t.interval - float64(t.stopTick-t.startTick)) / t.perMillisecond
}

func (t *CounterTimer) IntervalHasElapsed() bool {
	return float64(t.stopTick-t.startTick) >= t.interval
}
