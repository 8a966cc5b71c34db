package pacer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/nm-morais/go-pacer/configs"
	"github.com/nm-morais/go-pacer/pkg/errors"
	"github.com/nm-morais/go-pacer/pkg/logs"
	"github.com/nm-morais/go-pacer/pkg/timer"
	log "github.com/sirupsen/logrus"
)

const pacerCaller = "Pacer"

// WaitStrategy selects how Pace waits out the remainder of an interval.
type WaitStrategy int

const (
	// BusyWait polls the timer in a tight loop. Tightest interval accuracy,
	// at the cost of a fully occupied core while waiting.
	BusyWait WaitStrategy = iota

	// Yield sleeps away most of the remaining interval and falls back to
	// yielding the processor near the deadline. Much cheaper than
	// BusyWait, with higher variance in interval accuracy.
	Yield
)

// ParseWaitStrategy maps the config-file spelling of a strategy to its
// value. The empty string defaults to Yield.
func ParseWaitStrategy(s string) (WaitStrategy, errors.Error) {
	switch s {
	case "busy":
		return BusyWait, nil
	case "yield", "":
		return Yield, nil
	}
	return Yield, errors.PreconditionError(fmt.Sprintf("unknown wait strategy: %s", s), pacerCaller)
}

// Pacer regulates a loop to a fixed tick rate using an IntervalTimer. It
// owns the timer it is given: callers must not touch the timer while the
// pacer is in use.
type Pacer struct {
	t        timer.IntervalTimer
	strategy WaitStrategy
	logger   *log.Logger
}

func NewPacer(config configs.PacerConfig, t timer.IntervalTimer) (*Pacer, errors.Error) {
	logger := logs.NewLogger(pacerCaller)
	if config.LogFolder != "" {
		logs.SetupLogFile(logger, config.LogFolder, pacerCaller)
	}
	if !t.IsSupportedPlatform() {
		return nil, errors.FatalError(errors.ErrCodeUnsupported, "timing source unavailable on this platform", pacerCaller)
	}
	strategy, err := ParseWaitStrategy(config.WaitStrategy)
	if err != nil {
		return nil, err
	}
	if config.TicksPerSecond != 0 {
		if err := t.SetInterval(config.TicksPerSecond); err != nil {
			return nil, err
		}
	}
	return &Pacer{
		t:        t,
		strategy: strategy,
		logger:   logger,
	}, nil
}

func (p *Pacer) Logger() *log.Logger {
	return p.logger
}

// SetRate changes the tick rate to ticksPerSecond for subsequent intervals.
func (p *Pacer) SetRate(ticksPerSecond float64) errors.Error {
	return p.t.SetInterval(ticksPerSecond)
}

// Interval returns the current interval length in seconds.
func (p *Pacer) Interval() float64 {
	return p.t.GetInterval()
}

// Start opens the first interval window. Must be called once before Pace.
func (p *Pacer) Start() {
	p.t.Start()
}

// Pace blocks until the configured interval has elapsed since the previous
// tick, then opens the next window. It returns the measured length of the
// finished interval in milliseconds, which is at least the configured
// interval but can overshoot it when the loop body ran long or the wait
// strategy woke up late.
func (p *Pacer) Pace() float64 {
	for {
		p.t.Stop()
		if p.t.IntervalHasElapsed() {
			break
		}
		if p.strategy == Yield {
			p.yield()
		}
	}
	elapsed := p.t.GetElapsed()
	p.t.Start()
	return elapsed
}

// yield sleeps away half the remaining time so that wakeup jitter is halved
// on every iteration, then hands the processor over once the deadline is
// under the sleep granularity.
func (p *Pacer) yield() {
	remaining := p.t.GetRemaining()
	if remaining > 2 {
		time.Sleep(time.Duration(remaining / 2 * float64(time.Millisecond)))
		return
	}
	runtime.Gosched()
}
