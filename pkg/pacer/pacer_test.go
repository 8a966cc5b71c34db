package pacer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/nm-morais/go-pacer/configs"
	"github.com/nm-morais/go-pacer/pkg/timer"
)

func Test_parseWaitStrategy(t *testing.T) {
	if s, err := ParseWaitStrategy("busy"); err != nil || s != BusyWait {
		t.Error("busy did not parse to BusyWait")
		t.FailNow()
	}
	if s, err := ParseWaitStrategy("yield"); err != nil || s != Yield {
		t.Error("yield did not parse to Yield")
		t.FailNow()
	}
	if s, err := ParseWaitStrategy(""); err != nil || s != Yield {
		t.Error("empty strategy did not default to Yield")
		t.FailNow()
	}
	if _, err := ParseWaitStrategy("spin"); err == nil {
		t.Error("unknown strategy did not fail")
		t.FailNow()
	}
}

func Test_newPacerRejectsBadConfig(t *testing.T) {
	_, err := NewPacer(configs.PacerConfig{WaitStrategy: "spin"}, timer.NewMonotonicTimer())
	if err == nil {
		t.Error("bad strategy accepted")
		t.FailNow()
	}
}

func Test_paceHoldsRate(t *testing.T) {
	config := configs.PacerConfig{
		TicksPerSecond: 50, // 20ms ticks
		WaitStrategy:   "yield",
	}
	p, err := NewPacer(config, timer.NewMonotonicTimer())
	if err != nil {
		t.Error(err.ToString())
		t.FailNow()
	}

	const ticks = 5
	begin := time.Now()
	p.Start()
	for i := 0; i < ticks; i++ {
		frame := p.Pace()
		t.Logf("tick %d: %v ms", i, frame)
		if frame < 19.99 {
			t.Errorf("tick %d finished after %v ms, interval is 20", i, frame)
			t.FailNow()
		}
	}
	total := time.Since(begin)
	if total < ticks*20*time.Millisecond-time.Millisecond {
		t.Errorf("%d ticks of 20ms took only %v", ticks, total)
		t.FailNow()
	}
	if total > 2*time.Second {
		t.Errorf("%d ticks of 20ms took %v", ticks, total)
		t.FailNow()
	}
}

func Test_paceBusyWait(t *testing.T) {
	config := configs.PacerConfig{
		TicksPerSecond: 200, // 5ms ticks
		WaitStrategy:   "busy",
	}
	p, err := NewPacer(config, timer.NewCounterTimer())
	if err != nil {
		t.Error(err.ToString())
		t.FailNow()
	}

	p.Start()
	for i := 0; i < 3; i++ {
		frame := p.Pace()
		if frame < 4.99 {
			t.Errorf("tick %d finished after %v ms, interval is 5", i, frame)
			t.FailNow()
		}
	}
}

func Test_tickHubDeliversToAllListeners(t *testing.T) {
	config := configs.PacerConfig{
		TicksPerSecond: 100,
		WaitStrategy:   "yield",
	}
	p, err := NewPacer(config, timer.NewMonotonicTimer())
	if err != nil {
		t.Error(err.ToString())
		t.FailNow()
	}
	hub, err := NewTickHub(p, 4)
	if err != nil {
		t.Error(err.ToString())
		t.FailNow()
	}

	const listeners = 3
	var counts [listeners]int64
	for i := 0; i < listeners; i++ {
		i := i
		hub.AddListener(i, func(frameTimeMs float64) {
			atomic.AddInt64(&counts[i], 1)
		})
	}

	go hub.Run()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		done := true
		for i := 0; i < listeners; i++ {
			if atomic.LoadInt64(&counts[i]) < 2 {
				done = false
			}
		}
		if done {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	hub.Stop()

	for i := 0; i < listeners; i++ {
		if got := atomic.LoadInt64(&counts[i]); got < 2 {
			t.Errorf("listener %d got %d ticks, want at least 2", i, got)
			t.FailNow()
		}
	}
}
