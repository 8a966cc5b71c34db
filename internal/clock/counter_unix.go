//go:build !windows
// +build !windows

package clock

import "golang.org/x/sys/unix"

// CLOCK_MONOTONIC ticks in nanoseconds on every supported unix.
const nanosPerSecond = 1000000000

func queryFrequency() (int64, bool) {
	return nanosPerSecond, true
}

func queryCounter() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0
	}
	return ts.Nano()
}
