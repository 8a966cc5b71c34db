package clock

// Counter is a raw monotonic tick source. Ticks are meaningless on their
// own: they are only comparable against other ticks from the same process,
// scaled by TicksPerSecond.
type Counter struct {
	ticksPerSecond int64
	supported      bool
}

// NewCounter queries the platform counter frequency once. The result is
// constant for the process lifetime, so callers may keep a single Counter
// around for as long as they like.
func NewCounter() Counter {
	freq, ok := queryFrequency()
	return Counter{
		ticksPerSecond: freq,
		supported:      ok,
	}
}

// Supported reports whether the platform counter is usable. When false,
// Now and TicksPerSecond return meaningless values.
func (c Counter) Supported() bool {
	return c.supported
}

// TicksPerSecond returns the counter frequency.
func (c Counter) TicksPerSecond() int64 {
	return c.ticksPerSecond
}

// Now returns the current value of the tick counter.
func (c Counter) Now() int64 {
	return queryCounter()
}
