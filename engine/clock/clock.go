package clock

import (
	"sync"
	"time"
)

// Clock exposes the frame timing that per-frame animation reads.
// Reading a Clock never advances it.
type Clock interface {
	// Elapsed returns the cumulative seconds since the clock started.
	//
	// Returns:
	//   - float32: elapsed seconds
	Elapsed() float32

	// Delta returns the length of the last frame in seconds.
	//
	// Returns:
	//   - float32: last frame delta in seconds
	Delta() float32
}

// FrameClock is a Clock advanced explicitly by the owning frame loop, either by a
// known delta (Advance) or by wall time (Tick).
type FrameClock struct {
	mu       sync.Mutex
	elapsed  float64
	delta    float64
	lastTick time.Time
	now      func() time.Time
}

var _ Clock = &FrameClock{}

// New creates a FrameClock at zero elapsed time.
//
// Returns:
//   - *FrameClock: the new clock
func New() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewAt creates a FrameClock reporting the given elapsed time and frame delta.
// Mostly useful for replaying a frame deterministically.
//
// Parameters:
//   - elapsed: cumulative seconds
//   - delta: last frame delta in seconds
//
// Returns:
//   - *FrameClock: the new clock
func NewAt(elapsed, delta float32) *FrameClock {
	return &FrameClock{now: time.Now, elapsed: float64(elapsed), delta: float64(delta)}
}

func (c *FrameClock) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.elapsed)
}

func (c *FrameClock) Delta() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.delta)
}

// Advance moves the clock forward by dt seconds and records dt as the frame delta.
// Negative deltas are treated as zero.
//
// Parameters:
//   - dt: frame length in seconds
func (c *FrameClock) Advance(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := max(float64(dt), 0)
	c.delta = d
	c.elapsed += d
}

// Tick advances the clock by the wall time since the previous Tick. The first
// call only records the start time and yields a zero delta.
//
// Returns:
//   - float32: the delta that was applied
func (c *FrameClock) Tick() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if c.lastTick.IsZero() {
		c.lastTick = now
		c.delta = 0
		return 0
	}
	c.delta = now.Sub(c.lastTick).Seconds()
	c.elapsed += c.delta
	c.lastTick = now
	return float32(c.delta)
}
