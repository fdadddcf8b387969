package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockAdvance(t *testing.T) {
	c := New()
	c.Advance(0.5)
	c.Advance(0.25)

	assert.InDelta(t, 0.75, c.Elapsed(), 1e-6)
	assert.InDelta(t, 0.25, c.Delta(), 1e-6)

	c.Advance(-1)
	assert.InDelta(t, 0.75, c.Elapsed(), 1e-6)
	assert.Zero(t, c.Delta())
}

func TestFrameClockReadsDoNotAdvance(t *testing.T) {
	c := NewAt(2, 0.1)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 2, c.Elapsed(), 1e-6)
		assert.InDelta(t, 0.1, c.Delta(), 1e-6)
	}
}

func TestFrameClockTick(t *testing.T) {
	base := time.Unix(100, 0)
	current := base
	c := New()
	c.now = func() time.Time { return current }

	assert.Zero(t, c.Tick())

	current = base.Add(20 * time.Millisecond)
	assert.InDelta(t, 0.02, c.Tick(), 1e-6)

	current = base.Add(50 * time.Millisecond)
	assert.InDelta(t, 0.03, c.Tick(), 1e-6)
	assert.InDelta(t, 0.05, c.Elapsed(), 1e-6)
}
