package sim

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Carmen-Shannon/crystal-runner/bubble"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulation(t *testing.T, options ...Option) *Simulation {
	t.Helper()
	sc := scene.NewScene("demo", scene.WithActive(true))
	t.Cleanup(sc.Dispose)
	options = append([]Option{WithEmitterOptions(bubble.WithRand(rand.New(rand.NewPCG(7, 7))))}, options...)
	return New(sc, bubble.DefaultConfig(), options...)
}

func TestNewRegistersAvatar(t *testing.T) {
	s := newTestSimulation(t)

	assert.True(t, s.Scene().Contains(s.Character().Group()))
	assert.Equal(t, 1, s.Scene().Count())
	assert.Zero(t, s.Particles())
}

func TestStepFollowsTarget(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0))
	s.SetTarget(1)

	s.Step(1.0 / 60.0)
	assert.InDelta(t, 0.2, s.CurrentX(), 1e-5)

	for range 300 {
		s.Step(1.0 / 60.0)
	}
	assert.InDelta(t, 1, s.CurrentX(), 1e-3)
	assert.InDelta(t, 5.0+1.0/60.0, s.Clock().Elapsed(), 1e-3)
}

func TestSteerClamps(t *testing.T) {
	s := newTestSimulation(t)

	s.Steer(1, 10)
	assert.Equal(t, float32(1), s.TargetX())
	s.Steer(-1, 0.25)
	assert.Equal(t, float32(0.5), s.TargetX())
	s.Steer(-1, 10)
	assert.Equal(t, float32(-1), s.TargetX())
	s.Steer(1, -5)
	assert.Equal(t, float32(-1), s.TargetX())
}

func TestStepSpawnsTrailAtRate(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(30))

	s.Step(0.1)
	assert.Equal(t, 3, s.Particles())
	s.Step(0.1)
	assert.Equal(t, 6, s.Particles())
	assert.Equal(t, 6, s.Scene().CountEphemeral())

	// Fractional rates carry over between steps.
	s2 := newTestSimulation(t, WithTrailRate(15))
	s2.Step(1.0 / 60.0)
	assert.Zero(t, s2.Particles())
	for range 3 {
		s2.Step(1.0 / 60.0)
	}
	assert.Equal(t, 1, s2.Particles())
}

func TestPopAndRespawn(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0), WithRespawnDelay(time.Second))
	mat := s.Character().Material()
	mat.SetOpacity(0.3)

	require.True(t, s.Pop())
	assert.False(t, s.Pop())
	assert.True(t, s.Popped())
	assert.Equal(t, 1, s.Pops())
	assert.False(t, s.Character().Group().Enabled())
	assert.Equal(t, 20, s.Particles())
	assert.Equal(t, 1, s.Scene().PendingTasks())

	s.Step(0.5)
	assert.True(t, s.Popped())

	s.Step(0.5)
	assert.False(t, s.Popped())
	assert.True(t, s.Character().Group().Enabled())
	assert.InDelta(t, 0.8, mat.Opacity(), 1e-6)
	assert.InDelta(t, 0.2, mat.EmissiveIntensity(), 1e-6)
}

func TestStepWhilePoppedFreezesAvatar(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(30))
	s.SetTarget(1)
	s.Pop()

	s.Step(0.1)
	assert.Zero(t, s.CurrentX())
	assert.Equal(t, 20, s.Particles(), "no trail while popped")
}

func TestAutopilotPopsOnInterval(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(0), WithPopInterval(time.Second), WithRespawnDelay(100*time.Millisecond))

	for range 9 {
		s.Autopilot(0.1)
		s.Step(0.1)
	}
	assert.Zero(t, s.Pops())

	s.Autopilot(0.1)
	assert.Equal(t, 1, s.Pops())
	assert.LessOrEqual(t, s.TargetX(), float32(0.8))
	assert.GreaterOrEqual(t, s.TargetX(), float32(-0.8))
}

func TestClear(t *testing.T) {
	s := newTestSimulation(t, WithTrailRate(30))
	s.Step(0.2)
	require.NotZero(t, s.Particles())

	s.Clear()
	assert.Zero(t, s.Particles())
	assert.Zero(t, s.Scene().CountEphemeral())
}
