// Package sim holds the bubble demo's game state: the avatar, its trail and pop
// cycle, and the projection of the scene into flat sprites for drawing.
// It has no windowing dependency so both the ebiten front-end and the headless
// engine loop drive the same code.
package sim

import (
	"math"
	"time"

	"github.com/Carmen-Shannon/crystal-runner/bubble"
	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/Carmen-Shannon/crystal-runner/engine/clock"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
)

const (
	laneLimit = 1.0
	// steerSpeed is how fast the target lane moves while a direction is held, in units per second.
	steerSpeed = 2.0
	// trailDrop places trail spawns slightly below the bubble centre.
	trailDrop = 0.08
)

// Simulation owns the demo's avatar and particles. It is driven from one loop.
type Simulation struct {
	scene       scene.Scene
	character   bubble.Character
	emitter     bubble.Emitter
	emitterOpts []bubble.EmitterBuilderOption
	clock       *clock.FrameClock

	particles []*bubble.Particle

	targetX  float32
	currentX float32

	trailRate float32
	trailDebt float32

	respawnDelay float32
	respawnIn    float32
	popped       bool
	pops         int

	popInterval float32
	sincePop    float32
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithTrailRate sets how many trail particles are spawned per second. Zero disables the trail.
func WithTrailRate(rate float32) Option {
	return func(s *Simulation) {
		s.trailRate = max(rate, 0)
	}
}

// WithRespawnDelay sets how long the bubble stays hidden after a pop, in game time.
func WithRespawnDelay(d time.Duration) Option {
	return func(s *Simulation) {
		s.respawnDelay = float32(d.Seconds())
	}
}

// WithPopInterval sets how often Autopilot pops the bubble.
func WithPopInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.popInterval = float32(d.Seconds())
	}
}

// WithEmitterOptions forwards options to the particle emitter, applied after the config.
func WithEmitterOptions(options ...bubble.EmitterBuilderOption) Option {
	return func(s *Simulation) {
		s.emitterOpts = append(s.emitterOpts, options...)
	}
}

// New builds a Simulation that registers the avatar in sc.
//
// Parameters:
//   - sc: the scene to populate
//   - cfg: the bubble effect configuration
//   - options: functional options
//
// Returns:
//   - *Simulation: the new simulation
func New(sc scene.Scene, cfg bubble.Config, options ...Option) *Simulation {
	s := &Simulation{
		scene:        sc,
		character:    bubble.NewCharacter(bubble.WithCharacterConfig(cfg)),
		clock:        clock.New(),
		trailRate:    30,
		respawnDelay: 1,
		popInterval:  2,
	}
	for _, option := range options {
		option(s)
	}
	s.emitter = bubble.NewEmitter(sc, append([]bubble.EmitterBuilderOption{bubble.WithEmitterConfig(cfg)}, s.emitterOpts...)...)
	sc.Add(s.character.Group())
	return s
}

func (s *Simulation) Scene() scene.Scene          { return s.scene }
func (s *Simulation) Character() bubble.Character { return s.character }
func (s *Simulation) Clock() clock.Clock          { return s.clock }
func (s *Simulation) TargetX() float32            { return s.targetX }
func (s *Simulation) CurrentX() float32           { return s.currentX }
func (s *Simulation) Particles() int              { return len(s.particles) }
func (s *Simulation) Popped() bool                { return s.popped }
func (s *Simulation) Pops() int                   { return s.pops }

// SetTarget moves the target lane, clamped to [-1, 1].
func (s *Simulation) SetTarget(x float32) {
	s.targetX = common.Clamp(x, -laneLimit, laneLimit)
}

// Steer nudges the target lane in direction dir (-1 left, +1 right) for dt seconds.
func (s *Simulation) Steer(dir, dt float32) {
	s.SetTarget(s.targetX + dir*steerSpeed*max(dt, 0))
}

// Pop bursts the bubble at its current position and hides it until the respawn
// delay has passed. Returns false if the bubble is already popped.
func (s *Simulation) Pop() bool {
	if s.popped {
		return false
	}
	group := s.character.Group()
	s.particles, _ = s.emitter.Explosion(group.WorldPosition(), s.particles)
	group.SetEnabled(false)
	s.popped = true
	s.respawnIn = s.respawnDelay
	s.pops++
	s.sincePop = 0
	return true
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float32) {
	dt = max(dt, 0)
	s.clock.Advance(dt)
	s.particles = s.emitter.Update(s.particles, dt)

	if s.popped {
		s.respawnIn -= dt
		if s.respawnIn <= 0 {
			s.popped = false
			s.character.Reset()
			s.character.Group().SetEnabled(true)
		}
		return
	}

	s.currentX = s.character.Update(s.clock, s.targetX, s.currentX)

	s.trailDebt += s.trailRate * dt
	if n := int(s.trailDebt); n > 0 {
		s.trailDebt -= float32(n)
		p := s.character.Group().WorldPosition()
		p[1] -= trailDrop
		s.particles = s.emitter.Trail(p, n, s.particles)
	}
}

// Autopilot weaves the target lane and pops the bubble on a fixed interval.
// Used by the headless soak run in place of keyboard input.
func (s *Simulation) Autopilot(dt float32) {
	s.SetTarget(0.8 * float32(math.Sin(float64(s.clock.Elapsed())*0.8)))
	s.sincePop += max(dt, 0)
	if s.popInterval > 0 && s.sincePop >= s.popInterval {
		s.Pop()
	}
}

// Clear removes every particle from the scene.
func (s *Simulation) Clear() {
	s.particles = s.emitter.Clear(s.particles)
}
