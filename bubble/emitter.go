package bubble

import (
	"fmt"
	"math/rand/v2"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/Carmen-Shannon/crystal-runner/engine/game_object"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/model"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
)

// Emitter spawns and ages bubble particles in a scene.
//
// The caller owns the particle slice: each operation takes it and returns the
// updated slice, in the manner of append. A particle is registered in the scene
// exactly as long as it is in the slice returned by the emitter.
// An Emitter is driven from a single game loop and is not safe for concurrent use.
type Emitter interface {
	// Scene returns the scene particles are registered in.
	//
	// Returns:
	//   - scene.Scene: the target scene
	Scene() scene.Scene

	// Config returns the effect configuration in use.
	//
	// Returns:
	//   - Config: the configuration
	Config() Config

	// Trail spawns count shimmer particles around pos. Each has a random small
	// radius, a pale random colour, a random jitter from pos, a mostly upward
	// drift and a random lifetime. count <= 0 is a no-op.
	//
	// Parameters:
	//   - pos: spawn centre in world space
	//   - count: number of particles to spawn
	//   - particles: the live particle slice to append to
	//
	// Returns:
	//   - []*Particle: particles with the new ones appended
	Trail(pos [3]float32, count int, particles []*Particle) []*Particle

	// Explosion spawns the pop burst at pos: a fixed number of cyan droplets
	// flying out in random directions, plus a bright flash light that a scene
	// task removes after the configured flash duration. Disposing the scene or
	// cancelling the task stops the pending removal.
	//
	// Parameters:
	//   - pos: burst centre in world space
	//   - particles: the live particle slice to append to
	//
	// Returns:
	//   - []*Particle: particles with the droplets appended
	//   - scene.Task: the scheduled flash removal
	Explosion(pos [3]float32, particles []*Particle) ([]*Particle, scene.Task)

	// Update ages every particle by dt seconds: it moves each by its velocity
	// (one step per call, or velocity*dt when frame-rate independent), reduces
	// its life, sets its opacity proportional to the remaining life, and
	// removes it from the scene and the slice once life reaches zero. Survivors
	// keep their relative order and vacated slots of the backing array are
	// cleared. Negative dt is treated as zero.
	//
	// Parameters:
	//   - particles: the live particle slice
	//   - dt: elapsed seconds since the last update
	//
	// Returns:
	//   - []*Particle: the surviving particles, sharing the input's backing array
	Update(particles []*Particle, dt float32) []*Particle

	// Clear removes every particle from the scene.
	//
	// Parameters:
	//   - particles: the live particle slice
	//
	// Returns:
	//   - []*Particle: an empty slice sharing the input's backing array
	Clear(particles []*Particle) []*Particle
}

type emitter struct {
	scene scene.Scene
	cfg   Config
	rng   *rand.Rand

	// explosionModel is shared by every droplet since their radius is fixed.
	explosionModel model.Model
}

var _ Emitter = &emitter{}

// NewEmitter creates an Emitter that registers particles in sc.
//
// Parameters:
//   - sc: the scene particles and flash lights are added to (required)
//   - options: functional options to configure the emitter
//
// Returns:
//   - Emitter: the new emitter
func NewEmitter(sc scene.Scene, options ...EmitterBuilderOption) Emitter {
	if sc == nil {
		panic("bubble: scene is required")
	}
	e := &emitter{
		scene: sc,
		cfg:   DefaultConfig(),
	}
	for _, option := range options {
		option(e)
	}
	if err := e.cfg.Validate(); err != nil {
		panic(fmt.Sprintf("bubble: invalid config: %v", err))
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	ex := e.cfg.Explosion
	e.explosionModel = model.NewSphere(ex.Radius, ex.Segments, ex.Segments, model.WithName("bubble-droplet"))
	return e
}

func (e *emitter) Scene() scene.Scene {
	return e.scene
}

func (e *emitter) Config() Config {
	return e.cfg
}

func (e *emitter) Trail(pos [3]float32, count int, particles []*Particle) []*Particle {
	tr := e.cfg.Trail
	vs := e.velocityScale()
	jitter := common.Symmetric(tr.Jitter)

	for range max(count, 0) {
		mat := material.NewMaterial(
			material.WithName("bubble-trail"),
			material.WithColor([3]float32{
				tr.ColorChannel.Sample(e.rng),
				tr.ColorChannel.Sample(e.rng),
				tr.ColorChannel.Sample(e.rng),
			}),
			material.WithOpacity(tr.Opacity),
		)
		sphere := model.NewSphere(tr.Radius.Sample(e.rng), tr.Segments, tr.Segments, model.WithName("bubble-trail"))

		p := &Particle{
			obj: game_object.NewMesh(sphere, mat,
				game_object.WithName("bubble-trail"),
				game_object.WithEphemeral(true),
				game_object.WithPosition(
					pos[0]+jitter.Sample(e.rng),
					pos[1]+jitter.Sample(e.rng),
					pos[2]+jitter.Sample(e.rng),
				),
			),
			Velocity: [3]float32{
				tr.VelocityX.Sample(e.rng) * vs,
				tr.VelocityY.Sample(e.rng) * vs,
				tr.VelocityZ.Sample(e.rng) * vs,
			},
			Life: tr.Life.Sample(e.rng),
		}
		e.scene.Add(p.obj)
		particles = append(particles, p)
	}
	return particles
}

func (e *emitter) Explosion(pos [3]float32, particles []*Particle) ([]*Particle, scene.Task) {
	ex := e.cfg.Explosion
	vs := e.velocityScale()
	speed := common.Symmetric(ex.Speed)

	for range ex.Count {
		mat := material.NewMaterial(
			material.WithName("bubble-droplet"),
			material.WithHexColor(ex.Color),
			material.WithOpacity(ex.Opacity),
		)
		p := &Particle{
			obj: game_object.NewMesh(e.explosionModel, mat,
				game_object.WithName("bubble-droplet"),
				game_object.WithEphemeral(true),
				game_object.WithPosition(pos[0], pos[1], pos[2]),
			),
			Velocity: [3]float32{
				speed.Sample(e.rng) * vs,
				speed.Sample(e.rng) * vs,
				speed.Sample(e.rng) * vs,
			},
			Life: ex.Life,
		}
		e.scene.Add(p.obj)
		particles = append(particles, p)
	}

	flash := light.NewPointLight(common.HexToRGB(ex.FlashColor), ex.FlashIntensity, ex.FlashRange,
		light.WithName("bubble-flash"),
		light.WithPosition(pos[0], pos[1], pos[2]),
		light.WithEphemeral(true),
	)
	e.scene.AddLight(flash)
	task := e.scene.Schedule(ex.FlashDuration, func() {
		e.scene.RemoveLight(flash)
	})

	return particles, task
}

func (e *emitter) Update(particles []*Particle, dt float32) []*Particle {
	dt = max(dt, 0)
	fade := e.cfg.ParticleFade
	step := float32(1)
	if e.cfg.FrameRateIndependent {
		step = dt
	}

	n := 0
	for _, p := range particles {
		if p == nil {
			continue
		}
		x, y, z := p.obj.Position()
		p.obj.SetPosition(x+p.Velocity[0]*step, y+p.Velocity[1]*step, z+p.Velocity[2]*step)
		p.Life -= dt
		p.obj.Material().SetOpacity(p.Life * fade)

		if p.Life <= 0 {
			e.scene.RemoveObject(p.obj)
			continue
		}
		particles[n] = p
		n++
	}
	clear(particles[n:])
	return particles[:n]
}

// velocityScale converts configured per-frame velocities to the stored unit.
func (e *emitter) velocityScale() float32 {
	if e.cfg.FrameRateIndependent {
		return e.cfg.ReferenceFrameRate
	}
	return 1
}

func (e *emitter) Clear(particles []*Particle) []*Particle {
	for _, p := range particles {
		if p != nil {
			e.scene.RemoveObject(p.obj)
		}
	}
	clear(particles)
	return particles[:0]
}
