package sim

import (
	"time"

	"github.com/Carmen-Shannon/crystal-runner/engine"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
)

// Report summarises a simulation run.
type Report struct {
	Elapsed   float32
	Pops      int
	Particles int
	Scene     scene.Stats
}

// Report snapshots the simulation and its scene.
func (s *Simulation) Report() Report {
	return Report{
		Elapsed:   s.clock.Elapsed(),
		Pops:      s.pops,
		Particles: len(s.particles),
		Scene:     s.scene.Stats(),
	}
}

// Soak drives the simulation on an engine tick loop with Autopilot steering for
// d of wall time. The report is taken once the loop has stopped and before the
// scene is disposed.
//
// Parameters:
//   - world: the simulation to drive; its scene is registered with the engine
//   - d: how long to run
//   - options: extra engine options such as tick rate or profiling
//
// Returns:
//   - Report: the state at the end of the run
func Soak(world *Simulation, d time.Duration, options ...engine.EngineBuilderOption) Report {
	options = append(options,
		engine.WithScene(0, world.Scene()),
		engine.WithDisposeOnExit(false),
		engine.WithTickCallback(func(dt float32) {
			world.Autopilot(dt)
			world.Step(dt)
		}),
	)
	e := engine.NewEngine(options...)

	timer := time.AfterFunc(d, e.Quit)
	defer timer.Stop()
	e.Run()

	r := world.Report()
	world.Scene().Dispose()
	return r
}
