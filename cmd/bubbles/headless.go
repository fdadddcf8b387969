package main

import (
	"log"

	"github.com/Carmen-Shannon/crystal-runner/bubble"
	"github.com/Carmen-Shannon/crystal-runner/cmd/bubbles/internal/settings"
	"github.com/Carmen-Shannon/crystal-runner/cmd/bubbles/internal/sim"
	"github.com/Carmen-Shannon/crystal-runner/engine"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
)

// runHeadless drives the simulation from the engine tick loop for the configured
// duration, popping the bubble on a fixed interval.
func runHeadless(s settings.Settings, cfg bubble.Config) {
	sc := scene.NewScene("bubbles", scene.WithActive(true))
	world := sim.New(sc, cfg, sim.WithTrailRate(float32(s.TrailRate)))

	log.Printf("[Bubbles] headless run for %v at %.0f ticks/s", s.Duration, s.TickRate)
	r := sim.Soak(world, s.Duration,
		engine.WithTickRate(s.TickRate),
		engine.WithProfiling(s.Profile),
	)

	log.Printf("[Bubbles] finished after %.2fs of game time: %d pops, %d particles alive, %d in scene, %d lights, %d pending tasks",
		r.Elapsed, r.Pops, r.Particles, r.Scene.Ephemeral, r.Scene.Lights, r.Scene.PendingTasks)
}
