package bubble

import "github.com/Carmen-Shannon/crystal-runner/engine/game_object"

// Particle is a short-lived decorative sphere mesh. Velocity is in world units per
// update call, or per second when the emitter is frame-rate independent. Life is
// the remaining lifetime in seconds.
type Particle struct {
	obj game_object.GameObject

	Velocity [3]float32
	Life     float32
}

// Object returns the particle's mesh node as registered in the scene.
//
// Returns:
//   - game_object.GameObject: the particle mesh
func (p *Particle) Object() game_object.GameObject {
	return p.obj
}

// Position returns the particle's current position.
func (p *Particle) Position() [3]float32 {
	x, y, z := p.obj.Position()
	return [3]float32{x, y, z}
}

// Opacity returns the particle material's current opacity.
func (p *Particle) Opacity() float32 {
	return p.obj.Material().Opacity()
}

// Alive reports whether the particle has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}
