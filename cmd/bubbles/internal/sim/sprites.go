package sim

import (
	"image/color"
	"math"
	"slices"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/Carmen-Shannon/crystal-runner/engine/camera"
	"github.com/Carmen-Shannon/crystal-runner/engine/game_object"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
)

// Sprite is a mesh or light flattened to a screen-space disc.
type Sprite struct {
	X, Y   float32
	Radius float32
	// Depth is the normalized projected depth; larger is further away.
	Depth float32
	Color color.NRGBA
	// Glow marks a light halo rather than a mesh.
	Glow bool
}

const (
	minSpriteRadius = 1
	glowScale       = 0.25
	lightContrib    = 0.35
)

// Sprites projects every enabled mesh in sc through cam, plus a halo for each
// ephemeral light, culls what falls outside the view frustum, and returns the
// result sorted back to front.
//
// Parameters:
//   - sc: the scene to draw
//   - cam: the camera to project through
//
// Returns:
//   - []Sprite: sprites ordered far to near
func Sprites(sc scene.Scene, cam camera.Camera) []Sprite {
	frustum := cam.Frustum()
	lights := sc.Lights()
	ambient := sc.AmbientColor()

	var out []Sprite
	for _, root := range sc.Objects() {
		root.Walk(func(obj game_object.GameObject) bool {
			if !obj.Enabled() {
				return false
			}
			if !obj.IsMesh() {
				return true
			}
			world := obj.WorldMatrix()
			center := [3]float32{world[12], world[13], world[14]}
			radius := obj.Model().BoundingRadius() * maxAxisScale(world)
			if !frustum.IntersectsSphere(center, radius) {
				return true
			}
			x, y, depth, ok := cam.Project(center)
			if !ok {
				return true
			}
			out = append(out, Sprite{
				X:      x,
				Y:      y,
				Radius: max(cam.ProjectedRadius(center, radius), minSpriteRadius),
				Depth:  depth,
				Color:  Shade(obj.Material(), center, lights, ambient),
			})
			return true
		})
	}

	for _, l := range lights {
		if !l.Ephemeral() || !l.Enabled() || l.Type() != light.LightTypePoint {
			continue
		}
		center := l.Position()
		radius := l.Range() * glowScale
		if !frustum.IntersectsSphere(center, radius) {
			continue
		}
		x, y, depth, ok := cam.Project(center)
		if !ok {
			continue
		}
		c := l.Color()
		out = append(out, Sprite{
			X:      x,
			Y:      y,
			Radius: max(cam.ProjectedRadius(center, radius), minSpriteRadius),
			Depth:  depth,
			Color:  toNRGBA([4]float32{c[0], c[1], c[2], common.Clamp(l.Intensity()*0.15, 0, 0.6)}),
			Glow:   true,
		})
	}

	slices.SortStableFunc(out, func(a, b Sprite) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
	return out
}

// Shade approximates the lit colour of a material at p: the material's display
// colour, dimmed toward the ambient colour, plus the attenuated colour of each
// enabled light.
//
// Parameters:
//   - mat: the surface material
//   - p: the world-space point being shaded
//   - lights: scene lights
//   - ambient: ambient light colour
//
// Returns:
//   - color.NRGBA: the shaded colour with the material's alpha
func Shade(mat material.Material, p [3]float32, lights []light.Light, ambient [3]float32) color.NRGBA {
	base := mat.DisplayColor()
	lit := [4]float32{base[0], base[1], base[2], base[3]}
	for i := 0; i < 3; i++ {
		lit[i] = base[i] * (1 - lightContrib + lightContrib*ambient[i])
	}
	for _, l := range lights {
		if !l.Enabled() {
			continue
		}
		k := l.Attenuation(p) * l.Intensity() * lightContrib
		if k <= 0 {
			continue
		}
		c := l.Color()
		for i := 0; i < 3; i++ {
			lit[i] += c[i] * k
		}
	}
	return toNRGBA(lit)
}

// maxAxisScale returns the largest basis vector length of a model matrix.
func maxAxisScale(m [16]float32) float32 {
	var s float32
	for col := 0; col < 3; col++ {
		x, y, z := m[col*4], m[col*4+1], m[col*4+2]
		s = max(s, float32(math.Sqrt(float64(x*x+y*y+z*z))))
	}
	return s
}

func toNRGBA(c [4]float32) color.NRGBA {
	to8 := func(v float32) uint8 {
		return uint8(common.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}
