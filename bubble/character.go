package bubble

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/Carmen-Shannon/crystal-runner/engine/clock"
	"github.com/Carmen-Shannon/crystal-runner/engine/game_object"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/model"
)

// Character is the player's soap-bubble avatar: a group node holding a translucent
// iridescent sphere mesh and a point light whose hue cycles over time.
//
// The avatar is not added to any scene by the constructor; register Group() with
// the scene that should draw it. A Character is driven from a single game loop
// and is not safe for concurrent use.
type Character interface {
	// Group returns the root node. Move, hide or register this node.
	//
	// Returns:
	//   - game_object.GameObject: the avatar group
	Group() game_object.GameObject

	// Mesh returns the sphere mesh child of the group.
	//
	// Returns:
	//   - game_object.GameObject: the bubble mesh
	Mesh() game_object.GameObject

	// Material returns the bubble mesh's material.
	//
	// Returns:
	//   - material.Material: the physical bubble material
	Material() material.Material

	// Light returns the rainbow point light attached to the group, or nil if the
	// avatar was built without one.
	//
	// Returns:
	//   - light.Light: the avatar light or nil
	Light() light.Light

	// Update advances the avatar by one frame. The group eases toward targetX by a
	// fixed fraction of the gap per call, bobs vertically, spins, rolls with the
	// lateral gap, wobbles its scale, and cycles the light hue. When the config is
	// frame-rate independent the follow and yaw steps are scaled by the clock delta
	// instead. The clock is read but never advanced.
	//
	// Parameters:
	//   - clk: source of elapsed time and frame delta in seconds
	//   - targetX: the lane position the avatar is moving toward
	//   - currentX: the avatar's current lane position as tracked by the caller
	//
	// Returns:
	//   - float32: the updated group x position
	Update(clk clock.Clock, targetX, currentX float32) float32

	// Reset restores the bubble material after a pop: opacity, a white emissive
	// glow and the configured emissive intensity. Other state is untouched.
	Reset()
}

type character struct {
	cfg  Config
	name string

	group game_object.GameObject
	mesh  game_object.GameObject
	mat   material.Material
	light light.Light

	position  [3]float32
	withLight bool
}

var _ Character = &character{}

// NewCharacter builds the bubble avatar.
//
// Parameters:
//   - options: functional options to configure the avatar
//
// Returns:
//   - Character: the new avatar
func NewCharacter(options ...CharacterBuilderOption) Character {
	c := &character{
		cfg:       DefaultConfig(),
		name:      "bubble",
		withLight: true,
	}
	for _, option := range options {
		option(c)
	}
	if err := c.cfg.Validate(); err != nil {
		panic(fmt.Sprintf("bubble: invalid config: %v", err))
	}

	cc := c.cfg.Character
	c.mat = material.NewMaterial(
		material.WithName(c.name+"-material"),
		material.WithKind(material.MaterialKindPhysical),
		material.WithHexColor(0xffffff),
		material.WithMetalness(0.1),
		material.WithRoughness(0.05),
		material.WithTransmission(0.95, 0.02),
		material.WithClearcoat(1.0, 0.1),
		material.WithIridescence(1.0, 1.3),
		material.WithEnvMapIntensity(2.0),
		material.WithEmissive([3]float32{0, 0, 0}, 1),
		material.WithOpacity(cc.Opacity),
	)
	sphere := model.NewSphere(cc.Radius, cc.Segments, cc.Segments, model.WithName(c.name+"-sphere"))
	c.mesh = game_object.NewMesh(sphere, c.mat,
		game_object.WithName(c.name+"-mesh"),
		game_object.WithCastShadow(true),
	)

	c.group = game_object.NewGameObject(
		game_object.WithName(c.name),
		game_object.WithPosition(c.position[0], c.position[1], c.position[2]),
		game_object.WithChildren(c.mesh),
	)

	if c.withLight {
		c.light = light.NewPointLight([3]float32{1, 1, 1}, cc.LightIntensity, cc.LightRange,
			light.WithName(c.name+"-light"),
			light.WithPosition(c.position[0], c.position[1], c.position[2]),
		)
		c.group.SetLight(c.light)
	}

	return c
}

func (c *character) Group() game_object.GameObject {
	return c.group
}

func (c *character) Mesh() game_object.GameObject {
	return c.mesh
}

func (c *character) Material() material.Material {
	return c.mat
}

func (c *character) Light() light.Light {
	return c.light
}

func (c *character) Update(clk clock.Clock, targetX, currentX float32) float32 {
	cc := c.cfg.Character
	elapsed := float64(clk.Elapsed())
	dt := max(clk.Delta(), 0)
	dx := targetX - currentX

	follow, yawFollow := cc.FollowRate, cc.YawFollow
	if c.cfg.FrameRateIndependent {
		frames := dt * c.cfg.ReferenceFrameRate
		follow = float32(common.SmoothingFactor(float64(cc.FollowRate), float64(frames)))
		yawFollow *= frames
	}

	x, _, z := c.group.Position()
	x += dx * follow
	y := cc.BobAmplitude * float32(math.Sin(elapsed*float64(cc.BobFrequency)))
	c.group.SetPosition(x, y, z)

	rx, ry, _ := c.group.Rotation()
	ry += dx*yawFollow + dt*cc.SpinRate
	c.group.SetRotation(rx, ry, dx*cc.RollFactor)

	var scale [3]float32
	for i := range scale {
		scale[i] = 1 + cc.WobbleAmplitude[i]*float32(math.Sin(elapsed*float64(cc.WobbleFrequency[i])))
	}
	c.group.SetScale(scale[0], scale[1], scale[2])

	if c.light != nil {
		rgb := common.HSLToRGB(elapsed*float64(cc.HueRate), float64(cc.LightSaturation), float64(cc.LightLightness))
		c.light.SetColor(rgb[0], rgb[1], rgb[2])
	}

	return x
}

func (c *character) Reset() {
	c.mat.SetOpacity(c.cfg.Character.ResetOpacity)
	c.mat.SetEmissiveHex(0xffffff)
	c.mat.SetEmissiveIntensity(c.cfg.Character.ResetEmissiveIntensity)
}
