package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/crystal-runner/common"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/material"
	"github.com/Carmen-Shannon/crystal-runner/engine/model"
)

type gameObject struct {
	id            uint64
	name          string
	enabled       atomic.Bool
	ephemeral     bool
	castShadow    bool
	mdl           model.Model
	mat           material.Material
	attachedLight light.Light

	transform common.Transform
	parent    *gameObject
	children  []*gameObject
}

// GameObject defines the interface for a node in the scene graph.
//
// A GameObject carries a local transform and may hold a mesh (a Model plus a
// Material), an attached Light, and child objects whose transforms are relative
// to it. An object with neither model nor light acts as a plain group.
type GameObject interface {
	// ID returns the object's unique identifier. Zero until the object is added to a scene.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the object's debug name.
	//
	// Returns:
	//   - string: the name, may be empty
	Name() string

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Ephemeral returns whether this object is short-lived and owned by an
	// effect system rather than by game logic.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// CastShadow returns whether the mesh should render into shadow maps.
	//
	// Returns:
	//   - bool: true if the mesh casts shadows
	CastShadow() bool

	// Model returns the geometry associated with this object, or nil for groups.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Material returns the surface material, or nil for groups.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// IsMesh reports whether the object has both a model and a material.
	//
	// Returns:
	//   - bool: true if the object is drawable
	IsMesh() bool

	// Position returns the local position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the local Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// Scale returns the local scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// Transform returns a copy of the full local transform.
	//
	// Returns:
	//   - common.Transform: position, rotation and scale
	Transform() common.Transform

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetModel assigns the geometry.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)

	// SetMaterial assigns the surface material.
	//
	// Parameters:
	//   - mat: the Material to associate
	SetMaterial(mat material.Material)

	// SetPosition sets the local position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the local Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// SetLight attaches a Light to this object. A scene holding the object keeps
	// the light's position in sync with the object's world position. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)

	// Parent returns the parent object, or nil for a root.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// Children returns a copy of the child list in insertion order.
	//
	// Returns:
	//   - []GameObject: the children
	Children() []GameObject

	// AddChild attaches child under this object, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the object to attach
	AddChild(child GameObject)

	// RemoveChild detaches child if it is a direct child of this object.
	//
	// Parameters:
	//   - child: the object to detach
	RemoveChild(child GameObject)

	// WorldMatrix returns the model matrix composed with every ancestor's.
	//
	// Returns:
	//   - [16]float32: the column-major world matrix
	WorldMatrix() [16]float32

	// WorldPosition returns the object's origin in world space.
	//
	// Returns:
	//   - [3]float32: world position
	WorldPosition() [3]float32

	// Walk visits this object and every descendant depth-first, parents before children.
	//
	// Parameters:
	//   - fn: visitor; returning false skips the visited object's children
	Walk(fn func(obj GameObject) bool)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new, enabled GameObject at the origin with unit scale,
// configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		transform: common.NewTransform(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

// NewMesh is shorthand for a GameObject holding the given geometry and material.
//
// Parameters:
//   - m: the geometry
//   - mat: the material
//   - options: further options
//
// Returns:
//   - GameObject: the mesh object
func NewMesh(m model.Model, mat material.Material, options ...GameObjectBuilderOption) GameObject {
	return NewGameObject(append([]GameObjectBuilderOption{WithModel(m), WithMaterial(mat)}, options...)...)
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) CastShadow() bool {
	return g.castShadow
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) IsMesh() bool {
	return g.mdl != nil && g.mat != nil
}

func (g *gameObject) Position() (x, y, z float32) {
	p := g.transform.Position
	return p[0], p[1], p[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	r := g.transform.Rotation
	return r[0], r[1], r[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	s := g.transform.Scale
	return s[0], s[1], s[2]
}

func (g *gameObject) Transform() common.Transform {
	return g.transform
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetModel(m model.Model) {
	g.mdl = m
}

func (g *gameObject) SetMaterial(mat material.Material) {
	g.mat = mat
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.transform.Position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.transform.Rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.transform.Scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
}

func (g *gameObject) Parent() GameObject {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	out := make([]GameObject, len(g.children))
	for i, c := range g.children {
		out[i] = c
	}
	return out
}

func (g *gameObject) AddChild(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok || c == nil || c == g {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = g
	g.children = append(g.children, c)
}

func (g *gameObject) RemoveChild(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok {
		return
	}
	for i, existing := range g.children {
		if existing == c {
			g.children = append(g.children[:i], g.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (g *gameObject) WorldMatrix() [16]float32 {
	m := g.transform.Matrix()
	for p := g.parent; p != nil; p = p.parent {
		pm := p.transform.Matrix()
		common.Mul4(m[:], pm[:], m[:])
	}
	return m
}

func (g *gameObject) WorldPosition() [3]float32 {
	m := g.WorldMatrix()
	return [3]float32{m[12], m[13], m[14]}
}

func (g *gameObject) Walk(fn func(obj GameObject) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.children {
		c.Walk(fn)
	}
}
