package material

import "github.com/Carmen-Shannon/crystal-runner/common"

// MaterialKind selects the shading model a renderer should use for a material.
type MaterialKind int

const (
	// MaterialKindBasic is unlit: the colour is drawn as-is, scaled by opacity.
	MaterialKindBasic MaterialKind = iota
	// MaterialKindPhysical is a PBR surface with transmission, clearcoat and iridescence.
	MaterialKindPhysical
)

// material is the implementation of the Material interface.
type material struct {
	name               string
	kind               MaterialKind
	color              [3]float32
	opacity            float32
	transparent        bool
	emissive           [3]float32
	emissiveIntensity  float32
	metalness          float32
	roughness          float32
	transmission       float32
	thickness          float32
	clearcoat          float32
	clearcoatRoughness float32
	iridescence        float32
	iridescenceIOR     float32
	envMapIntensity    float32
}

// Material defines the surface description of a mesh.
//
// Colour, opacity and emissive terms are mutable at runtime so effects can fade
// or glow objects frame by frame. The physical terms (transmission, clearcoat,
// iridescence and friends) are only meaningful for MaterialKindPhysical and are
// set at construction.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind returns the shading model.
	//
	// Returns:
	//   - MaterialKind: basic or physical
	Kind() MaterialKind

	// Color returns the base RGB colour.
	//
	// Returns:
	//   - [3]float32: colour as (r, g, b)
	Color() [3]float32

	// Opacity returns the alpha multiplier. Only honoured when Transparent is true.
	//
	// Returns:
	//   - float32: opacity in [0, 1]
	Opacity() float32

	// Transparent reports whether the material is alpha blended.
	//
	// Returns:
	//   - bool: true if blended
	Transparent() bool

	// Emissive returns the emissive RGB colour.
	//
	// Returns:
	//   - [3]float32: emissive colour
	Emissive() [3]float32

	// EmissiveIntensity returns the emissive multiplier.
	//
	// Returns:
	//   - float32: emissive intensity
	EmissiveIntensity() float32

	// Metalness returns the metallic factor (0 = dielectric, 1 = metal).
	Metalness() float32

	// Roughness returns the roughness factor (0 = mirror, 1 = fully rough).
	Roughness() float32

	// Transmission returns how much light passes through the surface.
	Transmission() float32

	// Thickness returns the volume thickness used for refraction.
	Thickness() float32

	// Clearcoat returns the clearcoat layer strength.
	Clearcoat() float32

	// ClearcoatRoughness returns the clearcoat layer roughness.
	ClearcoatRoughness() float32

	// Iridescence returns the thin-film iridescence strength.
	Iridescence() float32

	// IridescenceIOR returns the thin-film index of refraction.
	IridescenceIOR() float32

	// EnvMapIntensity returns the environment reflection multiplier.
	EnvMapIntensity() float32

	// SetColor sets the base RGB colour.
	//
	// Parameters:
	//   - r, g, b: colour components
	SetColor(r, g, b float32)

	// SetOpacity sets the alpha multiplier. The value is stored as given and
	// clamped only when resolving DisplayColor.
	//
	// Parameters:
	//   - opacity: the new opacity
	SetOpacity(opacity float32)

	// SetEmissive sets the emissive RGB colour.
	//
	// Parameters:
	//   - r, g, b: colour components
	SetEmissive(r, g, b float32)

	// SetEmissiveHex sets the emissive colour from a packed 0xRRGGBB value.
	//
	// Parameters:
	//   - hex: the packed colour
	SetEmissiveHex(hex uint32)

	// SetEmissiveIntensity sets the emissive multiplier.
	//
	// Parameters:
	//   - intensity: the new intensity
	SetEmissiveIntensity(intensity float32)

	// DisplayColor returns the colour a flat renderer should draw: base colour
	// plus emissive contribution, clamped, with the effective alpha.
	//
	// Returns:
	//   - [4]float32: (r, g, b, a)
	DisplayColor() [4]float32
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults to an opaque white basic material.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		kind:            MaterialKindBasic,
		color:           [3]float32{1, 1, 1},
		opacity:         1.0,
		roughness:       1.0,
		iridescenceIOR:  1.3,
		envMapIntensity: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string               { return m.name }
func (m *material) Kind() MaterialKind         { return m.kind }
func (m *material) Color() [3]float32          { return m.color }
func (m *material) Opacity() float32           { return m.opacity }
func (m *material) Transparent() bool          { return m.transparent }
func (m *material) Emissive() [3]float32       { return m.emissive }
func (m *material) EmissiveIntensity() float32 { return m.emissiveIntensity }
func (m *material) Metalness() float32         { return m.metalness }
func (m *material) Roughness() float32         { return m.roughness }
func (m *material) Transmission() float32      { return m.transmission }
func (m *material) Thickness() float32         { return m.thickness }
func (m *material) Clearcoat() float32         { return m.clearcoat }
func (m *material) ClearcoatRoughness() float32 {
	return m.clearcoatRoughness
}
func (m *material) Iridescence() float32     { return m.iridescence }
func (m *material) IridescenceIOR() float32  { return m.iridescenceIOR }
func (m *material) EnvMapIntensity() float32 { return m.envMapIntensity }

func (m *material) SetColor(r, g, b float32) {
	m.color = [3]float32{r, g, b}
}

func (m *material) SetOpacity(opacity float32) {
	m.opacity = opacity
}

func (m *material) SetEmissive(r, g, b float32) {
	m.emissive = [3]float32{r, g, b}
}

func (m *material) SetEmissiveHex(hex uint32) {
	m.emissive = common.HexToRGB(hex)
}

func (m *material) SetEmissiveIntensity(intensity float32) {
	m.emissiveIntensity = intensity
}

func (m *material) DisplayColor() [4]float32 {
	var out [4]float32
	for i := 0; i < 3; i++ {
		out[i] = common.Clamp(m.color[i]+m.emissive[i]*m.emissiveIntensity, 0, 1)
	}
	out[3] = 1
	if m.transparent {
		out[3] = common.Clamp(m.opacity, 0, 1)
	}
	return out
}
