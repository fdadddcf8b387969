package model

// Vertex is a single mesh vertex.
type Vertex struct {
	// Position is the vertex position in model space.
	Position [3]float32

	// Normal is the unit surface normal.
	Normal [3]float32

	// UV holds the texture coordinates.
	UV [2]float32
}

// Shape identifies the procedural generator that produced a model.
type Shape int

const (
	// ShapeCustom is a model built from caller-supplied vertex data.
	ShapeCustom Shape = iota
	// ShapeSphere is a UV sphere.
	ShapeSphere
)
