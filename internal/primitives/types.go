package primitives

// Instance is one sphere to draw this frame. Rotation is applied as spin about Y
// followed by tilt about X, then the sphere is moved to Position.
type Instance struct {
	Position  [3]float32
	Radius    float32
	Tilt      float32
	Spin      float32
	Color     [3]float32
	Emissive  float32
	Roughness float32
}

// Lights is the per-frame lighting state shared by every lit sphere.
// Directions point from the surface toward the light.
type Lights struct {
	ViewPos      [3]float32
	Ambient      [3]float32
	LightDir     [3]float32
	LightColor   [3]float32
	SpotPos      [3]float32
	SpotDir      [3]float32 // direction the spot shines, normalized
	SpotColor    [3]float32
	SpotCosOuter float32
	SpotCosInner float32
}
