package cloud

import "github.com/chewxy/math32"

// Material holds the render attributes of a point cloud. Size is the sprite edge in world units.
type Material struct {
	Size    float32
	Opacity float32
}

// PointCloud is a fixed-length set of 3D points with parallel RGB colors.
// Positions and Colors are packed xyz / rgb triples and always have the same length.
// Buffers are filled once by a generator and are not modified afterwards.
type PointCloud struct {
	Name      string
	Positions []float32
	Colors    []float32
	Material  Material
}

// newPointCloud allocates both buffers for n points.
func newPointCloud(name string, n int, mtl Material) *PointCloud {
	return &PointCloud{
		Name:      name,
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
		Material:  mtl,
	}
}

// Len returns the number of points.
func (c *PointCloud) Len() int {
	return len(c.Positions) / 3
}

// Point returns the position of point i.
func (c *PointCloud) Point(i int) [3]float32 {
	return [3]float32{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]}
}

// Color returns the RGB color of point i, each channel in [0,1].
func (c *PointCloud) Color(i int) [3]float32 {
	return [3]float32{c.Colors[i*3], c.Colors[i*3+1], c.Colors[i*3+2]}
}

func (c *PointCloud) set(i int, pos, col [3]float32) {
	copy(c.Positions[i*3:i*3+3], pos[:])
	copy(c.Colors[i*3:i*3+3], col[:])
}

// Bounds returns the axis-aligned min and max corners of all points. Empty clouds return zeros.
func (c *PointCloud) Bounds() (lo, hi [3]float32) {
	if c.Len() == 0 {
		return lo, hi
	}
	lo = [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	hi = [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for i := 0; i < len(c.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := c.Positions[i+axis]
			lo[axis] = min(lo[axis], v)
			hi[axis] = max(hi[axis], v)
		}
	}
	return lo, hi
}
