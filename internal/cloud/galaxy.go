package cloud

import (
	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Galaxy shape defaults, as returned by DefaultGalaxy.
const (
	DefaultBranches      = 3
	DefaultSpin          = 1.5
	DefaultRandomness    = 0.5
	DefaultRandomPower   = 2
	DefaultGalaxySize    = 0.03
	DefaultGalaxyOpacity = 0.8
	DefaultInnerColor    = "#FF6030"
	DefaultOuterColor    = "#7138E4"
	// verticalFlatten scales the Y jitter so arms stay thin.
	verticalFlatten = 0.2
)

// GalaxyOptions describes one spiral galaxy. Every field is used as given.
type GalaxyOptions struct {
	Radius        float32
	Count         int
	Y             float32
	RotationSpeed float32

	Branches    int
	Spin        float32
	Randomness  float32
	RandomPower float32
	Inner       colorful.Color
	Outer       colorful.Color
	Opacity     float32
	Size        float32
}

// DefaultGalaxy returns the standard shape, palette and material. Radius and Count are left zero.
func DefaultGalaxy() GalaxyOptions {
	inner, _ := colorful.Hex(DefaultInnerColor)
	outer, _ := colorful.Hex(DefaultOuterColor)
	return GalaxyOptions{
		Branches:    DefaultBranches,
		Spin:        DefaultSpin,
		Randomness:  DefaultRandomness,
		RandomPower: DefaultRandomPower,
		Inner:       inner,
		Outer:       outer,
		Opacity:     DefaultGalaxyOpacity,
		Size:        DefaultGalaxySize,
	}
}

// Galaxy is a spiral point cloud plus its placement. Rotation is the Y angle in radians
// and grows by RotationSpeed every frame; the points themselves never move.
type Galaxy struct {
	Cloud         *PointCloud
	Position      [3]float32
	Rotation      float32
	RotationSpeed float32
}

// Advance adds one frame of rotation.
func (g *Galaxy) Advance() {
	g.Rotation += g.RotationSpeed
}

// NewGalaxy builds a spiral with Branches arms. Each point sits at a random distance r
// along an arm twisted by r*Spin, pushed off the arm by a power-biased jitter, and is
// colored from Inner (center) to Outer (rim).
func NewGalaxy(opts GalaxyOptions, rnd Rand) (*Galaxy, error) {
	if err := firstErr(
		positive("galaxy radius", opts.Radius),
		positiveCount("galaxy count", opts.Count),
		positiveCount("galaxy branches", opts.Branches),
		finite("galaxy spin", opts.Spin),
		nonNegative("galaxy rotation speed", opts.RotationSpeed),
		positive("galaxy random power", opts.RandomPower),
		nonNegative("galaxy randomness", opts.Randomness),
		opacity("galaxy opacity", opts.Opacity),
		positive("galaxy size", opts.Size),
	); err != nil {
		return nil, err
	}

	pc := newPointCloud("galaxy", opts.Count, Material{Size: opts.Size, Opacity: opts.Opacity})
	branches := float32(opts.Branches)
	for i := 0; i < opts.Count; i++ {
		r := uniform(rnd, 0, opts.Radius)
		branchAngle := float32(i%opts.Branches) / branches * 2 * math32.Pi
		angle := branchAngle + r*opts.Spin
		jx := jitter(rnd, opts.RandomPower, opts.Randomness)
		jy := jitter(rnd, opts.RandomPower, opts.Randomness*verticalFlatten)
		jz := jitter(rnd, opts.RandomPower, opts.Randomness)

		pos := [3]float32{
			math32.Cos(angle)*r + jx,
			opts.Y + jy,
			math32.Sin(angle)*r + jz,
		}
		pc.set(i, pos, armColor(opts.Inner, opts.Outer, r/opts.Radius))
	}
	return &Galaxy{Cloud: pc, RotationSpeed: opts.RotationSpeed}, nil
}

// armColor blends inner to outer in linear RGB at t in [0,1].
func armColor(inner, outer colorful.Color, t float32) [3]float32 {
	switch {
	case t <= 0:
		return rgb(inner)
	case t >= 1:
		return rgb(outer)
	}
	return rgb(inner.BlendLinearRgb(outer, float64(t)).Clamped())
}
