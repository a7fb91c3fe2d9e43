package cloud

import "github.com/chewxy/math32"

// RingSpread is the radial thickness of a ring: points fall in [Radius, Radius+RingSpread].
const RingSpread = 0.3

const (
	ringHue        = 0.6
	ringSaturation = 1
	ringLightness  = 0.5
	// DefaultRingSize is the sprite size of ring dust.
	DefaultRingSize = 0.05
)

// RingOptions describes one dust ring in the XZ plane at height Y.
type RingOptions struct {
	Radius  float32
	Count   int
	Opacity float32
	Y       float32
	Size    float32
}

// Ring scatters Count points uniformly in angle over an annulus starting at Radius.
// Every point gets the same blue.
func Ring(opts RingOptions, rnd Rand) (*PointCloud, error) {
	if err := firstErr(
		positive("ring radius", opts.Radius),
		positiveCount("ring count", opts.Count),
		opacity("ring opacity", opts.Opacity),
		positive("ring size", opts.Size),
	); err != nil {
		return nil, err
	}
	pc := newPointCloud("ring", opts.Count, Material{Size: opts.Size, Opacity: opts.Opacity})
	col := hsl(ringHue, ringSaturation, ringLightness)
	for i := 0; i < opts.Count; i++ {
		r := opts.Radius + uniform(rnd, 0, RingSpread)
		angle := uniform(rnd, 0, 2*math32.Pi)
		pc.set(i, [3]float32{r * math32.Cos(angle), opts.Y, r * math32.Sin(angle)}, col)
	}
	return pc, nil
}
