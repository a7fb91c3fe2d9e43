package cloud

const (
	starGoldHue    = 0.15
	starWhiteHue   = 0
	starSaturation = 1
	starLightness  = 0.8
	// DefaultStarExtent is half the side of the star cube.
	DefaultStarExtent  = 100
	DefaultStarSize    = 0.2
	DefaultStarOpacity = 0.9
)

// StarfieldOptions describes a cube of stars centered on the origin.
type StarfieldOptions struct {
	Count int
	// HalfExtent bounds every coordinate to [-HalfExtent, HalfExtent].
	HalfExtent float32
	Opacity    float32
	Size       float32
}

// Starfield places Count stars uniformly in the cube, each one golden or white with equal odds.
func Starfield(opts StarfieldOptions, rnd Rand) (*PointCloud, error) {
	if err := firstErr(
		positiveCount("star count", opts.Count),
		positive("star extent", opts.HalfExtent),
		opacity("star opacity", opts.Opacity),
		positive("star size", opts.Size),
	); err != nil {
		return nil, err
	}

	pc := newPointCloud("stars", opts.Count, Material{Size: opts.Size, Opacity: opts.Opacity})
	gold := hsl(starGoldHue, starSaturation, starLightness)
	white := hsl(starWhiteHue, starSaturation, starLightness)
	span := opts.HalfExtent * 2
	for i := 0; i < opts.Count; i++ {
		x := centered(rnd, span)
		y := centered(rnd, span)
		z := centered(rnd, span)
		col := white
		if rnd.Float64() < 0.5 {
			col = gold
		}
		pc.set(i, [3]float32{x, y, z}, col)
	}
	return pc, nil
}
