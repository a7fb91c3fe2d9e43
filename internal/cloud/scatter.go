package cloud

// ScatterOptions places Count galaxies at random inside a cube of side Spacing.
// YBias shifts every galaxy vertically; the scene uses -6 so the field sits below the planet.
type ScatterOptions struct {
	Count     int
	Radius    float32
	Particles int
	Spacing   float32
	YBias     float32
	SpeedMin  float32
	SpeedMax  float32
	// Galaxy carries shape, color and material; its Radius, Count, Y and RotationSpeed are ignored.
	Galaxy GalaxyOptions
}

// ScatterGalaxies builds Count galaxies, each with its own offset and rotation speed in
// [SpeedMin, SpeedMax). The arm points are generated at the galaxy's Y and the galaxy is
// then also translated by its full offset, so the vertical offset applies twice.
func ScatterGalaxies(opts ScatterOptions, rnd Rand) ([]*Galaxy, error) {
	if err := firstErr(
		positiveCount("galaxy scatter count", opts.Count),
		positive("galaxy scatter spacing", opts.Spacing),
		positive("galaxy radius", opts.Radius),
		positiveCount("galaxy count", opts.Particles),
		nonNegative("galaxy speed min", opts.SpeedMin),
	); err != nil {
		return nil, err
	}
	if opts.SpeedMax < opts.SpeedMin {
		return nil, &ConfigError{Field: "galaxy speed max", Value: opts.SpeedMax, Reason: "must not be below speed min"}
	}

	out := make([]*Galaxy, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		x := centered(rnd, opts.Spacing)
		y := centered(rnd, opts.Spacing) + opts.YBias
		z := centered(rnd, opts.Spacing)
		speed := uniform(rnd, opts.SpeedMin, opts.SpeedMax)

		g := opts.Galaxy
		g.Radius = opts.Radius
		g.Count = opts.Particles
		g.Y = y
		g.RotationSpeed = speed
		galaxy, err := NewGalaxy(g, rnd)
		if err != nil {
			return nil, err
		}
		galaxy.Position = [3]float32{x, y, z}
		out = append(out, galaxy)
	}
	return out, nil
}
