package sim

import (
	"fmt"

	"saturn-scene/internal/cloud"
	"saturn-scene/internal/layout"
)

// Material is the surface of a sphere. Colors are sRGB in 0..1.
type Material struct {
	Color     [3]float32
	Emissive  float32
	Roughness float32
}

// Light is one scene light. Angle and Penumbra only apply to the spot light.
type Light struct {
	Color     [3]float32
	Intensity float32
	Position  [3]float32
	Angle     float32
	Penumbra  float32
}

// Lights groups the ambient term with the directional and spot lights.
type Lights struct {
	Ambient     [3]float32
	Directional Light
	Spot        Light
}

// World owns every entity of the scene. Clouds are built once by Build and never
// change; Step moves moons, spins the planet and rotates galaxies in place.
type World struct {
	Planet         *Planet
	PlanetMaterial Material
	Rings          []*cloud.PointCloud
	Moons          []*Moon
	MoonMaterial   Material
	Stars          *cloud.PointCloud
	Galaxies       []*cloud.Galaxy
	Lights         Lights
	Camera         layout.Camera
}

// Build generates every entity described by l, drawing randomness from rnd in a fixed order:
// rings, starfield, galaxies. The first invalid parameter aborts the build.
func Build(l layout.Layout, rnd cloud.Rand) (*World, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("validate layout: %w", err)
	}
	w := &World{
		Planet: &Planet{
			Position: l.Planet.Position,
			Radius:   l.Planet.Radius,
			Tilt:     l.Planet.Tilt,
			SpinRate: l.Planet.SpinRate,
		},
		Camera: l.Camera,
	}
	var err error
	if w.PlanetMaterial.Color, err = parseColor(l.Planet.Color); err != nil {
		return nil, err
	}
	w.PlanetMaterial.Roughness = l.Planet.Roughness

	for i, band := range l.Rings.Bands {
		ring, err := cloud.Ring(cloud.RingOptions{
			Radius:  band.Radius,
			Count:   band.Count,
			Opacity: band.Opacity,
			Y:       l.Rings.Y,
			Size:    l.Rings.Size,
		}, rnd)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		w.Rings = append(w.Rings, ring)
	}

	for _, o := range l.Moons.Orbits {
		w.Moons = append(w.Moons, NewMoon(o.Radius, o.Period, l.Moons.Size))
	}
	if w.MoonMaterial.Color, err = parseColor(l.Moons.Color); err != nil {
		return nil, err
	}
	w.MoonMaterial.Emissive = l.Moons.Emissive
	w.MoonMaterial.Roughness = l.Moons.Roughness

	w.Stars, err = cloud.Starfield(cloud.StarfieldOptions{
		Count:      l.Stars.Count,
		HalfExtent: l.Stars.Extent,
		Opacity:    l.Stars.Opacity,
		Size:       l.Stars.Size,
	}, rnd)
	if err != nil {
		return nil, fmt.Errorf("starfield: %w", err)
	}

	if l.Galaxies.Count > 0 {
		inner, err := cloud.ParseColor(l.Galaxies.Inner)
		if err != nil {
			return nil, fmt.Errorf("galaxy inner: %w", err)
		}
		outer, err := cloud.ParseColor(l.Galaxies.Outer)
		if err != nil {
			return nil, fmt.Errorf("galaxy outer: %w", err)
		}
		w.Galaxies, err = cloud.ScatterGalaxies(cloud.ScatterOptions{
			Count:     l.Galaxies.Count,
			Radius:    l.Galaxies.Radius,
			Particles: l.Galaxies.Particles,
			Spacing:   l.Galaxies.Spacing,
			YBias:     l.Galaxies.YBias,
			SpeedMin:  l.Galaxies.SpeedMin,
			SpeedMax:  l.Galaxies.SpeedMax,
			Galaxy: cloud.GalaxyOptions{
				Branches:    l.Galaxies.Branches,
				Spin:        l.Galaxies.Spin,
				Randomness:  l.Galaxies.Randomness,
				RandomPower: l.Galaxies.RandomPower,
				Inner:       inner,
				Outer:       outer,
				Opacity:     l.Galaxies.Opacity,
				Size:        l.Galaxies.Size,
			},
		}, rnd)
		if err != nil {
			return nil, fmt.Errorf("galaxies: %w", err)
		}
	}

	if w.Lights, err = buildLights(l.Lights); err != nil {
		return nil, err
	}
	return w, nil
}

func buildLights(l layout.Lights) (Lights, error) {
	var out Lights
	var err error
	if out.Ambient, err = parseColor(l.Ambient); err != nil {
		return out, err
	}
	if out.Directional.Color, err = parseColor(l.Directional.Color); err != nil {
		return out, err
	}
	out.Directional.Intensity = l.Directional.Intensity
	out.Directional.Position = l.Directional.Position
	if out.Spot.Color, err = parseColor(l.Spot.Color); err != nil {
		return out, err
	}
	out.Spot.Intensity = l.Spot.Intensity
	out.Spot.Position = l.Spot.Position
	out.Spot.Angle = l.Spot.Angle
	out.Spot.Penumbra = l.Spot.Penumbra
	return out, nil
}

func parseColor(hex string) ([3]float32, error) {
	c, err := cloud.ParseColor(hex)
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// Step advances the world to elapsed time t (seconds). Moons and the planet spin are
// functions of t alone; each galaxy gains one frame of rotation per call.
// Step allocates nothing and does constant work per entity.
func (w *World) Step(t float64) {
	for _, m := range w.Moons {
		m.At(t)
	}
	for _, g := range w.Galaxies {
		g.Advance()
	}
	w.Planet.At(t)
}

// Clouds lists every point cloud in draw order: stars, rings, then galaxy arms.
func (w *World) Clouds() []*cloud.PointCloud {
	out := make([]*cloud.PointCloud, 0, 1+len(w.Rings)+len(w.Galaxies))
	if w.Stars != nil {
		out = append(out, w.Stars)
	}
	out = append(out, w.Rings...)
	for _, g := range w.Galaxies {
		out = append(out, g.Cloud)
	}
	return out
}

// PointCount is the total number of points across all clouds.
func (w *World) PointCount() int {
	n := 0
	for _, c := range w.Clouds() {
		n += c.Len()
	}
	return n
}
