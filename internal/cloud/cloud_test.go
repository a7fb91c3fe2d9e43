package cloud

import (
	"errors"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// scriptedRand replays vals in order, wrapping around at the end.
type scriptedRand struct {
	vals []float64
	next int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

func stars(count int) StarfieldOptions {
	return StarfieldOptions{Count: count, HalfExtent: DefaultStarExtent, Opacity: DefaultStarOpacity, Size: DefaultStarSize}
}

func withY(g GalaxyOptions, y float32) GalaxyOptions {
	g.Y = y
	return g
}

func galaxy(radius float32, count int) GalaxyOptions {
	g := DefaultGalaxy()
	g.Radius = radius
	g.Count = count
	return g
}

func TestRing(t *testing.T) {
	Convey("Given a ring of radius 2.3 with 5000 points", t, func() {
		pc, err := Ring(RingOptions{Radius: 2.3, Count: 5000, Opacity: 0.8, Y: -2, Size: DefaultRingSize}, NewRand(7))
		So(err, ShouldBeNil)

		Convey("Buffers hold three floats per point", func() {
			So(pc.Len(), ShouldEqual, 5000)
			So(len(pc.Positions), ShouldEqual, 5000*3)
			So(len(pc.Colors), ShouldEqual, 5000*3)
		})

		Convey("Every point lies in the annulus at the fixed height", func() {
			for i := 0; i < pc.Len(); i++ {
				p := pc.Point(i)
				r := math32.Sqrt(p[0]*p[0] + p[2]*p[2])
				So(r, ShouldBeGreaterThanOrEqualTo, 2.3-1e-5)
				So(r, ShouldBeLessThanOrEqualTo, 2.3+RingSpread+1e-5)
				So(p[1], ShouldEqual, float32(-2))
			}
		})

		Convey("The color buffer is uniform", func() {
			first := pc.Color(0)
			for i := 1; i < pc.Len(); i++ {
				So(pc.Color(i), ShouldResemble, first)
			}
			So(first[2], ShouldBeGreaterThan, first[0])
		})

		Convey("Material carries the opacity and size", func() {
			So(pc.Material.Opacity, ShouldEqual, float32(0.8))
			So(pc.Material.Size, ShouldEqual, float32(DefaultRingSize))
		})
	})

	Convey("A fully transparent ring keeps opacity 0", t, func() {
		pc, err := Ring(RingOptions{Radius: 1, Count: 10, Opacity: 0, Size: DefaultRingSize}, NewRand(1))
		So(err, ShouldBeNil)
		So(pc.Material.Opacity, ShouldEqual, float32(0))
	})

	Convey("Invalid ring parameters fail with a ConfigError", t, func() {
		cases := []RingOptions{
			{Radius: 0, Count: 10, Opacity: 1, Size: 1},
			{Radius: -1, Count: 10, Opacity: 1, Size: 1},
			{Radius: 1, Count: 0, Opacity: 1, Size: 1},
			{Radius: 1, Count: 10, Opacity: 1.5, Size: 1},
			{Radius: 1, Count: 10, Opacity: 1, Size: 0},
			{Radius: float32(math.NaN()), Count: 10, Opacity: 1, Size: 1},
		}
		for _, opts := range cases {
			pc, err := Ring(opts, NewRand(1))
			So(pc, ShouldBeNil)
			var cfgErr *ConfigError
			So(errors.As(err, &cfgErr), ShouldBeTrue)
			So(cfgErr.Field, ShouldStartWith, "ring")
		}
	})
}

func TestStarfield(t *testing.T) {
	Convey("Given 1000 stars", t, func() {
		pc, err := Starfield(stars(1000), NewRand(3))
		So(err, ShouldBeNil)
		So(len(pc.Positions), ShouldEqual, 3000)
		So(len(pc.Colors), ShouldEqual, 3000)

		Convey("Every coordinate lies in [-100, 100]", func() {
			for _, v := range pc.Positions {
				So(v, ShouldBeBetweenOrEqual, -100, 100)
			}
			lo, hi := pc.Bounds()
			for axis := 0; axis < 3; axis++ {
				So(lo[axis], ShouldBeGreaterThanOrEqualTo, -100)
				So(hi[axis], ShouldBeLessThanOrEqualTo, 100)
			}
		})

		Convey("Stars use exactly the two palette colors", func() {
			gold := hsl(starGoldHue, starSaturation, starLightness)
			white := hsl(starWhiteHue, starSaturation, starLightness)
			var golds, whites int
			for i := 0; i < pc.Len(); i++ {
				switch pc.Color(i) {
				case gold:
					golds++
				case white:
					whites++
				}
			}
			So(golds+whites, ShouldEqual, 1000)
			So(golds, ShouldBeGreaterThan, 350)
			So(whites, ShouldBeGreaterThan, 350)
		})
	})

	Convey("A zero star count is rejected", t, func() {
		_, err := Starfield(stars(0), NewRand(3))
		var cfgErr *ConfigError
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "star count")
	})

	Convey("A fully transparent starfield keeps opacity 0", t, func() {
		opts := stars(10)
		opts.Opacity = 0
		pc, err := Starfield(opts, NewRand(3))
		So(err, ShouldBeNil)
		So(pc.Material.Opacity, ShouldEqual, float32(0))
	})

	Convey("A zero extent is rejected rather than replaced", t, func() {
		opts := stars(10)
		opts.HalfExtent = 0
		_, err := Starfield(opts, NewRand(3))
		var cfgErr *ConfigError
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "star extent")
	})
}

func TestGalaxy(t *testing.T) {
	inner, _ := colorful.Hex(DefaultInnerColor)
	outer, _ := colorful.Hex(DefaultOuterColor)

	Convey("Arm color interpolates from inner to outer", t, func() {
		at0 := armColor(inner, outer, 0)
		at1 := armColor(inner, outer, 1)
		So(at0, ShouldResemble, rgb(inner))
		So(at1, ShouldResemble, rgb(outer))

		mid := armColor(inner, outer, 0.5)
		for ch := 0; ch < 3; ch++ {
			lo := min(at0[ch], at1[ch])
			hi := max(at0[ch], at1[ch])
			So(mid[ch], ShouldBeBetweenOrEqual, lo-1e-6, hi+1e-6)
		}
	})

	Convey("A point drawn at r = 0 is the inner color at the arm root", t, func() {
		g, err := NewGalaxy(withY(galaxy(15, 3), 4), constRand(0))
		So(err, ShouldBeNil)
		for i := 0; i < 3; i++ {
			So(g.Cloud.Point(i), ShouldResemble, [3]float32{0, 4, 0})
			c := g.Cloud.Color(i)
			want := rgb(inner)
			for ch := 0; ch < 3; ch++ {
				So(c[ch], ShouldAlmostEqual, want[ch], 1e-5)
			}
		}
	})

	Convey("A point drawn at r close to radius is the outer color", t, func() {
		g, err := NewGalaxy(galaxy(15, 1), constRand(0.9999999))
		So(err, ShouldBeNil)
		c := g.Cloud.Color(0)
		want := rgb(outer)
		for ch := 0; ch < 3; ch++ {
			So(c[ch], ShouldAlmostEqual, want[ch], 1e-4)
		}
	})

	Convey("Arm points follow the branch angle twisted by r times spin", t, func() {
		// Per point: r draw, then magnitude and sign for each jitter axis.
		rnd := &scriptedRand{vals: []float64{0.4, 0, 0.3, 0, 0.7, 0, 0.2}}
		g, err := NewGalaxy(withY(galaxy(10, 3), -1), rnd)
		So(err, ShouldBeNil)
		const r = 4
		for k := 0; k < 3; k++ {
			angle := float32(k)/3*2*math32.Pi + r*DefaultSpin
			p := g.Cloud.Point(k)
			So(p[0], ShouldAlmostEqual, math32.Cos(angle)*r, 1e-4)
			So(p[1], ShouldEqual, float32(-1))
			So(p[2], ShouldAlmostEqual, math32.Sin(angle)*r, 1e-4)
		}
	})

	Convey("Zero spin and zero randomness give straight arms", t, func() {
		opts := galaxy(10, 3)
		opts.Spin = 0
		opts.Randomness = 0
		g, err := NewGalaxy(opts, constRand(0.5))
		So(err, ShouldBeNil)
		p := g.Cloud.Point(0)
		So(p[0], ShouldAlmostEqual, 5, 1e-5)
		So(p[2], ShouldAlmostEqual, 0, 1e-5)
		p = g.Cloud.Point(1)
		So(p[0], ShouldAlmostEqual, -2.5, 1e-4)
		So(p[2], ShouldAlmostEqual, 5*math32.Sin(2*math32.Pi/3), 1e-4)
	})

	Convey("A black palette stays black", t, func() {
		opts := galaxy(10, 20)
		opts.Inner = colorful.Color{}
		opts.Outer = colorful.Color{}
		g, err := NewGalaxy(opts, NewRand(2))
		So(err, ShouldBeNil)
		for _, c := range g.Cloud.Colors {
			So(c, ShouldEqual, float32(0))
		}
	})

	Convey("Given a default galaxy", t, func() {
		opts := withY(galaxy(15, 10000), -6)
		opts.RotationSpeed = 0.0015
		g, err := NewGalaxy(opts, NewRand(11))
		So(err, ShouldBeNil)
		So(len(g.Cloud.Positions), ShouldEqual, 30000)
		So(len(g.Cloud.Colors), ShouldEqual, 30000)

		Convey("Points stay within radius plus jitter and near the plane", func() {
			for i := 0; i < g.Cloud.Len(); i++ {
				p := g.Cloud.Point(i)
				So(math32.Sqrt(p[0]*p[0]+p[2]*p[2]), ShouldBeLessThanOrEqualTo, 15+DefaultRandomness*1.4143+1e-4)
				So(p[1], ShouldBeBetweenOrEqual, -6-DefaultRandomness*verticalFlatten-1e-5, -6+DefaultRandomness*verticalFlatten+1e-5)
			}
		})

		Convey("Advance accumulates rotation without touching points", func() {
			before := append([]float32(nil), g.Cloud.Positions...)
			for i := 0; i < 1000; i++ {
				g.Advance()
			}
			So(g.Rotation, ShouldAlmostEqual, 1.5, 1e-3)
			So(g.Cloud.Positions, ShouldResemble, before)
		})
	})

	Convey("Invalid galaxy parameters are rejected", t, func() {
		_, err := NewGalaxy(galaxy(0, 10), NewRand(1))
		var cfgErr *ConfigError
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "galaxy radius")

		_, err = NewGalaxy(galaxy(1, -5), NewRand(1))
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "galaxy count")

		noArms := galaxy(1, 5)
		noArms.Branches = 0
		_, err = NewGalaxy(noArms, NewRand(1))
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "galaxy branches")

		_, err = NewGalaxy(GalaxyOptions{Radius: 1, Count: 5, Branches: 3}, NewRand(1))
		So(errors.As(err, &cfgErr), ShouldBeTrue)
		So(cfgErr.Field, ShouldEqual, "galaxy random power")
	})
}

func TestScatterGalaxies(t *testing.T) {
	opts := ScatterOptions{
		Count:     5,
		Radius:    15,
		Particles: 200,
		Spacing:   200,
		YBias:     -6,
		SpeedMin:  0.001,
		SpeedMax:  0.002,
		Galaxy:    DefaultGalaxy(),
	}

	Convey("Scattered galaxies get independent offsets and speeds", t, func() {
		gs, err := ScatterGalaxies(opts, NewRand(5))
		So(err, ShouldBeNil)
		So(gs, ShouldHaveLength, 5)
		for _, g := range gs {
			So(g.RotationSpeed, ShouldBeBetweenOrEqual, 0.001, 0.002)
			So(g.Position[0], ShouldBeBetweenOrEqual, -100, 100)
			So(g.Position[1], ShouldBeBetweenOrEqual, -106, 94)
			So(g.Position[2], ShouldBeBetweenOrEqual, -100, 100)
			So(g.Cloud.Len(), ShouldEqual, 200)
			So(g.Rotation, ShouldEqual, 0)
		}
		So(gs[0].Position, ShouldNotResemble, gs[1].Position)
	})

	Convey("An inverted speed range is rejected", t, func() {
		bad := opts
		bad.SpeedMin, bad.SpeedMax = 0.002, 0.001
		_, err := ScatterGalaxies(bad, NewRand(5))
		var cfgErr *ConfigError
		So(errors.As(err, &cfgErr), ShouldBeTrue)
	})
}

func TestDeterminism(t *testing.T) {
	Convey("The same seed and parameters reproduce identical buffers", t, func() {
		a, err := Ring(RingOptions{Radius: 2.8, Count: 300, Opacity: 0.6, Y: -2, Size: DefaultRingSize}, NewRand(99))
		So(err, ShouldBeNil)
		b, err := Ring(RingOptions{Radius: 2.8, Count: 300, Opacity: 0.6, Y: -2, Size: DefaultRingSize}, NewRand(99))
		So(err, ShouldBeNil)
		So(a.Positions, ShouldResemble, b.Positions)
		So(a.Colors, ShouldResemble, b.Colors)

		ga, _ := NewGalaxy(galaxy(15, 500), NewRand(4))
		gb, _ := NewGalaxy(galaxy(15, 500), NewRand(4))
		So(ga.Cloud.Positions, ShouldResemble, gb.Cloud.Positions)
		So(ga.Cloud.Colors, ShouldResemble, gb.Cloud.Colors)

		c, _ := Ring(RingOptions{Radius: 2.8, Count: 300, Opacity: 0.6, Y: -2, Size: DefaultRingSize}, NewRand(100))
		So(c.Positions, ShouldNotResemble, a.Positions)
	})
}

func TestBounds(t *testing.T) {
	Convey("Bounds covers every point", t, func() {
		pc := newPointCloud("test", 2, Material{})
		pc.set(0, [3]float32{-1, 2, 3}, [3]float32{})
		pc.set(1, [3]float32{4, -5, 0}, [3]float32{})
		lo, hi := pc.Bounds()
		So(lo, ShouldResemble, [3]float32{-1, -5, 0})
		So(hi, ShouldResemble, [3]float32{4, 2, 3})
	})
}
