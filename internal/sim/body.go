package sim

import "math"

// Moon is a sphere on a circular orbit in the XZ plane. Position is recomputed from
// elapsed time every frame; OrbitRadius and Period never change.
type Moon struct {
	OrbitRadius float64
	Period      float64
	Size        float32
	Position    [3]float32
}

// NewMoon returns a moon at its t=0 position (OrbitRadius, 0, 0).
func NewMoon(orbitRadius, period float64, size float32) *Moon {
	m := &Moon{OrbitRadius: orbitRadius, Period: period, Size: size}
	m.At(0)
	return m
}

// At places the moon where it is at time t seconds: angle = 2π·t/Period.
func (m *Moon) At(t float64) {
	angle := 2 * math.Pi * (t / m.Period)
	m.Position[0] = float32(m.OrbitRadius * math.Cos(angle))
	m.Position[1] = 0
	m.Position[2] = float32(m.OrbitRadius * math.Sin(angle))
}

// Planet is the central sphere. Tilt is a fixed X rotation; Spin is the Y rotation,
// a function of time only.
type Planet struct {
	Position [3]float32
	Radius   float32
	Tilt     float32
	Spin     float32
	SpinRate float32
}

// At sets the spin for time t seconds.
func (p *Planet) At(t float64) {
	p.Spin = float32(t) * p.SpinRate
}
