package camera

import "github.com/chewxy/math32"

const (
	// polarEpsilon keeps the camera off the poles where the up vector degenerates.
	polarEpsilon       = 0.000001
	defaultRotateSpeed = 1
	defaultZoomSpeed   = 1
	defaultMinDistance = 0.5
	defaultMaxDistance = 500
	zoomStep           = 0.95
)

// OrbitControls moves a camera on a sphere around Target. Input accumulates into a
// pending delta; with damping, Update applies a fraction of it each frame and decays
// the rest, so motion eases out after the mouse stops.
type OrbitControls struct {
	Target      [3]float32
	Damping     float32
	RotateSpeed float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32

	radius     float32
	theta      float32 // azimuth around +Y, 0 looks down -Z from +Z
	phi        float32 // polar angle from +Y
	deltaTheta float32
	deltaPhi   float32
	scale      float32
}

// NewOrbitControls starts at position looking at target. damping is the fraction of the
// pending rotation applied per Update; 0 applies it all at once.
func NewOrbitControls(position, target [3]float32, damping float32) *OrbitControls {
	c := &OrbitControls{
		Target:      target,
		Damping:     damping,
		RotateSpeed: defaultRotateSpeed,
		ZoomSpeed:   defaultZoomSpeed,
		MinDistance: defaultMinDistance,
		MaxDistance: defaultMaxDistance,
		scale:       1,
	}
	ox := position[0] - target[0]
	oy := position[1] - target[1]
	oz := position[2] - target[2]
	c.radius = math32.Sqrt(ox*ox + oy*oy + oz*oz)
	if c.radius > 0 {
		c.theta = math32.Atan2(ox, oz)
		c.phi = math32.Acos(clamp(oy/c.radius, -1, 1))
	}
	return c
}

// Rotate queues a drag of dx, dy pixels on a viewport viewportHeight pixels tall.
// A drag across the full height turns the camera once around.
func (c *OrbitControls) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * dx / viewportHeight * c.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * dy / viewportHeight * c.RotateSpeed
}

// Zoom queues wheel movement; positive moves toward the target.
func (c *OrbitControls) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	step := math32.Pow(zoomStep, c.ZoomSpeed*math32.Abs(wheel))
	if wheel > 0 {
		c.scale *= step
	} else {
		c.scale /= step
	}
}

// Update applies pending input and returns the new camera position.
func (c *OrbitControls) Update() [3]float32 {
	if c.Damping > 0 {
		c.theta += c.deltaTheta * c.Damping
		c.phi += c.deltaPhi * c.Damping
		c.deltaTheta *= 1 - c.Damping
		c.deltaPhi *= 1 - c.Damping
	} else {
		c.theta += c.deltaTheta
		c.phi += c.deltaPhi
		c.deltaTheta, c.deltaPhi = 0, 0
	}
	c.phi = clamp(c.phi, polarEpsilon, math32.Pi-polarEpsilon)
	c.radius = clamp(c.radius*c.scale, c.MinDistance, c.MaxDistance)
	c.scale = 1
	return c.Position()
}

// Position returns the current camera position without applying input.
func (c *OrbitControls) Position() [3]float32 {
	sinPhi := math32.Sin(c.phi)
	return [3]float32{
		c.Target[0] + c.radius*sinPhi*math32.Sin(c.theta),
		c.Target[1] + c.radius*math32.Cos(c.phi),
		c.Target[2] + c.radius*sinPhi*math32.Cos(c.theta),
	}
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}
