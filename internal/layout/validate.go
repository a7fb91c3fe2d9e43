package layout

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Validate checks the parts of the layout that no generator checks itself: colors,
// orbits, camera and lights. Point-cloud parameters are checked when the clouds are built.
// All problems are reported together.
func (l Layout) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	color := func(field, hex string) {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", field, hex))
		}
	}

	check(l.Planet.Radius > 0, "planet.radius must be positive, got %v", l.Planet.Radius)
	color("planet.color", l.Planet.Color)
	check(l.Planet.Roughness >= 0 && l.Planet.Roughness <= 1, "planet.roughness must be within [0,1], got %v", l.Planet.Roughness)

	check(l.Moons.Size > 0, "moons.size must be positive, got %v", l.Moons.Size)
	color("moons.color", l.Moons.Color)
	check(l.Moons.Roughness >= 0 && l.Moons.Roughness <= 1, "moons.roughness must be within [0,1], got %v", l.Moons.Roughness)
	for i, o := range l.Moons.Orbits {
		check(o.Radius > 0, "moons.orbits[%d].radius must be positive, got %v", i, o.Radius)
		check(o.Period > 0, "moons.orbits[%d].period must be positive, got %v", i, o.Period)
	}

	check(l.Galaxies.Count >= 0, "galaxies.count must not be negative, got %d", l.Galaxies.Count)
	if l.Galaxies.Count > 0 {
		color("galaxies.inner_color", l.Galaxies.Inner)
		color("galaxies.outer_color", l.Galaxies.Outer)
	}

	check(l.Camera.Fovy > 0 && l.Camera.Fovy < 180, "camera.fovy must be within (0,180), got %v", l.Camera.Fovy)
	check(l.Camera.Damping >= 0 && l.Camera.Damping <= 1, "camera.damping must be within [0,1], got %v", l.Camera.Damping)
	check(l.Camera.Position != l.Camera.Target, "camera.position must differ from camera.target")

	color("lights.ambient", l.Lights.Ambient)
	color("lights.directional.color", l.Lights.Directional.Color)
	color("lights.spot.color", l.Lights.Spot.Color)
	check(l.Lights.Spot.Angle > 0 && l.Lights.Spot.Angle < 1.5707964, "lights.spot.angle must be within (0,pi/2), got %v", l.Lights.Spot.Angle)
	check(l.Lights.Spot.Penumbra >= 0 && l.Lights.Spot.Penumbra <= 1, "lights.spot.penumbra must be within [0,1], got %v", l.Lights.Spot.Penumbra)

	return errors.Join(errs...)
}
