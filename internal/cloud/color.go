package cloud

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// hsl converts a hue in turns (0..1) plus saturation and lightness to RGB.
func hsl(h, s, l float64) [3]float32 {
	return rgb(colorful.Hsl(h*360, s, l))
}

func rgb(c colorful.Color) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}
