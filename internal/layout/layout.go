package layout

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the scene layout file, relative to the working directory.
const DefaultPath = "config/scene.yaml"

// Layout is the full description of the scene: every construction constant the
// generators and the stepper need. It is loaded once at startup.
type Layout struct {
	Planet   Planet   `yaml:"planet"`
	Rings    Rings    `yaml:"rings"`
	Moons    Moons    `yaml:"moons"`
	Stars    Stars    `yaml:"stars"`
	Galaxies Galaxies `yaml:"galaxies"`
	Camera   Camera   `yaml:"camera"`
	Lights   Lights   `yaml:"lights"`
}

// Planet is the central sphere. Tilt is the X rotation in radians; SpinRate is radians per second.
type Planet struct {
	Radius    float32    `yaml:"radius"`
	Position  [3]float32 `yaml:"position"`
	Tilt      float32    `yaml:"tilt"`
	SpinRate  float32    `yaml:"spin_rate"`
	Color     string     `yaml:"color"`
	Roughness float32    `yaml:"roughness"`
}

// Rings are concentric dust bands sharing one height and sprite size.
type Rings struct {
	Y     float32 `yaml:"y"`
	Size  float32 `yaml:"size"`
	Bands []Band  `yaml:"bands"`
}

// Band is one ring.
type Band struct {
	Radius  float32 `yaml:"radius"`
	Count   int     `yaml:"count"`
	Opacity float32 `yaml:"opacity"`
}

// Moons share one size and material; each orbit gives radius and period in seconds.
type Moons struct {
	Size      float32 `yaml:"size"`
	Color     string  `yaml:"color"`
	Emissive  float32 `yaml:"emissive"`
	Roughness float32 `yaml:"roughness"`
	Orbits    []Orbit `yaml:"orbits"`
}

// Orbit is a circular orbit in the XZ plane.
type Orbit struct {
	Radius float64 `yaml:"radius"`
	Period float64 `yaml:"period"`
}

// Stars is the background starfield.
type Stars struct {
	Count   int     `yaml:"count"`
	Extent  float32 `yaml:"extent"`
	Opacity float32 `yaml:"opacity"`
	Size    float32 `yaml:"size"`
}

// Galaxies controls the scattered spiral galaxies. YBias is added to every galaxy's
// vertical offset; Count 0 disables them. Shape values are used exactly as written,
// so spin 0 gives straight arms and randomness 0 puts every point on its arm.
type Galaxies struct {
	Count       int     `yaml:"count"`
	Radius      float32 `yaml:"radius"`
	Particles   int     `yaml:"particles"`
	Spacing     float32 `yaml:"spacing"`
	YBias       float32 `yaml:"y_bias"`
	SpeedMin    float32 `yaml:"speed_min"`
	SpeedMax    float32 `yaml:"speed_max"`
	Branches    int     `yaml:"branches"`
	Spin        float32 `yaml:"spin"`
	Randomness  float32 `yaml:"randomness"`
	RandomPower float32 `yaml:"random_power"`
	Inner       string  `yaml:"inner_color"`
	Outer       string  `yaml:"outer_color"`
	Opacity     float32 `yaml:"opacity"`
	Size        float32 `yaml:"size"`
}

// Camera is the initial view. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
	Damping  float32    `yaml:"damping"`
}

// Lights are the three lights of the scene.
type Lights struct {
	Ambient     string      `yaml:"ambient"`
	Directional Directional `yaml:"directional"`
	Spot        Spot        `yaml:"spot"`
}

// Directional shines from Position toward the origin.
type Directional struct {
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
}

// Spot is a cone light aimed at the origin. Angle is the half-angle in radians.
type Spot struct {
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
	Angle     float32    `yaml:"angle"`
	Penumbra  float32    `yaml:"penumbra"`
}

var defaultLayout = Layout{
	Planet: Planet{
		Radius:    2,
		Position:  [3]float32{0, -2, 0},
		Tilt:      -1.5707964,
		SpinRate:  0.0001,
		Color:     "#007bff",
		Roughness: 0.7,
	},
	Rings: Rings{
		Y:    -2,
		Size: 0.05,
		Bands: []Band{
			{Radius: 2.3, Count: 5000, Opacity: 0.8},
			{Radius: 2.8, Count: 3000, Opacity: 0.6},
			{Radius: 3.3, Count: 2000, Opacity: 0.4},
			{Radius: 3.8, Count: 1500, Opacity: 0.2},
			{Radius: 4.3, Count: 1000, Opacity: 0.1},
			{Radius: 4.8, Count: 500, Opacity: 0.05},
		},
	},
	Moons: Moons{
		Size:      0.5,
		Color:     "#ffffff",
		Emissive:  0.8,
		Roughness: 0.2,
		Orbits: []Orbit{
			{Radius: 4, Period: 10},
			{Radius: 5, Period: 20},
			{Radius: 6, Period: 30},
		},
	},
	Stars: Stars{Count: 1000, Extent: 100, Opacity: 0.9, Size: 0.2},
	Galaxies: Galaxies{
		Count:       20,
		Radius:      15,
		Particles:   10000,
		Spacing:     200,
		YBias:       -6,
		SpeedMin:    0.001,
		SpeedMax:    0.002,
		Branches:    3,
		Spin:        1.5,
		Randomness:  0.5,
		RandomPower: 2,
		Inner:       "#FF6030",
		Outer:       "#7138E4",
		Opacity:     0.8,
		Size:        0.03,
	},
	Camera: Camera{
		Position: [3]float32{0, 0, 10},
		Fovy:     75,
		Damping:  0.03,
	},
	Lights: Lights{
		Ambient:     "#444444",
		Directional: Directional{Color: "#ffffff", Intensity: 1.2, Position: [3]float32{2, 5, 3}},
		Spot: Spot{
			Color:     "#ffd700",
			Intensity: 0.7,
			Position:  [3]float32{-5, 5, -5},
			Angle:     0.7853982,
			Penumbra:  0.5,
		},
	},
}

// Default returns a fresh copy of the built-in layout. Callers may mutate it freely.
func Default() Layout {
	var l Layout
	if err := copier.CopyWithOption(&l, &defaultLayout, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("layout: copy defaults: %v", err))
	}
	return l
}

// Load reads a YAML layout from path on top of Default. A missing file yields Default;
// a malformed or invalid file is an error.
func Load(path string) (Layout, error) {
	l := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// Marshal renders the layout as YAML.
func (l Layout) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}
