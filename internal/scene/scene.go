package scene

import (
	"saturn-scene/internal/camera"
	"saturn-scene/internal/primitives"
	"saturn-scene/internal/sim"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene renders a sim.World with raylib. It reads the world's transforms every frame
// and never writes to them; the world is stepped by the caller.
type Scene struct {
	Camera   rl.Camera3D
	controls *camera.OrbitControls
	world    *sim.World
	prims    *primitives.Registry
	lights   primitives.Lights

	clouds       []cloudEntry
	cloudsLoaded bool
	spriteMtl    rl.Material
	sizeLoc      int32
	opacityLoc   int32
}

// New returns a scene for w with a perspective camera at the world's initial view.
// GPU resources are created on the first Draw, after the window exists.
func New(w *sim.World) *Scene {
	s := &Scene{
		world:    w,
		prims:    primitives.NewRegistry(),
		controls: camera.NewOrbitControls(w.Camera.Position, w.Camera.Target, w.Camera.Damping),
		lights:   frameLights(w.Lights),
	}
	s.Camera.Position = vec3(w.Camera.Position)
	s.Camera.Target = vec3(w.Camera.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = w.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective

	if w.Stars != nil {
		s.clouds = append(s.clouds, cloudEntry{cloud: w.Stars})
	}
	for _, r := range w.Rings {
		s.clouds = append(s.clouds, cloudEntry{cloud: r})
	}
	for _, g := range w.Galaxies {
		s.clouds = append(s.clouds, cloudEntry{cloud: g.Cloud, galaxy: g})
	}
	return s
}

// frameLights converts the world lights into shader terms. Only ViewPos changes per frame.
func frameLights(l sim.Lights) primitives.Lights {
	scale := func(c [3]float32, k float32) [3]float32 { return [3]float32{c[0] * k, c[1] * k, c[2] * k} }
	sp := l.Spot.Position
	return primitives.Lights{
		Ambient:      l.Ambient,
		LightDir:     normalize(l.Directional.Position),
		LightColor:   scale(l.Directional.Color, l.Directional.Intensity),
		SpotPos:      sp,
		SpotDir:      normalize([3]float32{-sp[0], -sp[1], -sp[2]}),
		SpotColor:    scale(l.Spot.Color, l.Spot.Intensity),
		SpotCosOuter: math32.Cos(l.Spot.Angle),
		SpotCosInner: math32.Cos(l.Spot.Angle * (1 - l.Spot.Penumbra)),
	}
}

// Update runs once per frame: left-drag orbits, the wheel zooms, and the damped
// controls move the camera.
func (s *Scene) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		s.controls.Rotate(d.X, d.Y, float32(rl.GetScreenHeight()))
	}
	s.controls.Zoom(rl.GetMouseWheelMove())
	s.Camera.Position = vec3(s.controls.Update())
}

// ensureClouds uploads every point cloud the first time we Draw, once the GL context exists.
func (s *Scene) ensureClouds() {
	if s.cloudsLoaded {
		return
	}
	s.cloudsLoaded = true
	s.spriteMtl = rl.LoadMaterialDefault()
	s.sizeLoc, s.opacityLoc = -1, -1
	shader := rl.LoadShaderFromMemory(spriteVS, spriteFS)
	if rl.IsShaderValid(shader) {
		s.spriteMtl.Shader = shader
		s.sizeLoc = rl.GetShaderLocation(shader, "pointSize")
		s.opacityLoc = rl.GetShaderLocation(shader, "opacity")
	}
	for i := range s.clouds {
		s.clouds[i].mesh = uploadCloud(s.clouds[i].cloud)
	}
}

// Draw renders the scene: lit spheres first, then the point clouds blended on top
// without writing depth.
func (s *Scene) Draw() {
	s.ensureClouds()
	s.lights.ViewPos = [3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}
	s.prims.SetLights(s.lights)

	rl.BeginMode3D(s.Camera)
	s.drawBodies()
	s.drawClouds()
	rl.EndMode3D()
}

func (s *Scene) drawBodies() {
	p := s.world.Planet
	pm := s.world.PlanetMaterial
	s.prims.DrawSphere(primitives.Instance{
		Position:  p.Position,
		Radius:    p.Radius,
		Tilt:      p.Tilt,
		Spin:      p.Spin,
		Color:     pm.Color,
		Emissive:  pm.Emissive,
		Roughness: pm.Roughness,
	})
	mm := s.world.MoonMaterial
	for _, m := range s.world.Moons {
		s.prims.DrawSphere(primitives.Instance{
			Position:  m.Position,
			Radius:    m.Size,
			Color:     mm.Color,
			Emissive:  mm.Emissive,
			Roughness: mm.Roughness,
		})
	}
}

func (s *Scene) drawClouds() {
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	identity := rl.MatrixIdentity()
	for i := range s.clouds {
		e := &s.clouds[i]
		transform := identity
		if g := e.galaxy; g != nil {
			transform = rl.MatrixMultiply(rl.MatrixRotateY(g.Rotation), rl.MatrixTranslate(g.Position[0], g.Position[1], g.Position[2]))
		}
		if s.sizeLoc >= 0 {
			rl.SetShaderValue(s.spriteMtl.Shader, s.sizeLoc, []float32{e.cloud.Material.Size}, rl.ShaderUniformFloat)
		}
		if s.opacityLoc >= 0 {
			rl.SetShaderValue(s.spriteMtl.Shader, s.opacityLoc, []float32{e.cloud.Material.Opacity}, rl.ShaderUniformFloat)
		}
		rl.DrawMesh(e.mesh, s.spriteMtl, transform)
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

// Close releases GPU resources. Call before the window closes.
func (s *Scene) Close() {
	s.prims.Unload()
	if !s.cloudsLoaded {
		return
	}
	for i := range s.clouds {
		rl.UnloadMesh(&s.clouds[i].mesh)
	}
	rl.UnloadMaterial(s.spriteMtl)
	s.cloudsLoaded = false
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func normalize(v [3]float32) [3]float32 {
	n := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float32{v[0] / n, v[1] / n, v[2] / n}
}
