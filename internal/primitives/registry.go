package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// sphereRings and sphereSlices control sphere mesh resolution.
const (
	sphereRings  = 32
	sphereSlices = 32
)

// cached holds the mesh and material for a primitive type. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	locs litLocs
}

// litLocs are the lit shader's uniform locations, looked up once. -1 marks a missing uniform.
type litLocs struct {
	viewPos, ambient, lightDir, lightColor, spotPos, spotDir, spotColor   int32
	spotCosOuter, spotCosInner, emissive, specularPower, specularStrength int32
}

func noLitLocs() litLocs {
	return litLocs{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}
}

func lookupLitLocs(shader rl.Shader) litLocs {
	loc := func(name string) int32 { return rl.GetShaderLocation(shader, name) }
	return litLocs{
		viewPos:          loc("viewPos"),
		ambient:          loc("ambient"),
		lightDir:         loc("lightDir"),
		lightColor:       loc("lightColor"),
		spotPos:          loc("spotPos"),
		spotDir:          loc("spotDir"),
		spotColor:        loc("spotColor"),
		spotCosOuter:     loc("spotCosOuter"),
		spotCosInner:     loc("spotCosInner"),
		emissive:         loc("emissive"),
		specularPower:    loc("specularPower"),
		specularStrength: loc("specularStrength"),
	}
}

// Registry maps primitive type names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache  map[string]cached
	lights Lights
}

// NewRegistry returns a registry with no primitives. The sphere is created on first Draw.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached)}
}

// SetLights sets camera position and lights for this frame. Call once per frame
// before drawing so every sphere is shaded the same way.
func (r *Registry) SetLights(l Lights) {
	r.lights = l
}

// ensureSphere creates the unit-radius sphere mesh and its lit material if not yet cached.
func (r *Registry) ensureSphere() {
	if _, ok := r.cache["sphere"]; ok {
		return
	}
	mesh := rl.GenMeshSphere(1, sphereRings, sphereSlices)
	mtl := rl.LoadMaterialDefault()
	locs := noLitLocs()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
		locs = lookupLitLocs(shader)
	}
	r.cache["sphere"] = cached{mesh: mesh, mtl: mtl, locs: locs}
}

// loadLitShader returns a shader with ambient, one directional light, one spot light,
// Blinn-Phong specular and an emissive term.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 spotPos;
uniform vec3 spotDir;
uniform vec3 spotColor;
uniform float spotCosOuter;
uniform float spotCosInner;
uniform float emissive;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 color, vec3 albedo) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  return albedo * NdotL * color + color * spec * (NdotL > 0.0 ? 1.0 : 0.0);
}

void main() {
  vec3 albedo = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 lit = ambient * albedo;
  lit += shade(N, V, normalize(lightDir), lightColor, albedo);

  vec3 toSpot = normalize(spotPos - fragPosition);
  float cone = smoothstep(spotCosOuter, spotCosInner, dot(-toSpot, spotDir));
  lit += shade(N, V, toSpot, spotColor, albedo) * cone;

  lit += albedo * emissive;
  finalColor = vec4(lit, colDiffuse.a);
}
`
)

// specular maps roughness (0 smooth, 1 rough) to Blinn-Phong power and strength.
func specular(roughness float32) (power, strength float32) {
	smooth := 1 - roughness
	return 8 + smooth*56, smooth * 0.5
}

// setLitShaderUniforms uploads the frame lights and per-instance material.
func (r *Registry) setLitShaderUniforms(shader rl.Shader, locs litLocs, inst Instance) {
	l := r.lights
	setVec3(shader, locs.viewPos, l.ViewPos)
	setVec3(shader, locs.ambient, l.Ambient)
	setVec3(shader, locs.lightDir, l.LightDir)
	setVec3(shader, locs.lightColor, l.LightColor)
	setVec3(shader, locs.spotPos, l.SpotPos)
	setVec3(shader, locs.spotDir, l.SpotDir)
	setVec3(shader, locs.spotColor, l.SpotColor)

	power, strength := specular(inst.Roughness)
	setFloat(shader, locs.spotCosOuter, l.SpotCosOuter)
	setFloat(shader, locs.spotCosInner, l.SpotCosInner)
	setFloat(shader, locs.emissive, inst.Emissive)
	setFloat(shader, locs.specularPower, power)
	setFloat(shader, locs.specularStrength, strength)
}

func setVec3(shader rl.Shader, loc int32, v [3]float32) {
	if loc >= 0 {
		rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
	}
}

func setFloat(shader rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		val := [1]float32{v}
		rl.SetShaderValue(shader, loc, val[:], rl.ShaderUniformFloat)
	}
}

// DrawSphere draws one lit sphere. Must be called between BeginMode3D and EndMode3D,
// after SetLights for this frame.
func (r *Registry) DrawSphere(inst Instance) {
	r.ensureSphere()
	c := r.cache["sphere"]
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(channel(inst.Color[0]), channel(inst.Color[1]), channel(inst.Color[2]), 255)
	}
	r.setLitShaderUniforms(c.mtl.Shader, c.locs, inst)

	// Order: scale, spin about Y, tilt about X, then translate to position.
	transform := rl.MatrixScale(inst.Radius, inst.Radius, inst.Radius)
	transform = rl.MatrixMultiply(transform, rl.MatrixRotateY(inst.Spin))
	transform = rl.MatrixMultiply(transform, rl.MatrixRotateX(inst.Tilt))
	transform = rl.MatrixMultiply(transform, rl.MatrixTranslate(inst.Position[0], inst.Position[1], inst.Position[2]))
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// Unload releases every cached mesh and material. Call before the window closes.
func (r *Registry) Unload() {
	for key, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, key)
	}
}

func channel(v float32) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}
