package scene

import (
	"unsafe"

	"saturn-scene/internal/cloud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Each point becomes two triangles whose corners the sprite shader pushes out in view space.
var spriteCorners = [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

// cloudEntry pairs a point cloud with its GPU mesh. galaxy is nil for clouds that never move.
type cloudEntry struct {
	cloud  *cloud.PointCloud
	galaxy *cloud.Galaxy
	mesh   rl.Mesh
}

// Sprite shader: square camera-facing points sized in world units, per-vertex color,
// per-cloud opacity.
const (
	spriteVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform float pointSize;
out vec4 fragColor;
void main() {
  vec4 viewPos = matView * matModel * vec4(vertexPosition, 1.0);
  viewPos.xy += vertexTexCoord * pointSize * 0.5;
  fragColor = vertexColor;
  gl_Position = matProjection * viewPos;
}
`
	spriteFS = `#version 330
in vec4 fragColor;
uniform float opacity;
out vec4 finalColor;
void main() {
  finalColor = vec4(fragColor.rgb, fragColor.a * opacity);
}
`
)

// uploadCloud builds a static mesh for pc. Buffers are allocated with raylib's allocator
// so UnloadMesh can free them.
func uploadCloud(pc *cloud.PointCloud) rl.Mesh {
	n := pc.Len()
	vertexCount := n * len(spriteCorners)
	verts := allocFloats(vertexCount * 3)
	uvs := allocFloats(vertexCount * 2)
	cols := allocBytes(vertexCount * 4)

	v := 0
	for i := 0; i < n; i++ {
		p := pc.Point(i)
		c := pc.Color(i)
		r, g, b := channel(c[0]), channel(c[1]), channel(c[2])
		for _, corner := range spriteCorners {
			copy(verts[v*3:v*3+3], p[:])
			uvs[v*2], uvs[v*2+1] = corner[0], corner[1]
			cols[v*4], cols[v*4+1], cols[v*4+2], cols[v*4+3] = r, g, b, 255
			v++
		}
	}

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(vertexCount / 3),
		Vertices:      &verts[0],
		Texcoords:     &uvs[0],
		Colors:        &cols[0],
	}
	rl.UploadMesh(&mesh, false)
	return mesh
}

func allocFloats(n int) []float32 {
	return unsafe.Slice((*float32)(rl.MemAlloc(uint32(n*4))), n)
}

func allocBytes(n int) []uint8 {
	return unsafe.Slice((*uint8)(rl.MemAlloc(uint32(n))), n)
}

func channel(v float32) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}
