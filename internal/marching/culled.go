package marching

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

// Culled-face extraction: every solid voxel cell is an axis-aligned unit
// cube and contributes one quad per face exposed to a non-solid neighbor or
// to the outside of the volume. No table dependency; the result is blocky
// rather than smoothed.

// solid reports voxel solidity for culled-face extraction. Unlike
// CornerMask this comparison is non-strict: a sample exactly at the surface
// level counts as solid.
func solid(vol *volume.Volume, x, y, z int) bool {
	return vol.At(x, y, z) >= vol.SurfaceLevel
}

// exposed reports whether the face toward (x,y,z) should be emitted.
func exposed(vol *volume.Volume, x, y, z int) bool {
	if !vol.Contains(x, y, z) {
		return true
	}
	return vol.At(x, y, z) < vol.SurfaceLevel
}

// ExtractCulledFaces emits one quad (two triangles) per exposed face of
// every solid voxel. Faces are grouped by direction: +Y top, -Y bottom,
// everything else side.
func ExtractCulledFaces(vol *volume.Volume) *mesh.Buffers {
	b := &mesh.Buffers{}
	culledRange(vol, 0, vol.Width, b)
	b.ComputeTangents()
	return b
}

// culledRange processes voxels with x in [x0,x1), appending quads to b.
func culledRange(vol *volume.Volume, x0, x1 int, b *mesh.Buffers) {
	for x := x0; x < x1; x++ {
		for y := 0; y < vol.Height; y++ {
			for z := 0; z < vol.Depth; z++ {
				if !solid(vol, x, y, z) {
					continue
				}
				fx0, fy0, fz0 := float32(x), float32(y), float32(z)
				fx1, fy1, fz1 := fx0+1, fy0+1, fz0+1

				if exposed(vol, x+1, y, z) { // +X (east)
					emitQuad(&b.Side, mgl32.Vec3{1, 0, 0},
						mgl32.Vec3{fx1, fy0, fz0},
						mgl32.Vec3{fx1, fy0, fz1},
						mgl32.Vec3{fx1, fy1, fz1},
						mgl32.Vec3{fx1, fy1, fz0},
					)
				}
				if exposed(vol, x-1, y, z) { // -X (west)
					emitQuad(&b.Side, mgl32.Vec3{-1, 0, 0},
						mgl32.Vec3{fx0, fy0, fz0},
						mgl32.Vec3{fx0, fy1, fz0},
						mgl32.Vec3{fx0, fy1, fz1},
						mgl32.Vec3{fx0, fy0, fz1},
					)
				}
				if exposed(vol, x, y+1, z) { // +Y (top)
					emitQuad(&b.Top, mgl32.Vec3{0, 1, 0},
						mgl32.Vec3{fx0, fy1, fz0},
						mgl32.Vec3{fx1, fy1, fz0},
						mgl32.Vec3{fx1, fy1, fz1},
						mgl32.Vec3{fx0, fy1, fz1},
					)
				}
				if exposed(vol, x, y-1, z) { // -Y (bottom)
					emitQuad(&b.Bottom, mgl32.Vec3{0, -1, 0},
						mgl32.Vec3{fx0, fy0, fz0},
						mgl32.Vec3{fx0, fy0, fz1},
						mgl32.Vec3{fx1, fy0, fz1},
						mgl32.Vec3{fx1, fy0, fz0},
					)
				}
				if exposed(vol, x, y, z+1) { // +Z (north)
					emitQuad(&b.Side, mgl32.Vec3{0, 0, 1},
						mgl32.Vec3{fx0, fy0, fz1},
						mgl32.Vec3{fx0, fy1, fz1},
						mgl32.Vec3{fx1, fy1, fz1},
						mgl32.Vec3{fx1, fy0, fz1},
					)
				}
				if exposed(vol, x, y, z-1) { // -Z (south)
					emitQuad(&b.Side, mgl32.Vec3{0, 0, -1},
						mgl32.Vec3{fx0, fy0, fz0},
						mgl32.Vec3{fx1, fy0, fz0},
						mgl32.Vec3{fx1, fy1, fz0},
						mgl32.Vec3{fx0, fy1, fz0},
					)
				}
			}
		}
	}
}

// quadUV maps the four quad corners onto the unit quad.
var quadUV = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// emitQuad appends two triangles (q0,q1,q2) and (q2,q3,q0) with the face
// normal assigned per vertex. The +Y and -Y windings above are chosen so
// the winding cross product matches the stream: negative Y cross for top
// faces, positive for bottom.
func emitQuad(s *mesh.Stream, normal mgl32.Vec3, q0, q1, q2, q3 mgl32.Vec3) {
	*s = append(*s,
		mesh.Vertex{Position: q0, Normal: normal, UV: quadUV[0]},
		mesh.Vertex{Position: q1, Normal: normal, UV: quadUV[1]},
		mesh.Vertex{Position: q2, Normal: normal, UV: quadUV[2]},
		mesh.Vertex{Position: q2, Normal: normal, UV: quadUV[2]},
		mesh.Vertex{Position: q3, Normal: normal, UV: quadUV[3]},
		mesh.Vertex{Position: q0, Normal: normal, UV: quadUV[0]},
	)
}
