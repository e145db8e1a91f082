package marching

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

// ExtractMarchingCubes walks the volume cube by cube and emits the
// table-driven surface as three classified triangle streams. Boundary cubes
// get no special handling, so the surface may clip open at the volume
// limits. Any dimension below 2 yields zero cubes and empty buffers.
func ExtractMarchingCubes(vol *volume.Volume) *mesh.Buffers {
	b := &mesh.Buffers{}
	if vol.Width < 2 || vol.Height < 2 || vol.Depth < 2 {
		return b
	}
	marchRange(vol, 0, vol.Width-1, b)
	b.Finalize()
	return b
}

// marchRange processes cube origins with x in [x0,x1), appending raw
// triangles to b. Iterations are independent, which is what the parallel
// path relies on.
func marchRange(vol *volume.Volume, x0, x1 int, b *mesh.Buffers) {
	var corners [8]float64
	for x := x0; x < x1; x++ {
		for y := 0; y < vol.Height-1; y++ {
			for z := 0; z < vol.Depth-1; z++ {
				for i, off := range cornerOffsets {
					corners[i] = vol.At(x+off[0], y+off[1], z+off[2])
				}
				edges := EdgesForMask(CornerMask(corners, vol.SurfaceLevel))
				if len(edges) == 0 {
					continue
				}
				origin := mgl32.Vec3{float32(x), float32(y), float32(z)}
				for t := 0; t+2 < len(edges); t += 3 {
					emitTriangle(b,
						origin.Add(edgeOffsets[edges[t]]),
						origin.Add(edgeOffsets[edges[t+1]]),
						origin.Add(edgeOffsets[edges[t+2]]),
					)
				}
			}
		}
	}
}

// triUV assigns texture coordinates by triangle-local corner, not world
// position.
var triUV = [3]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}}

// emitTriangle classifies one triangle by the vertical component of its
// winding cross product and appends it to the matching stream: negative is
// top, zero is side, positive is bottom. Horizontal "cap" triangles land in
// top or bottom; purely vertical walls have a zero Y component and become
// sides. Collinear triangles are dropped.
func emitTriangle(b *mesh.Buffers, v0, v1, v2 mgl32.Vec3) {
	cross := v1.Sub(v0).Cross(v2.Sub(v0))
	if cross == (mgl32.Vec3{}) {
		return
	}
	tri := [3]mesh.Vertex{
		{Position: v0, UV: triUV[0]},
		{Position: v1, UV: triUV[1]},
		{Position: v2, UV: triUV[2]},
	}
	switch {
	case cross.Y() < 0:
		b.Top = append(b.Top, tri[:]...)
	case cross.Y() == 0:
		b.Side = append(b.Side, tri[:]...)
	default:
		b.Bottom = append(b.Bottom, tri[:]...)
	}
}
