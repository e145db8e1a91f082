package mesh

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is the number of float32 per interleaved vertex
// (pos.xyz + normal.xyz + tangent.xyz + uv).
const VertexStride = 11

// Vertex is a single mesh vertex. Streams carry vertices in triangle order,
// three per triangle.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec3
	UV       mgl32.Vec2
}

// Stream is an ordered triangle list; its length is always a multiple of 3.
type Stream []Vertex

// TriangleCount returns the number of triangles in the stream.
func (s Stream) TriangleCount() int {
	return len(s) / 3
}

// Buffers groups the extracted surface into the three material streams.
// Grouping is per triangle, not per cell: one cell may contribute to more
// than one stream.
type Buffers struct {
	Top    Stream
	Side   Stream
	Bottom Stream
}

// Empty reports whether no triangles were emitted into any stream.
func (b *Buffers) Empty() bool {
	return len(b.Top) == 0 && len(b.Side) == 0 && len(b.Bottom) == 0
}

// TriangleCount returns the total triangle count across all three streams.
func (b *Buffers) TriangleCount() int {
	return b.Top.TriangleCount() + b.Side.TriangleCount() + b.Bottom.TriangleCount()
}

// Merge appends the other buffers' streams after this one's, preserving
// triangle order within each stream.
func (b *Buffers) Merge(other *Buffers) {
	b.Top = append(b.Top, other.Top...)
	b.Side = append(b.Side, other.Side...)
	b.Bottom = append(b.Bottom, other.Bottom...)
}

// Interleaved flattens a stream into the GPU vertex layout
// (pos3, normal3, tangent3, uv2 per vertex).
func Interleaved(s Stream) []float32 {
	out := make([]float32, 0, len(s)*VertexStride)
	for _, v := range s {
		out = append(out,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.Tangent.X(), v.Tangent.Y(), v.Tangent.Z(),
			v.UV.X(), v.UV.Y(),
		)
	}
	return out
}
