package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func flatTriangle() Stream {
	// Counter-clockwise seen from above; winding cross points -Y.
	return Stream{
		{Position: mgl32.Vec3{0, 0, 0}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{1, 0, 1}, UV: mgl32.Vec2{1, 1}},
	}
}

func TestComputeNormals(t *testing.T) {
	b := &Buffers{Top: flatTriangle()}
	b.ComputeNormals()
	for _, v := range b.Top {
		if v.Normal != (mgl32.Vec3{0, -1, 0}) {
			t.Fatalf("normal = %v, want (0,-1,0)", v.Normal)
		}
	}
}

func TestComputeTangents(t *testing.T) {
	b := &Buffers{Top: flatTriangle()}
	b.Finalize()
	for _, v := range b.Top {
		if l := v.Tangent.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Fatalf("tangent %v has length %v, want 1", v.Tangent, l)
		}
		if d := v.Tangent.Dot(v.Normal); math.Abs(float64(d)) > 1e-5 {
			t.Fatalf("tangent %v not perpendicular to normal %v", v.Tangent, v.Normal)
		}
	}
}

func TestTriangleCount(t *testing.T) {
	b := &Buffers{Top: flatTriangle(), Side: append(flatTriangle(), flatTriangle()...)}
	if got := b.TriangleCount(); got != 3 {
		t.Fatalf("TriangleCount = %d, want 3", got)
	}
	if b.Empty() {
		t.Fatalf("Empty() = true for non-empty buffers")
	}
	if !(&Buffers{}).Empty() {
		t.Fatalf("Empty() = false for empty buffers")
	}
}

func TestMergePreservesOrder(t *testing.T) {
	a := &Buffers{Top: flatTriangle()}
	other := flatTriangle()
	for i := range other {
		other[i].Position = other[i].Position.Add(mgl32.Vec3{5, 0, 0})
	}
	a.Merge(&Buffers{Top: other})
	if got := a.Top.TriangleCount(); got != 2 {
		t.Fatalf("merged top: %d triangles, want 2", got)
	}
	if a.Top[3].Position.X() != 5 {
		t.Fatalf("merged triangle out of order: %v", a.Top[3].Position)
	}
}

func TestInterleavedLayout(t *testing.T) {
	s := Stream{{
		Position: mgl32.Vec3{1, 2, 3},
		Normal:   mgl32.Vec3{0, 1, 0},
		Tangent:  mgl32.Vec3{1, 0, 0},
		UV:       mgl32.Vec2{0.25, 0.75},
	}}
	got := Interleaved(s)
	want := []float32{1, 2, 3, 0, 1, 0, 1, 0, 0, 0.25, 0.75}
	if len(got) != VertexStride {
		t.Fatalf("interleaved length = %d, want %d", len(got), VertexStride)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("interleaved[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
