package marching

import (
	"reflect"
	"testing"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

func uniformVolume(size int, value, level float64) *volume.Volume {
	return volume.FromSampler(size, size, size, level, func(x, y, z int) float64 {
		return value
	})
}

func noiseVolume(size int, seed int64) *volume.Volume {
	f := volume.DefaultNoiseField(seed)
	f.BaseHeight = float64(size) / 2
	f.GradientStrength = float64(size) / 4
	return volume.FromSampler(size, size, size, 0, f.Sampler())
}

// spikeVolume is all -1 except a single +1 at the center grid point.
func spikeVolume(level float64) *volume.Volume {
	v := volume.FromSampler(3, 3, 3, level, func(x, y, z int) float64 {
		return -1
	})
	v.Set(1, 1, 1, 1)
	return v
}

func TestMarchingCubesUniformEmpty(t *testing.T) {
	b := ExtractMarchingCubes(uniformVolume(4, -1, 0))
	if !b.Empty() {
		t.Fatalf("uniform empty volume: %d triangles, want 0", b.TriangleCount())
	}
}

func TestMarchingCubesUniformSolid(t *testing.T) {
	b := ExtractMarchingCubes(uniformVolume(4, 1, 0))
	if !b.Empty() {
		t.Fatalf("uniform solid volume: %d triangles, want 0", b.TriangleCount())
	}
}

// TestMarchingCubesCenterSpike: one active grid point at the center of a
// 3x3x3 volume is a corner of all 8 cubes, so each cube emits the
// single-corner case and the surface closes around the spike.
func TestMarchingCubesCenterSpike(t *testing.T) {
	b := ExtractMarchingCubes(spikeVolume(0))
	if b.Empty() {
		t.Fatalf("center spike produced no surface")
	}
	if got := b.TriangleCount(); got != 8 {
		t.Fatalf("center spike: %d triangles, want 8", got)
	}
}

func TestMarchingCubesSmallDimensions(t *testing.T) {
	for _, dims := range [][3]int{{1, 5, 5}, {5, 1, 5}, {5, 5, 1}, {1, 1, 1}} {
		v := volume.FromSampler(dims[0], dims[1], dims[2], 0, func(x, y, z int) float64 {
			return 1
		})
		b := ExtractMarchingCubes(v)
		if !b.Empty() {
			t.Fatalf("dims %v: %d triangles, want 0", dims, b.TriangleCount())
		}
	}
}

func TestMarchingCubesIdempotent(t *testing.T) {
	v := noiseVolume(12, 5)
	a := ExtractMarchingCubes(v)
	b := ExtractMarchingCubes(v)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated extraction of the same volume differs")
	}
}

func checkClassification(t *testing.T, b *mesh.Buffers) {
	t.Helper()
	check := func(name string, s mesh.Stream, want func(float32) bool) {
		for i := 0; i+2 < len(s); i += 3 {
			cross := s[i+1].Position.Sub(s[i].Position).Cross(s[i+2].Position.Sub(s[i].Position))
			if !want(cross.Y()) {
				t.Fatalf("%s stream triangle %d: cross.Y = %v, wrong stream", name, i/3, cross.Y())
			}
		}
	}
	check("top", b.Top, func(y float32) bool { return y < 0 })
	check("side", b.Side, func(y float32) bool { return y == 0 })
	check("bottom", b.Bottom, func(y float32) bool { return y > 0 })
}

// TestMarchingCubesClassificationLaw: recomputing the cross-product sign
// from the emitted vertices reproduces the stream each triangle was
// assigned to.
func TestMarchingCubesClassificationLaw(t *testing.T) {
	b := ExtractMarchingCubes(noiseVolume(16, 11))
	if b.Empty() {
		t.Fatalf("noise volume produced no surface")
	}
	checkClassification(t, b)
}

// TestMarchingCubesNonCollinear: emitted triangles always have a non-zero
// cross product; collinear ones must have been filtered.
func TestMarchingCubesNonCollinear(t *testing.T) {
	b := ExtractMarchingCubes(noiseVolume(16, 23))
	for _, s := range []mesh.Stream{b.Top, b.Side, b.Bottom} {
		for i := 0; i+2 < len(s); i += 3 {
			cross := s[i+1].Position.Sub(s[i].Position).Cross(s[i+2].Position.Sub(s[i].Position))
			if cross.Len() == 0 {
				t.Fatalf("degenerate triangle emitted at %v", s[i].Position)
			}
		}
	}
}

func TestMarchingCubesStreamLengths(t *testing.T) {
	b := ExtractMarchingCubes(noiseVolume(12, 31))
	for name, s := range map[string]mesh.Stream{"top": b.Top, "side": b.Side, "bottom": b.Bottom} {
		if len(s)%3 != 0 {
			t.Fatalf("%s stream length %d not a multiple of 3", name, len(s))
		}
	}
}

// TestMarchingCubesNormalsAndTangents: finalized vertices carry unit
// normals and tangents.
func TestMarchingCubesNormalsAndTangents(t *testing.T) {
	b := ExtractMarchingCubes(noiseVolume(12, 7))
	for _, s := range []mesh.Stream{b.Top, b.Side, b.Bottom} {
		for _, v := range s {
			if n := v.Normal.Len(); n < 0.999 || n > 1.001 {
				t.Fatalf("normal %v has length %v, want 1", v.Normal, n)
			}
			if l := v.Tangent.Len(); l < 0.999 || l > 1.001 {
				t.Fatalf("tangent %v has length %v, want 1", v.Tangent, l)
			}
		}
	}
}
