package marching

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxmesh/internal/volume"
)

func TestCulledFacesUniformEmpty(t *testing.T) {
	b := ExtractCulledFaces(uniformVolume(4, -1, 0))
	if !b.Empty() {
		t.Fatalf("uniform empty volume: %d triangles, want 0", b.TriangleCount())
	}
}

// TestCulledFacesSolidBox: a fully solid volume hides every interior face,
// leaving only the closed outer box surface.
func TestCulledFacesSolidBox(t *testing.T) {
	b := ExtractCulledFaces(uniformVolume(3, 1, 0))
	// 6 box sides of 3x3 voxels, 2 triangles per exposed face
	if got := b.TriangleCount(); got != 6*9*2 {
		t.Fatalf("solid 3x3x3 box: %d triangles, want %d", got, 6*9*2)
	}
	if got := b.Top.TriangleCount(); got != 18 {
		t.Fatalf("top stream: %d triangles, want 18", got)
	}
	if got := b.Bottom.TriangleCount(); got != 18 {
		t.Fatalf("bottom stream: %d triangles, want 18", got)
	}
	if got := b.Side.TriangleCount(); got != 72 {
		t.Fatalf("side stream: %d triangles, want 72", got)
	}
}

// TestCulledFacesSpike: with the level above every sample there are no
// solid cells; with the level at 0.5 exactly the center voxel (sample 1.0)
// is solid and contributes all six faces.
func TestCulledFacesSpike(t *testing.T) {
	none := spikeVolume(2.0)
	if b := ExtractCulledFaces(none); !b.Empty() {
		t.Fatalf("level above all samples: %d triangles, want 0", b.TriangleCount())
	}

	one := spikeVolume(0.5)
	b := ExtractCulledFaces(one)
	if got := b.TriangleCount(); got != 12 {
		t.Fatalf("single solid voxel: %d triangles, want 12", got)
	}
	if got := b.Top.TriangleCount(); got != 2 {
		t.Fatalf("single solid voxel top: %d triangles, want 2", got)
	}
	if got := b.Bottom.TriangleCount(); got != 2 {
		t.Fatalf("single solid voxel bottom: %d triangles, want 2", got)
	}
}

// TestCulledFacesSolidityNonStrict: a sample exactly at the surface level is
// solid, unlike the strict comparison used for corner masks.
func TestCulledFacesSolidityNonStrict(t *testing.T) {
	v := volume.FromSamples(1, 1, 1, 0.5, []float64{0.5})
	b := ExtractCulledFaces(v)
	if got := b.TriangleCount(); got != 12 {
		t.Fatalf("voxel exactly at level: %d triangles, want 12", got)
	}
}

func TestCulledFacesClassificationLaw(t *testing.T) {
	b := ExtractCulledFaces(uniformVolume(3, 1, 0))
	checkClassification(t, b)
}

// TestCulledFacesNormals: faces carry their axis direction as the normal.
func TestCulledFacesNormals(t *testing.T) {
	b := ExtractCulledFaces(uniformVolume(2, 1, 0))
	for _, v := range b.Top {
		if v.Normal != (mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("top face normal %v, want +Y", v.Normal)
		}
	}
	for _, v := range b.Bottom {
		if v.Normal != (mgl32.Vec3{0, -1, 0}) {
			t.Fatalf("bottom face normal %v, want -Y", v.Normal)
		}
	}
	for _, v := range b.Side {
		if v.Normal.Y() != 0 {
			t.Fatalf("side face normal %v, want horizontal", v.Normal)
		}
		if l := v.Normal.Len(); l != 1 {
			t.Fatalf("side face normal %v has length %v, want 1", v.Normal, l)
		}
	}
}

// TestCulledFacesComparisonAsymmetry: a volume whose samples sit exactly at
// the surface level is solid for the culled extractor but entirely outside
// for marching cubes.
func TestCulledFacesComparisonAsymmetry(t *testing.T) {
	v := uniformVolume(3, 0.5, 0.5)
	if b := ExtractCulledFaces(v); b.Empty() {
		t.Fatalf("culled faces: samples at level should be solid")
	}
	if b := ExtractMarchingCubes(v); !b.Empty() {
		t.Fatalf("marching cubes: samples at level should be outside, got %d triangles", b.TriangleCount())
	}
}
