package marching

import (
	"reflect"
	"testing"
)

// TestParallelMatchesSerial: partitioned extraction concatenates in
// partition order, so output must be identical to the serial path.
func TestParallelMatchesSerial(t *testing.T) {
	v := noiseVolume(16, 17)
	for _, algo := range []Algorithm{MarchingCubes, CulledFaces} {
		serial, err := Extract(v, algo)
		if err != nil {
			t.Fatalf("%s serial: %v", algo, err)
		}
		for _, workers := range []int{2, 3, 4, 100} {
			parallel, err := ExtractParallel(v, algo, workers)
			if err != nil {
				t.Fatalf("%s parallel(%d): %v", algo, workers, err)
			}
			if !reflect.DeepEqual(serial, parallel) {
				t.Fatalf("%s parallel(%d) differs from serial", algo, workers)
			}
		}
	}
}

func TestParallelSmallVolume(t *testing.T) {
	b, err := ExtractParallel(spikeVolume(0), MarchingCubes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.TriangleCount(); got != 8 {
		t.Fatalf("center spike: %d triangles, want 8", got)
	}
}

func TestParallelUnimplementedAlgorithm(t *testing.T) {
	if _, err := ExtractParallel(uniformVolume(3, 1, 0), MarchingTetrahedra, 4); err == nil {
		t.Fatalf("expected error for unimplemented algorithm")
	}
}
