package marching

import (
	"testing"
	"time"
)

func TestPoolExtraction(t *testing.T) {
	p := NewPool(2, 4)
	defer p.Shutdown()

	v := noiseVolume(12, 9)
	want := ExtractMarchingCubes(v).TriangleCount()

	results := make(chan Result, 1)
	p.SubmitBlocking(Job{Volume: v, Algorithm: MarchingCubes, ResultChan: results})

	select {
	case res := <-results:
		if res.Err != nil {
			t.Fatalf("pool extraction: %v", res.Err)
		}
		if got := res.Buffers.TriangleCount(); got != want {
			t.Fatalf("pool extraction: %d triangles, want %d", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("pool extraction timed out")
	}
}

func TestPoolReportsAlgorithmError(t *testing.T) {
	p := NewPool(1, 1)
	defer p.Shutdown()

	results := make(chan Result, 1)
	p.SubmitBlocking(Job{Volume: uniformVolume(3, 1, 0), Algorithm: AsymptoticDecider, ResultChan: results})

	select {
	case res := <-results:
		if res.Err == nil {
			t.Fatalf("expected error for unimplemented algorithm")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("pool result timed out")
	}
}
