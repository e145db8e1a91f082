package marching

import (
	"sync"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

// ExtractParallel runs the selected algorithm with the outer X axis
// partitioned into contiguous ranges, one goroutine per range. Partition
// results are concatenated in partition order, so the output is identical
// to the serial Extract.
func ExtractParallel(vol *volume.Volume, algo Algorithm, workers int) (*mesh.Buffers, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		limit    int
		rangeFn  func(*volume.Volume, int, int, *mesh.Buffers)
		finalize func(*mesh.Buffers)
	)
	switch algo {
	case MarchingCubes:
		if vol.Width < 2 || vol.Height < 2 || vol.Depth < 2 {
			return &mesh.Buffers{}, nil
		}
		limit = vol.Width - 1
		rangeFn = marchRange
		finalize = (*mesh.Buffers).Finalize
	case CulledFaces:
		limit = vol.Width
		rangeFn = culledRange
		finalize = (*mesh.Buffers).ComputeTangents
	default:
		// Unimplemented and unknown selectors error identically to Extract.
		return Extract(vol, algo)
	}

	if workers > limit {
		workers = limit
	}
	if workers < 2 {
		return Extract(vol, algo)
	}

	parts := make([]mesh.Buffers, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		x0 := i * limit / workers
		x1 := (i + 1) * limit / workers
		wg.Add(1)
		go func(i, x0, x1 int) {
			defer wg.Done()
			rangeFn(vol, x0, x1, &parts[i])
		}(i, x0, x1)
	}
	wg.Wait()

	b := &mesh.Buffers{}
	for i := range parts {
		b.Merge(&parts[i])
	}
	finalize(b)
	return b, nil
}
