package marching

import (
	"errors"
	"fmt"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

// Algorithm selects the surface extraction algorithm. The set is closed:
// declared variants that are not implemented yet fail with
// ErrAlgorithmNotImplemented instead of falling back to a default.
type Algorithm uint8

const (
	MarchingCubes Algorithm = iota
	CulledFaces
	MarchingCubesLerp
	MarchingTetrahedra
	DiamondCubes
	AsymptoticDecider
)

var (
	ErrAlgorithmNotImplemented = errors.New("algorithm not implemented")
	ErrAlgorithmUnknown        = errors.New("unknown algorithm")
)

var algorithmNames = map[Algorithm]string{
	MarchingCubes:      "marching-cubes",
	CulledFaces:        "culled-faces",
	MarchingCubesLerp:  "marching-cubes-lerp",
	MarchingTetrahedra: "marching-tetrahedra",
	DiamondCubes:       "diamond-cubes",
	AsymptoticDecider:  "asymptotic-decider",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a name back to its Algorithm tag.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrAlgorithmUnknown)
}

// Extract runs the selected algorithm over the volume. Selecting a declared
// but unimplemented variant reports an error naming the algorithm; there is
// no silent substitution.
func Extract(vol *volume.Volume, algo Algorithm) (*mesh.Buffers, error) {
	switch algo {
	case MarchingCubes:
		return ExtractMarchingCubes(vol), nil
	case CulledFaces:
		return ExtractCulledFaces(vol), nil
	case MarchingCubesLerp, MarchingTetrahedra, DiamondCubes, AsymptoticDecider:
		return nil, fmt.Errorf("%s: %w", algo, ErrAlgorithmNotImplemented)
	default:
		return nil, fmt.Errorf("%s: %w", algo, ErrAlgorithmUnknown)
	}
}
