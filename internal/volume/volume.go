package volume

import "fmt"

// Sampler produces one scalar density sample per integer grid point.
type Sampler func(x, y, z int) float64

// Volume is a dense 3D grid of density samples plus the surface level that
// separates solid from empty. A volume is built once per generation request
// and treated as immutable afterwards; regeneration replaces the whole
// volume rather than patching it in place.
type Volume struct {
	Width, Height, Depth int
	SurfaceLevel         float64

	samples []float64
}

// New allocates a zero-filled volume with the given dimensions.
func New(width, height, depth int, surfaceLevel float64) *Volume {
	checkDims(width, height, depth)
	return &Volume{
		Width:        width,
		Height:       height,
		Depth:        depth,
		SurfaceLevel: surfaceLevel,
		samples:      make([]float64, width*height*depth),
	}
}

// FromSampler fills a new volume by evaluating the sampler at every grid point.
func FromSampler(width, height, depth int, surfaceLevel float64, s Sampler) *Volume {
	v := New(width, height, depth, surfaceLevel)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			for z := 0; z < depth; z++ {
				v.samples[v.idx(x, y, z)] = s(x, y, z)
			}
		}
	}
	return v
}

// FromSamples wraps an existing flat sample slice, indexed (x*height+y)*depth+z.
// The slice length must match the declared dimensions exactly.
func FromSamples(width, height, depth int, surfaceLevel float64, samples []float64) *Volume {
	checkDims(width, height, depth)
	if len(samples) != width*height*depth {
		panic(fmt.Sprintf("volume: samples length %d != %d*%d*%d", len(samples), width, height, depth))
	}
	return &Volume{
		Width:        width,
		Height:       height,
		Depth:        depth,
		SurfaceLevel: surfaceLevel,
		samples:      samples,
	}
}

func checkDims(width, height, depth int) {
	if width < 1 || height < 1 || depth < 1 {
		panic(fmt.Sprintf("volume: non-positive dimensions %dx%dx%d", width, height, depth))
	}
}

func (v *Volume) idx(x, y, z int) int {
	return (x*v.Height+y)*v.Depth + z
}

// At returns the sample at a grid point. Out-of-range indices are a
// programming error and panic.
func (v *Volume) At(x, y, z int) float64 {
	v.check(x, y, z)
	return v.samples[v.idx(x, y, z)]
}

// Set stores a sample. Intended for volume construction only; extraction
// treats the volume as immutable.
func (v *Volume) Set(x, y, z int, value float64) {
	v.check(x, y, z)
	v.samples[v.idx(x, y, z)] = value
}

// Contains reports whether the grid point is inside the volume.
func (v *Volume) Contains(x, y, z int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height && z >= 0 && z < v.Depth
}

func (v *Volume) check(x, y, z int) {
	if !v.Contains(x, y, z) {
		panic(fmt.Sprintf("volume: index (%d,%d,%d) out of range %dx%dx%d", x, y, z, v.Width, v.Height, v.Depth))
	}
}
