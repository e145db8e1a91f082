package volume

import "math"

// Deterministic 3D value noise with octave summation. Lattice values come
// from integer hashing, so the same seed and coordinates always reproduce
// the same field.

// NoiseField parameterizes a density field built from octave value noise
// plus a vertical gradient: positive samples read as solid, negative as
// empty. BaseHeight is the altitude where the gradient crosses zero;
// GradientStrength controls how quickly density falls off above it.
type NoiseField struct {
	Seed             int64
	Scale            float64
	Octaves          int
	Persistence      float64
	Lacunarity       float64
	BaseHeight       float64
	GradientStrength float64
}

// DefaultNoiseField returns terrain-like defaults for the given seed.
func DefaultNoiseField(seed int64) NoiseField {
	return NoiseField{
		Seed:             seed,
		Scale:            1.0 / 16.0,
		Octaves:          4,
		Persistence:      0.5,
		Lacunarity:       2.0,
		BaseHeight:       8.0,
		GradientStrength: 8.0,
	}
}

// Sampler returns the density sampler for this field.
func (f NoiseField) Sampler() Sampler {
	return func(x, y, z int) float64 {
		n := octaveNoise3D(
			float64(x)*f.Scale, float64(y)*f.Scale, float64(z)*f.Scale,
			f.Seed, f.Octaves, f.Persistence, f.Lacunarity,
		)
		// Rescale [0,1] noise to [-1,1] before applying the gradient.
		n = n*2.0 - 1.0
		if f.GradientStrength != 0 {
			n += (f.BaseHeight - float64(y)) / f.GradientStrength
		}
		return n
	}
}

// fade is the smoothstep-like quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash3 is a SplitMix64-style integer hash, stable across runs for the same
// inputs. Each axis gets its own multiplier for better distribution.
func hash3(x, y, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// latticeValue3 maps a lattice point to [0,1].
func latticeValue3(x, y, z int64, seed int64) float64 {
	h := hash3(x, y, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	x1 := x0 + 1
	y1 := y0 + 1
	z1 := z0 + 1

	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	v000 := latticeValue3(int64(x0), int64(y0), int64(z0), seed)
	v100 := latticeValue3(int64(x1), int64(y0), int64(z0), seed)
	v010 := latticeValue3(int64(x0), int64(y1), int64(z0), seed)
	v110 := latticeValue3(int64(x1), int64(y1), int64(z0), seed)
	v001 := latticeValue3(int64(x0), int64(y0), int64(z1), seed)
	v101 := latticeValue3(int64(x1), int64(y0), int64(z1), seed)
	v011 := latticeValue3(int64(x0), int64(y1), int64(z1), seed)
	v111 := latticeValue3(int64(x1), int64(y1), int64(z1), seed)

	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)

	i0 := lerp(i00, i10, fy)
	i1 := lerp(i01, i11, fy)

	return lerp(i0, i1, fz) // [0,1]
}

func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}
