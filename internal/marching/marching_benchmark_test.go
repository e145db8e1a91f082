package marching

import "testing"

func BenchmarkExtractMarchingCubes_Noise32(b *testing.B) {
	v := noiseVolume(32, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExtractMarchingCubes(v)
	}
}

func BenchmarkExtractCulledFaces_Noise32(b *testing.B) {
	v := noiseVolume(32, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ExtractCulledFaces(v)
	}
}

func BenchmarkExtractParallel_Noise32(b *testing.B) {
	v := noiseVolume(32, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ExtractParallel(v, MarchingCubes, 4)
	}
}
