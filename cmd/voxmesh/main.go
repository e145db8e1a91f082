package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"voxmesh/internal/config"
	"voxmesh/internal/export"
	"voxmesh/internal/marching"
	"voxmesh/internal/profiling"
	"voxmesh/internal/volume"
)

func main() {
	var (
		width        = flag.Int("width", 32, "volume width (X samples)")
		height       = flag.Int("height", 32, "volume height (Y samples)")
		depth        = flag.Int("depth", 32, "volume depth (Z samples)")
		seed         = flag.Int64("seed", 1, "noise seed")
		surfaceLevel = flag.Float64("surface", 0, "surface level threshold")
		algoName     = flag.String("algorithm", config.GetAlgorithm(), "extraction algorithm")
		workers      = flag.Int("workers", config.GetWorkers(), "parallel partitions (1 = serial)")
		objPath      = flag.String("obj", "", "write extracted mesh as OBJ to this path")
		slicePath    = flag.String("slice-png", "", "write a density cross-section PNG to this path")
		sliceY       = flag.Int("slice-y", -1, "slice height for -slice-png (default: middle)")
	)
	flag.Parse()

	config.SetAlgorithm(*algoName)
	config.SetWorkers(*workers)

	algo, err := marching.ParseAlgorithm(config.GetAlgorithm())
	if err != nil {
		log.Fatalf("bad algorithm selection: %v", err)
	}

	stopGen := profiling.Track("volume.FromSampler")
	field := volume.DefaultNoiseField(*seed)
	vol := volume.FromSampler(*width, *height, *depth, *surfaceLevel, field.Sampler())
	stopGen()

	stopExtract := profiling.Track("marching.Extract")
	buffers, err := marching.ExtractParallel(vol, algo, config.GetWorkers())
	stopExtract()
	if err != nil {
		if errors.Is(err, marching.ErrAlgorithmNotImplemented) {
			log.Fatalf("selected algorithm is declared but not implemented: %v", err)
		}
		log.Fatalf("extraction failed: %v", err)
	}

	log.Printf("extracted %d triangles (top %d, side %d, bottom %d) using %s",
		buffers.TriangleCount(),
		buffers.Top.TriangleCount(), buffers.Side.TriangleCount(), buffers.Bottom.TriangleCount(),
		algo)
	log.Printf("timings: %s", profiling.TopN(5))

	if *objPath != "" {
		if err := writeFile(*objPath, func(f *os.File) error {
			return export.WriteOBJ(f, buffers)
		}); err != nil {
			log.Fatalf("obj export: %v", err)
		}
		log.Printf("wrote %s", *objPath)
	}

	if *slicePath != "" {
		y := *sliceY
		if y < 0 {
			y = vol.Height / 2
		}
		if err := writeFile(*slicePath, func(f *os.File) error {
			return export.WriteSlicePNG(f, vol, y)
		}); err != nil {
			log.Fatalf("slice export: %v", err)
		}
		log.Printf("wrote %s", *slicePath)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %v", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
