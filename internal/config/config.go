package config

import "sync"

// ExtractionSettings holds process-wide extraction configuration.
type ExtractionSettings struct {
	mu        sync.RWMutex
	algorithm string
	workers   int
}

var globalExtractionSettings = &ExtractionSettings{
	algorithm: "marching-cubes",
	workers:   1,
}

// GetAlgorithm returns the currently selected algorithm name. Validation
// happens at extraction time; an unrecognized name is reported there, never
// silently replaced.
func GetAlgorithm() string {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.algorithm
}

// SetAlgorithm selects the extraction algorithm by name.
func SetAlgorithm(name string) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()
	globalExtractionSettings.algorithm = name
}

// GetWorkers returns the partition count for parallel extraction.
func GetWorkers() int {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.workers
}

// SetWorkers sets the partition count for parallel extraction.
func SetWorkers(n int) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()

	// Clamp to reasonable values
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}

	globalExtractionSettings.workers = n
}
