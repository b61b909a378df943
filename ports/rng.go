package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream creates a deterministic RNG stream for a specific mining cell.
	// Every (run, stage, cell) combination owns its stream, so cells produce
	// identical results whether mined sequentially or in parallel.
	Stream(ctx context.Context, runID, stageName, cellKey string, baseSeed int64) (*rand.Rand, error)
}
