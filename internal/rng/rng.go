package rng

import (
	"context"
	"math/rand"
)

// Adapter implements the ports.RNGPort interface with deterministic
// seed derivation. The same run/stage/cell combination always yields
// the same stream, which keeps mining output stable across runs and
// across worker scheduling.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if name != "" {
		seed = int64(hashString(name)) + seed
	}
	return rand.New(rand.NewSource(seed)), nil
}

// Stream creates a deterministic RNG stream for a specific stage/cell
func (a *Adapter) Stream(ctx context.Context, runID, stageName, cellKey string, baseSeed int64) (*rand.Rand, error) {
	// Derive the seed by hashing runID + stageName + cellKey + baseSeed so
	// identical combinations reproduce identical streams
	seed := baseSeed
	if runID != "" {
		seed = int64(hashString(runID)) + seed
	}
	if stageName != "" {
		seed = int64(hashString(stageName)) + seed
	}
	if cellKey != "" {
		seed = int64(hashString(cellKey)) + seed
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
