// Package random provides seed generation and seeded source construction.
//
// Every stochastic rule in the simulation core takes an injected *rand.Rand
// so that turn outcomes are reproducible under a fixed seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand creates a deterministic source from the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TurnSeed derives a per-turn seed from a run seed.
//
// Evaluations that must be idempotent within a turn (re-evaluating unchanged
// state returns the same result) construct their source from this value
// instead of consuming a shared stream.
func TurnSeed(runSeed int64, turn int) int64 {
	const mix = uint64(0x9e3779b97f4a7c15)
	return int64(uint64(runSeed) ^ (uint64(turn) * mix))
}
