package foundryid

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const (
	// Alphabet holds every character an identifier may contain.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the number of characters in an identifier.
	Length = 16
)

// Generator produces identifiers from a single random source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewFromEntropy returns a Generator seeded once from system entropy.
func NewFromEntropy() (*Generator, error) {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read system entropy: %w", err)
	}
	src := rand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
	return NewGenerator(src), nil
}

// New returns a fresh identifier.
func (g *Generator) New() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[g.rng.IntN(len(Alphabet))]
	}
	return string(b)
}
