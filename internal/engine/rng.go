package engine

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstracts the randomness the draw and stat rolls consume, so
// tests can supply deterministic sequences.
type RandomSource interface {
	Float64() float64 // uniform in [0,1)
	IntN(n int) int   // uniform in [0,n)
}

type pcgRNG struct {
	r *rand.Rand
}

func (s *pcgRNG) Float64() float64 { return s.r.Float64() }
func (s *pcgRNG) IntN(n int) int   { return s.r.IntN(n) }

// DefaultRNG returns a PCG source seeded from crypto/rand.
func DefaultRNG() RandomSource {
	var buf [16]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return NewSeededRNG(1)
	}
	s1 := binary.BigEndian.Uint64(buf[:8])
	s2 := binary.BigEndian.Uint64(buf[8:])
	return &pcgRNG{r: rand.New(rand.NewPCG(s1, s2))}
}

// NewSeededRNG returns a reproducible source for tests and simulations.
func NewSeededRNG(seed uint64) RandomSource {
	return &pcgRNG{r: rand.New(rand.NewPCG(seed, 0))}
}
