package core

import (
	"math"
	"math/bits"
)

// Stream is a xoroshiro128+ pseudo-random generator. Its two words of state
// make it cheap to copy, and the jump operations let one seeded generator
// hand out many statistically independent streams without re-seeding.
type Stream struct {
	s0, s1 uint64
}

// NewStream creates a stream from a two-word seed
func NewStream(s0, s1 uint64) *Stream {
	if s0|s1 == 0 {
		// The all-zero state is a fixed point of the generator
		s1 = 0x9e3779b97f4a7c15
	}
	return &Stream{s0: s0, s1: s1}
}

// Uint64 advances the stream and returns the next value
func (s *Stream) Uint64() uint64 {
	a, b := s.s0, s.s1
	result := a + b

	c := b ^ a
	s.s0 = bits.RotateLeft64(a, 24) ^ c ^ (c << 16)
	s.s1 = bits.RotateLeft64(c, 37)

	return result
}

// Float64 returns the next value mapped to [0, 1]
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()) / float64(math.MaxUint64)
}

// Float64Range returns the next value mapped to [min, max]
func (s *Stream) Float64Range(minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*s.Float64()
}

// Clone returns an independent copy of the stream at its current state
func (s *Stream) Clone() *Stream {
	copied := *s
	return &copied
}

// jump polynomials for xoroshiro128+; each application is equivalent to a
// fixed number of Uint64 calls (2^64 for Jump, 2^96 for LongJump)
var (
	shortJumper = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}
	longJumper  = [2]uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1}
)

func (s *Stream) jump(jumper [2]uint64) {
	var j0, j1 uint64
	for _, j := range jumper {
		for b := 0; b < 64; b++ {
			if j&(1<<b) != 0 {
				j0 ^= s.s0
				j1 ^= s.s1
			}
			s.Uint64()
		}
	}
	s.s0 = j0
	s.s1 = j1
}

// Jump advances the stream 2^64 steps, landing on a distant,
// non-overlapping point in the generator's period
func (s *Stream) Jump() {
	s.jump(shortJumper)
}

// LongJump advances the stream 2^96 steps
func (s *Stream) LongJump() {
	s.jump(longJumper)
}
