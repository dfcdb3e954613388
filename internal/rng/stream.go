// Package rng provides the deterministic random streams used by the
// simulation. Every stream is a SplitMix64 generator, so a stream's state
// fully determines its future output.
package rng

const (
	golden = 0x9E3779B97F4A7C15
	mixA   = 0xBF58476D1CE4E5B9
	mixB   = 0x94D049BB133111EB
)

// Stream is one independently seeded SplitMix64 generator.
type Stream struct {
	state uint64
}

// NewStream returns a stream starting from seed.
func NewStream(seed uint64) *Stream {
	return &Stream{state: seed}
}

// State returns the current internal state.
func (s *Stream) State() uint64 { return s.state }

// Clone returns an independent copy that will produce the same sequence.
func (s *Stream) Clone() *Stream { return &Stream{state: s.state} }

// NextUint64 advances the stream and returns 64 random bits.
func (s *Stream) NextUint64() uint64 {
	s.state += golden
	return Mix64(s.state)
}

// NextUint32 returns the high 32 bits of the next value.
func (s *Stream) NextUint32() uint32 {
	return uint32(s.NextUint64() >> 32)
}

// NextInt returns a value in [min, max). It returns min without advancing
// the stream when max <= min.
func (s *Stream) NextInt(min, max int) int {
	if max <= min {
		return min
	}
	span := uint32(max - min)
	return min + int(s.NextUint32()%span)
}

// NextIntInclusive returns a value in [min, max].
func (s *Stream) NextIntInclusive(min, max int) int {
	if max <= min {
		return min
	}
	return s.NextInt(min, max+1)
}

// Mix64 is the SplitMix64 avalanche finaliser.
func Mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixA
	z = (z ^ (z >> 27)) * mixB
	return z ^ (z >> 31)
}

// ExpandSeed widens a 32-bit run seed to 64 bits by repeating its bit
// pattern in both halves.
func ExpandSeed(seed int32) uint64 {
	u := uint64(uint32(seed))
	return u<<32 | u
}
