package tetrix

import "math/rand"

// Randomizer supplies the kind of each newly generated piece.
type Randomizer interface {
	Next() Kind
}

// RandRandomizer draws kinds uniformly from a seeded source.
type RandRandomizer struct {
	rng *rand.Rand
}

// NewRandRandomizer wraps rng as a uniform kind generator.
func NewRandRandomizer(rng *rand.Rand) *RandRandomizer {
	return &RandRandomizer{rng: rng}
}

// Next returns a uniformly random kind.
func (r *RandRandomizer) Next() Kind {
	return Kind(r.rng.Intn(KindCount))
}

// SequenceRandomizer cycles through a fixed list of kinds.
// Used for deterministic tests and scripted demos.
type SequenceRandomizer struct {
	kinds []Kind
	pos   int
}

// NewSequenceRandomizer returns a randomizer that repeats kinds in order.
// An empty list yields KindO forever.
func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	return &SequenceRandomizer{kinds: kinds}
}

// Next returns the next kind of the sequence, wrapping at the end.
func (s *SequenceRandomizer) Next() Kind {
	if len(s.kinds) == 0 {
		return KindO
	}
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}
