package shared

import "math/rand/v2"

// Source is the single random capability the engine depends on.
// Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// RandSource is the process default, backed by math/rand/v2.
type RandSource struct {
	r *rand.Rand
}

// NewRandSource returns a freshly seeded source.
func NewRandSource() *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSource) Intn(n int) int {
	return s.r.IntN(n)
}

// SequenceSource replays a fixed list of values, each taken modulo n.
// Once the list is exhausted it keeps returning 0.
type SequenceSource struct {
	Values []int
	pos    int
}

func (s *SequenceSource) Intn(n int) int {
	if s.pos >= len(s.Values) {
		return 0
	}
	v := s.Values[s.pos]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
