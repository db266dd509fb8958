package response

import (
	"math/rand/v2"
	"sync"
)

// Source picks an index in [0, n)
type Source interface {
	IntN(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a deterministic source for the given seed.
// It is safe for concurrent use.
func NewSource(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

type globalSource struct{}

// GlobalSource draws from the process-wide math/rand/v2 generator
func GlobalSource() Source {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}
