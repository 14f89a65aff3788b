package slots

import (
	"math/rand"
	"sync"

	"github.com/osse101/LuckySpin_Go/internal/utils"
)

// RNG is the randomness source for symbol draws. Intn returns a value in [0, n).
type RNG interface {
	Intn(n int) int
}

// RNGFunc adapts a plain function to RNG
type RNGFunc func(n int) int

// Intn implements RNG
func (f RNGFunc) Intn(n int) int { return f(n) }

// lockedRNG is a math/rand source safe for concurrent use
type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRNG returns a concurrency-safe source seeded with seed
func NewRNG(seed int64) RNG {
	return &lockedRNG{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

// NewSecureSeededRNG returns a source seeded from crypto/rand
func NewSecureSeededRNG() RNG {
	return NewRNG(utils.SecureSeed())
}

func (l *lockedRNG) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// SequenceRNG replays fixed values, wrapping around. Values are reduced modulo n.
type SequenceRNG struct {
	mu     sync.Mutex
	values []int
	pos    int
}

// NewSequenceRNG creates an RNG that returns values in order
func NewSequenceRNG(values ...int) *SequenceRNG {
	return &SequenceRNG{values: values}
}

// Intn implements RNG
func (s *SequenceRNG) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return ((v % n) + n) % n
}
