package variate

import (
	"math"

	"github.com/dgryski/go-wyhash"
)

// Source produces the random variates the samplers consume. Each sampler
// owns exactly one Source; a Source is not safe for concurrent use.
type Source struct {
	rng wyhash.Rng
}

func New(seed uint64) *Source {
	return &Source{rng: wyhash.Rng(seed)}
}

// Uint64 returns the next value from the underlying wyhash stream.
func (s *Source) Uint64() uint64 {
	return s.rng.Next()
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.rng.Next()>>11) / (1 << 53)
}

// Geometric returns the number of failures before the first success in a
// sequence of independent trials with success probability p. Callers must
// guarantee 0 < p <= 1.
func (s *Source) Geometric(p float64) int64 {
	if p >= 1 {
		return 0
	}
	// Inversion method: floor(ln(U)/ln(1-p)) for uniform U in (0,1].
	u := 1.0 - s.Float64()
	return int64(math.Floor(math.Log(u) / math.Log(1-p)))
}
