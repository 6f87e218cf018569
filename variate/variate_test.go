package variate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var seed = uint64(3565269841805)

func TestFloat64Range(t *testing.T) {
	s := New(seed)
	for i := 0; i < 100000; i++ {
		f := s.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestGeometricCertainSuccess(t *testing.T) {
	s := New(seed)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, int64(0), s.Geometric(1.0))
	}
}

func TestGeometricNonNegative(t *testing.T) {
	s := New(seed)
	for i := 0; i < 100000; i++ {
		assert.GreaterOrEqual(t, s.Geometric(0.01), int64(0))
	}
}

// The mean of a geometric distribution counting failures before the first
// success is (1-p)/p, so for p = 1/R the expected value is R-1.
func TestGeometricMean(t *testing.T) {
	const rate = 1000
	const draws = 200000

	s := New(seed)
	var sum int64
	for i := 0; i < draws; i++ {
		sum += s.Geometric(1.0 / rate)
	}
	mean := float64(sum) / draws
	// 3% tolerance; the seed is fixed so this is deterministic
	assert.InDelta(t, rate-1, mean, 0.03*rate)
}

func TestIndependentStreams(t *testing.T) {
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())

	// same seed, same stream
	c := New(17)
	d := New(17)
	for i := 0; i < 100; i++ {
		assert.Equal(t, c.Uint64(), d.Uint64())
	}
}

func BenchmarkGeometric(b *testing.B) {
	s := New(seed)
	for i := 0; i < b.N; i++ {
		s.Geometric(1.0 / 1024)
	}
}
