package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func draws(seed int64, stream uint64) []uint64 {
	rng := Derive(seed, stream)
	out := make([]uint64, 8)
	for i := range out {
		out[i] = rng.Uint64()
	}
	return out
}

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewMatchesStreamZero(t *testing.T) {
	t.Parallel()
	rng := New(7)
	for _, want := range draws(7, 0) {
		assert.Equal(t, want, rng.Uint64())
	}
}

func TestDeriveSeparatesStreams(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, draws(1, 0), draws(1, 1))
	assert.NotEqual(t, draws(1, 1), draws(1, 2))
	assert.NotEqual(t, draws(1, 0), draws(2, 0))
	assert.Equal(t, draws(5, 3), draws(5, 3))
}
