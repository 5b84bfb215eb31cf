package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	t.Run("is deterministic for a seed", func(t *testing.T) {
		a := Uniform(NewRand(DefaultSeed), 10_000)
		b := Uniform(NewRand(DefaultSeed), 10_000)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds give different data", func(t *testing.T) {
		a := Uniform(NewRand(1), 1000)
		b := Uniform(NewRand(2), 1000)
		assert.NotEqual(t, a, b)
	})

	t.Run("engine state persists across calls", func(t *testing.T) {
		rng := NewRand(5)
		a := Uniform(rng, 100)
		b := Uniform(rng, 100)
		assert.NotEqual(t, a, b, "a second call must continue the stream, not restart it")
		assert.Equal(t, Uniform(NewRand(5), 200), append(a, b...))
	})

	t.Run("stays in the half-open unit interval", func(t *testing.T) {
		for _, v := range Uniform(NewRand(3), 100_000) {
			require.GreaterOrEqual(t, v, float32(0))
			require.Less(t, v, float32(1))
		}
	})

	t.Run("zero length", func(t *testing.T) {
		got := Uniform(NewRand(1), 0)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
