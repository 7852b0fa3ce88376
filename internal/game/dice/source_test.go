package dice_test

import (
	"testing"

	"github.com/cory-johannsen/heroforge/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn must panic when n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-3) })
}

func TestSequenceSource_ReplaysValuesInOrder(t *testing.T) {
	src := dice.NewSequenceSource(0, 2, 1)
	assert.Equal(t, 0, src.Intn(10))
	assert.Equal(t, 2, src.Intn(10))
	assert.Equal(t, 1, src.Intn(10))
	// wraps back to the start
	assert.Equal(t, 0, src.Intn(10))
}

func TestSequenceSource_ReducesModuloBound(t *testing.T) {
	src := dice.NewSequenceSource(7)
	assert.Equal(t, 1, src.Intn(3))
}

func TestSequenceSource_RequiresValues(t *testing.T) {
	assert.Panics(t, func() { dice.NewSequenceSource() })
}

// Property: SequenceSource always returns values in [0, n).
func TestSequenceSource_Intn_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 1, 20).Draw(rt, "values")
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		src := dice.NewSequenceSource(values...)
		for i := 0; i < len(values)*2; i++ {
			v := src.Intn(n)
			if v < 0 || v >= n {
				rt.Fatalf("Intn(%d) returned %d out of range", n, v)
			}
		}
	})
}
