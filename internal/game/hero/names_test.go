package hero_test

import (
	"strings"
	"testing"

	"github.com/cory-johannsen/heroforge/internal/game/dice"
	"github.com/cory-johannsen/heroforge/internal/game/hero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerateName_DeterministicUnderFixedSource(t *testing.T) {
	a := hero.GenerateName(dice.NewSequenceSource(0, 0))
	b := hero.GenerateName(dice.NewSequenceSource(0, 0))
	assert.Equal(t, a, b)

	c := hero.GenerateName(dice.NewSequenceSource(5, 12))
	assert.NotEqual(t, a, c)
}

func TestGenerateName_Format(t *testing.T) {
	name := hero.GenerateName(dice.NewCryptoSource())
	parts := strings.Split(name, " ")
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

// Property: any pair of pool indices yields a well-formed two-part name.
func TestGenerateName_AlwaysTwoParts(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		first := rapid.IntRange(0, 1000).Draw(rt, "first")
		last := rapid.IntRange(0, 1000).Draw(rt, "last")
		name := hero.GenerateName(dice.NewSequenceSource(first, last))
		if strings.Count(name, " ") != 1 {
			rt.Fatalf("malformed name %q", name)
		}
	})
}
