package shortener

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_GenerateID_Format(t *testing.T) {
	gen := NewRandomGenerator()

	id, err := gen.GenerateID(context.Background())
	require.NoError(t, err)
	assert.Len(t, id, IDLength)

	for _, c := range id {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
		assert.True(t, isHex, "unexpected character %q in id %q", c, id)
	}
}

func TestRandomGenerator_GenerateID_Uniqueness(t *testing.T) {
	gen := NewRandomGenerator()
	ctx := context.Background()

	// Sample size kept well under the birthday bound for a 2^32 space so
	// the test cannot flake on an honest collision.
	const n = 1000
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		id, err := gen.GenerateID(ctx)
		require.NoError(t, err)

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate id %q after %d generations", id, i)
		seen[id] = struct{}{}
	}
}

func TestRandomGenerator_Type(t *testing.T) {
	gen := NewRandomGenerator()
	assert.Equal(t, TypeRandom, gen.Type())
}
