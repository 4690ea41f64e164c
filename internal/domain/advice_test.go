package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternativeLocations(t *testing.T) {
	t.Run("all candidates beat a very high risk", func(t *testing.T) {
		suggestions := AlternativeLocations(82)
		require.Len(t, suggestions, 3)
		assert.Equal(t, "Connaught Place", suggestions[0].Area)
		assert.Equal(t, "Dwarka Sector 10", suggestions[1].Area)
		assert.Equal(t, "Saket", suggestions[2].Area)
	})

	t.Run("strictly lower risk only", func(t *testing.T) {
		suggestions := AlternativeLocations(30)
		require.Len(t, suggestions, 2)
		assert.Equal(t, 25.0, suggestions[0].Risk)
		assert.Equal(t, 28.0, suggestions[1].Risk)
	})

	t.Run("equal risk excluded", func(t *testing.T) {
		suggestions := AlternativeLocations(25)
		assert.Empty(t, suggestions)
	})

	t.Run("nothing beats a low risk", func(t *testing.T) {
		assert.Empty(t, AlternativeLocations(10))
	})
}

func TestAlternativeBusinesses(t *testing.T) {
	t.Run("substring match is case-insensitive", func(t *testing.T) {
		suggestions := AlternativeBusinesses("Rooftop Cafe")
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Cloud Kitchen", suggestions[0].Type)
		assert.Equal(t, "Co-working Space", suggestions[1].Type)
	})

	t.Run("restaurant keyword", func(t *testing.T) {
		assert.Len(t, AlternativeBusinesses("Fine Dining RESTAURANT"), 2)
	})

	t.Run("unmatched type gets nothing", func(t *testing.T) {
		assert.Empty(t, AlternativeBusinesses("Salon"))
		assert.Empty(t, AlternativeBusinesses(""))
	})
}
