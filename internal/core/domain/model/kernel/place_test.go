package kernel_test

import (
	"strings"
	"testing"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlace(t *testing.T) {
	t.Run("trims and keeps value", func(t *testing.T) {
		p, err := kernel.NewPlace("startLocation", "  Colombo 03 ")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Colombo 03", p.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := kernel.NewPlace("destination", "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("accepts exactly the limit", func(t *testing.T) {
		_, err := kernel.NewPlace("destination", strings.Repeat("a", kernel.PlaceMaxLength))
		require.NoError(t, err)
	})

	t.Run("rejects over the limit", func(t *testing.T) {
		_, err := kernel.NewPlace("destination", strings.Repeat("a", kernel.PlaceMaxLength+1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		_, err := kernel.NewPlace("destination", strings.Repeat("é", kernel.PlaceMaxLength))
		require.NoError(t, err)
	})
}

func TestPlace_ZeroValue(t *testing.T) {
	var p kernel.Place
	require.ErrorIs(t, p.Validate(), kernel.ErrPlaceIsNotConstructed)
}

func TestPlace_IsEqual(t *testing.T) {
	a, _ := kernel.NewPlace("p", "Galle")
	b, _ := kernel.NewPlace("p", " Galle ")
	c, _ := kernel.NewPlace("p", "Matara")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
