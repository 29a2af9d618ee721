package guard_test

import (
	"errors"
	"testing"

	"eshift/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_accepts_any_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("load not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Job must be created via NewJob constructor")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copy_keeps_constructed_state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		c := g

		require.NoError(t, c.Validate(errors.New("unused")))
	})
}

// TestConstructorGuard_EmbeddedInValueObject mirrors how the domain uses the guard.
func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v < 1 {
			return quantity{}, errors.New("quantity must be at least 1")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_value_is_valid", func(t *testing.T) {
		q, err := newQuantity(3)
		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errNotConstructed))
		assert.Equal(t, 3, q.value)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var q quantity
		assert.Equal(t, errNotConstructed, q.guard.Validate(errNotConstructed))
	})

	t.Run("constructor_enforces_rules", func(t *testing.T) {
		_, err := newQuantity(0)
		require.Error(t, err)
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
