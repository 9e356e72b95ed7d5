package guard_test

import (
	"errors"
	"testing"

	"ordertrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrNotConstructed, err)
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	errSampleNotConstructed := errors.New("Sample must be created via newSample")

	type Sample struct {
		value int
		guard guard.ConstructorGuard
	}

	newSample := func(value int) (Sample, error) {
		if value < 0 {
			return Sample{}, errors.New("value cannot be negative")
		}
		return Sample{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_produces_valid_object", func(t *testing.T) {
		s, err := newSample(7)

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSampleNotConstructed))
		assert.Equal(t, 7, s.value)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var s Sample

		err := s.guard.Validate(errSampleNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errSampleNotConstructed, err)
	})

	t.Run("copies_keep_constructed_state", func(t *testing.T) {
		s, err := newSample(1)
		require.NoError(t, err)

		sCopy := s
		require.NoError(t, sCopy.guard.Validate(errSampleNotConstructed))
	})
}
