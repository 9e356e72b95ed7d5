package kernel_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(12.34, 56.78)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 12.34, point.Latitude(), 0.000001)
		assert.InDelta(t, 56.78, point.Longitude(), 0.000001)
	})

	t.Run("accepts boundary coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lng float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"date line west", 0, -180},
			{"date line east", 0, 180},
			{"origin", 0, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.NoError(t, err)
				assert.InDelta(t, tc.lat, point.Latitude(), 0.000001)
				assert.InDelta(t, tc.lng, point.Longitude(), 0.000001)
			})
		}
	})

	t.Run("rejects out of range coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude too small", -90.0001, 0},
			{"latitude too large", 90.0001, 0},
			{"longitude too small", 0, -180.0001},
			{"longitude too large", 0, 180.0001},
			{"both out of range", 100, 200},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		require.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates compare equal", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(12.34, 56.78)
		p2, _ := kernel.NewGeoPoint(12.34, 56.78)
		p3, _ := kernel.NewGeoPoint(12.34, 56.79)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = p1.IsEqual(p3)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(1, 2)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)
		require.Error(t, err)
	})
}
