//go:build unit

package geo_test

import (
	"math"
	"testing"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Run("経度1度は約111.19km", func(t *testing.T) {
		d, err := geo.Distance(0, 0, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 111.19, d, 0.5)
	})

	t.Run("同一地点は0", func(t *testing.T) {
		points := []geo.Point{
			{Lat: 0, Lon: 0},
			{Lat: 35.6812, Lon: 139.7671},
			{Lat: -33.8688, Lon: 151.2093},
			{Lat: 90, Lon: 0},
		}
		for _, p := range points {
			assert.Zero(t, geo.DistanceKm(p, p))
		}
	})

	t.Run("対称性", func(t *testing.T) {
		a := geo.Point{Lat: 12.9716, Lon: 77.5946}
		b := geo.Point{Lat: 13.0827, Lon: 80.2707}
		assert.InDelta(t, geo.DistanceKm(a, b), geo.DistanceKm(b, a), 1e-9)
		assert.InDelta(t, 290, geo.DistanceKm(a, b), 5)
	})

	t.Run("非有限値はInvalidInput", func(t *testing.T) {
		cases := [][4]float64{
			{math.NaN(), 0, 0, 0},
			{0, math.Inf(1), 0, 0},
			{0, 0, math.Inf(-1), 0},
			{0, 0, 0, math.NaN()},
		}
		for _, c := range cases {
			_, err := geo.Distance(c[0], c[1], c[2], c[3])
			require.ErrorIs(t, err, geo.ErrInvalidInput)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		}
	})
}

func TestNewPoint(t *testing.T) {
	t.Run("範囲内OK", func(t *testing.T) {
		p, err := geo.NewPoint(35.0, 135.0)
		require.NoError(t, err)
		assert.Equal(t, geo.Point{Lat: 35.0, Lon: 135.0}, p)
	})

	t.Run("緯度範囲外NG", func(t *testing.T) {
		_, err := geo.NewPoint(91, 0)
		require.ErrorIs(t, err, geo.ErrInvalidInput)
	})

	t.Run("経度範囲外NG", func(t *testing.T) {
		_, err := geo.NewPoint(0, -181)
		require.ErrorIs(t, err, geo.ErrInvalidInput)
	})

	t.Run("片方nilならnil", func(t *testing.T) {
		lat := 1.0
		assert.Nil(t, geo.PointFrom(&lat, nil))
		assert.Nil(t, geo.PointFrom(nil, &lat))
		assert.Equal(t, &geo.Point{Lat: 1, Lon: 1}, geo.PointFrom(&lat, &lat))
	})
}
