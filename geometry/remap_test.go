package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemap(t *testing.T) {
	inX, inY := Bounds{0.12, 0.88}, Bounds{0.2, 0.8}
	outX, outY := Bounds{0, 900}, Bounds{233, 665}

	t.Run("midpoint maps to midpoint", func(t *testing.T) {
		got, err := Remap(Vector{inX.Midpoint(), inY.Midpoint()}, inX, inY, outX, outY)
		require.NoError(t, err)
		assert.InDelta(t, outX.Midpoint(), got.X, tolerance)
		assert.InDelta(t, outY.Midpoint(), got.Y, tolerance)
	})

	t.Run("range ends map to range ends", func(t *testing.T) {
		lo, err := Remap(Vector{inX.Min, inY.Min}, inX, inY, outX, outY)
		require.NoError(t, err)
		assert.InDelta(t, outX.Min, lo.X, tolerance)
		assert.InDelta(t, outY.Min, lo.Y, tolerance)

		hi, err := Remap(Vector{inX.Max, inY.Max}, inX, inY, outX, outY)
		require.NoError(t, err)
		assert.InDelta(t, outX.Max, hi.X, tolerance)
		assert.InDelta(t, outY.Max, hi.Y, tolerance)
	})

	t.Run("outside the input range extrapolates", func(t *testing.T) {
		got, err := Remap(Vector{0, 1}, Bounds{0.5, 1}, Bounds{0, 0.5}, Bounds{0, 100}, Bounds{0, 100})
		require.NoError(t, err)
		assert.InDelta(t, -100.0, got.X, tolerance)
		assert.InDelta(t, 200.0, got.Y, tolerance)
	})

	t.Run("reversed output flips the axis", func(t *testing.T) {
		got, err := Remap(Vector{0.25, 0.25}, Bounds{0, 1}, Bounds{0, 1}, Bounds{100, 0}, Bounds{0, 100})
		require.NoError(t, err)
		assert.InDelta(t, 75.0, got.X, tolerance)
		assert.InDelta(t, 25.0, got.Y, tolerance)
	})
}

func TestRemap_DegenerateRange(t *testing.T) {
	out := Bounds{0, 100}

	_, err := Remap(Vector{0.5, 0.5}, Bounds{0.3, 0.3}, Bounds{0, 1}, out, out)
	require.ErrorIs(t, err, ErrDegenerateRange)

	_, err = Remap(Vector{0.5, 0.5}, Bounds{0, 1}, Bounds{1, 1}, out, out)
	require.ErrorIs(t, err, ErrDegenerateRange)

	got, err := Remap(Vector{0.5, 0.5}, Bounds{0, 1}, Bounds{0, 1}, Bounds{7, 7}, Bounds{7, 7})
	require.NoError(t, err, "a zero-width output range is valid")
	assert.Equal(t, Vector{7, 7}, got)
	assert.False(t, math.IsNaN(got.X))
}

func TestVectorsFromRecords(t *testing.T) {
	got, err := VectorsFromRecords([][]float64{{1, 2}, {3, 4, 99, 100}})
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1, 2}, {3, 4}}, got)

	empty, err := VectorsFromRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = VectorsFromRecords([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "record 1")
}
