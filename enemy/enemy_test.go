package enemy

import (
	"math"
	"testing"

	"github.com/meghashyamc/fingerblaster/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePositions(t *testing.T) {
	const screenWidth, screenHeight = 900.0, 700.0

	tests := []struct {
		name   string
		enemy  Enemy
		speedY float64
		want   geometry.Vector
	}{
		{"moves by both speeds", Enemy{X: 100, Y: 50, SpeedX: 3}, 2.2, geometry.Vector{X: 103, Y: 52.2}},
		{"clamped at left edge", Enemy{X: 2, Y: 50, SpeedX: -5}, 1, geometry.Vector{X: 0, Y: 51}},
		{"clamped at right edge", Enemy{X: 898, Y: 50, SpeedX: 5}, 1, geometry.Vector{X: 900, Y: 51}},
		{"lands exactly on the edge", Enemy{X: 895, Y: 0, SpeedX: 5}, 0, geometry.Vector{X: 900, Y: 0}},
		// Vertical position is intentionally never clamped.
		{"below the screen stays below", Enemy{X: 10, Y: 699, SpeedX: 0}, 50, geometry.Vector{X: 10, Y: 749}},
		{"above the screen stays above", Enemy{X: 10, Y: -10, SpeedX: 0}, -40, geometry.Vector{X: 10, Y: -50}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := UpdatePositions([]Enemy{test.enemy}, []float64{test.speedY}, screenWidth, screenHeight)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.InDelta(t, test.want.X, got[0].X, 1e-9)
			assert.InDelta(t, test.want.Y, got[0].Y, 1e-9)
			assert.Equal(t, test.enemy.SpeedX, got[0].SpeedX)
		})
	}
}

func TestUpdatePositions_DoesNotMutateInput(t *testing.T) {
	enemies := []Enemy{{X: 10, Y: 10, Width: 45, Height: 35, SpeedX: 1}}

	got, err := UpdatePositions(enemies, []float64{1}, 900, 700)
	require.NoError(t, err)

	assert.Equal(t, Enemy{X: 10, Y: 10, Width: 45, Height: 35, SpeedX: 1}, enemies[0])
	assert.Equal(t, Enemy{X: 11, Y: 11, Width: 45, Height: 35, SpeedX: 1}, got[0])
}

func TestUpdatePositions_SpeedCountMismatch(t *testing.T) {
	_, err := UpdatePositions([]Enemy{{}, {}}, []float64{1}, 900, 700)
	require.ErrorIs(t, err, geometry.ErrInvalidArgument)

	got, err := UpdatePositions(nil, nil, 900, 700)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromRecords(t *testing.T) {
	enemies, err := FromRecords([][]float64{{1, 2, 45, 35, -1.5, 99}})
	require.NoError(t, err)
	assert.Equal(t, []Enemy{{X: 1, Y: 2, Width: 45, Height: 35, SpeedX: -1.5}}, enemies)
	assert.Equal(t, geometry.NewRect(1, 2, 45, 35), enemies[0].Collider())
	assert.Equal(t, geometry.Vector{X: 1, Y: 2}, enemies[0].Position())

	_, err = FromRecords([][]float64{{1, 2, 45, 35, 0}, {1, 2}})
	require.ErrorIs(t, err, geometry.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "enemy 1")
}

func TestWriteRecord_KeepsTrailingFields(t *testing.T) {
	record := []float64{0, 0, 0, 0, 0, 7, 8}
	Enemy{X: 1, Y: 2, Width: 3, Height: 4, SpeedX: 5}.WriteRecord(record)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 7, 8}, record)
}

func TestAimDirection(t *testing.T) {
	t.Run("coincident points give the zero vector", func(t *testing.T) {
		assert.Equal(t, geometry.Vector{}, AimDirection(geometry.Vector{X: 4, Y: 4}, geometry.Vector{X: 4, Y: 4}))
	})

	t.Run("points toward the target", func(t *testing.T) {
		dir := AimDirection(geometry.Vector{X: 0, Y: 0}, geometry.Vector{X: 0, Y: 10})
		assert.InDelta(t, 0.0, dir.X, 1e-9)
		assert.InDelta(t, 1.0, dir.Y, 1e-9)
	})

	t.Run("always unit length", func(t *testing.T) {
		sources := []geometry.Vector{{X: 0, Y: 0}, {X: 450, Y: 100}, {X: -3, Y: 7}}
		targets := []geometry.Vector{{X: 1e-6, Y: 0}, {X: 12, Y: 600}, {X: 1e6, Y: -1e6}}
		for _, s := range sources {
			for _, tg := range targets {
				dir := AimDirection(s, tg)
				assert.InDelta(t, 1.0, math.Hypot(dir.X, dir.Y), 1e-9, "from %v to %v", s, tg)
			}
		}
	})

	t.Run("unit length at extreme scales", func(t *testing.T) {
		origin := geometry.Vector{}
		for _, tg := range []geometry.Vector{
			{X: 1e-200, Y: 0},
			{X: 1e-200, Y: -1e-200},
			{X: 1e200, Y: 1e200},
			{X: -1e200, Y: 3},
		} {
			dir := AimDirection(origin, tg)
			assert.InDelta(t, 1.0, math.Hypot(dir.X, dir.Y), 1e-9, "from origin to %v", tg)
		}
	})
}
