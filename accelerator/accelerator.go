// Package accelerator is the flat function surface handed to the host game.
//
// The host works with plain numeric records: a position is a slice whose first
// two values are x and y, an enemy row is [x, y, width, height, speedX, ...].
// Records shorter than that are rejected with geometry.ErrInvalidArgument.
package accelerator

import (
	"fmt"

	"github.com/meghashyamc/fingerblaster/collision"
	"github.com/meghashyamc/fingerblaster/enemy"
	"github.com/meghashyamc/fingerblaster/geometry"
	"github.com/meghashyamc/fingerblaster/gesture"
)

func CheckBulletEnemyCollisions(bullets, enemies [][]float64, bulletW, bulletH, enemyW, enemyH float64) ([]collision.Pair, error) {
	bulletPositions, err := geometry.VectorsFromRecords(bullets)
	if err != nil {
		return nil, fmt.Errorf("bullets: %w", err)
	}
	enemyPositions, err := geometry.VectorsFromRecords(enemies)
	if err != nil {
		return nil, fmt.Errorf("enemies: %w", err)
	}

	return collision.Batch(bulletPositions, bulletW, bulletH, enemyPositions, enemyW, enemyH), nil
}

func CheckPlayerEnemyCollisions(player []float64, enemies [][]float64, playerW, playerH, enemyW, enemyH float64) ([]int, error) {
	playerPosition, err := geometry.VectorFromRecord(player)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	enemyPositions, err := geometry.VectorsFromRecords(enemies)
	if err != nil {
		return nil, fmt.Errorf("enemies: %w", err)
	}

	return collision.PlayerEnemies(playerPosition, playerW, playerH, enemyPositions, enemyW, enemyH), nil
}

func CheckPlayerPowerupCollisions(player []float64, powerups [][]float64, playerW, playerH, powerupW, powerupH float64) ([]bool, error) {
	playerPosition, err := geometry.VectorFromRecord(player)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	powerupPositions, err := geometry.VectorsFromRecords(powerups)
	if err != nil {
		return nil, fmt.Errorf("powerups: %w", err)
	}

	return collision.PlayerPowerups(playerPosition, playerW, playerH, powerupPositions, powerupW, powerupH), nil
}

func BulletBossCollision(bulletX, bulletY, bulletW, bulletH, bossX, bossY, bossW, bossH float64) bool {
	return collision.BulletBoss(
		geometry.NewRect(bulletX, bulletY, bulletW, bulletH),
		geometry.NewRect(bossX, bossY, bossW, bossH),
	)
}

func PlayerBulletCollision(playerX, playerY, playerW, playerH, bulletX, bulletY, bulletW, bulletH float64) bool {
	return collision.PlayerBullet(
		geometry.NewRect(playerX, playerY, playerW, playerH),
		geometry.NewRect(bulletX, bulletY, bulletW, bulletH),
	)
}

// RectCollision tests two arbitrary rectangles.
func RectCollision(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return collision.Rects(geometry.NewRect(x1, y1, w1, h1), geometry.NewRect(x2, y2, w2, h2))
}

func CalculateLandmarkDistance(x1, y1, z1, x2, y2, z2 float64) float64 {
	return geometry.LandmarkDistance(geometry.Vector3{X: x1, Y: y1, Z: z1}, geometry.Vector3{X: x2, Y: y2, Z: z2})
}

func IsPinchDetected(thumbX, thumbY, thumbZ, indexX, indexY, indexZ, threshold float64) bool {
	return gesture.IsPinch(
		geometry.Vector3{X: thumbX, Y: thumbY, Z: thumbZ},
		geometry.Vector3{X: indexX, Y: indexY, Z: indexZ},
		threshold,
	)
}

// MapFingerPosition fails with geometry.ErrDegenerateRange when either input range is empty.
func MapFingerPosition(normX, normY, inXMin, inXMax, inYMin, inYMax, outXMin, outXMax, outYMin, outYMax float64) (float64, float64, error) {
	screen, err := gesture.MapFingerPosition(geometry.Vector{X: normX, Y: normY}, gesture.Calibration{
		InputX:  geometry.Bounds{Min: inXMin, Max: inXMax},
		InputY:  geometry.Bounds{Min: inYMin, Max: inYMax},
		OutputX: geometry.Bounds{Min: outXMin, Max: outXMax},
		OutputY: geometry.Bounds{Min: outYMin, Max: outYMax},
	})
	if err != nil {
		return 0, 0, err
	}

	return screen.X, screen.Y, nil
}

// UpdateEnemyPositions returns moved copies of the enemy rows. Components past
// the enemy fields are copied through unchanged.
func UpdateEnemyPositions(enemies [][]float64, enemySpeeds []float64, screenWidth, screenHeight int) ([][]float64, error) {
	parsed, err := enemy.FromRecords(enemies)
	if err != nil {
		return nil, err
	}

	moved, err := enemy.UpdatePositions(parsed, enemySpeeds, float64(screenWidth), float64(screenHeight))
	if err != nil {
		return nil, err
	}

	result := make([][]float64, len(enemies))
	for i, record := range enemies {
		result[i] = append([]float64(nil), record...)
		moved[i].WriteRecord(result[i])
	}

	return result, nil
}

func CalculateAimDirection(enemyX, enemyY, playerX, playerY float64) (float64, float64) {
	dir := enemy.AimDirection(geometry.Vector{X: enemyX, Y: enemyY}, geometry.Vector{X: playerX, Y: playerY})
	return dir.X, dir.Y
}

func PointDistance(x1, y1, x2, y2 float64) float64 {
	return geometry.PointDistance(geometry.Vector{X: x1, Y: y1}, geometry.Vector{X: x2, Y: y2})
}

// BulkPointDistance returns the distance between a[i] and b[i] for every i.
func BulkPointDistance(a, b [][]float64) ([]float64, error) {
	pointsA, err := geometry.VectorsFromRecords(a)
	if err != nil {
		return nil, err
	}
	pointsB, err := geometry.VectorsFromRecords(b)
	if err != nil {
		return nil, err
	}

	return geometry.BulkPointDistance(pointsA, pointsB)
}
