// Package collision runs the rectangle overlap test over game entities.
//
// Every entity in a collection shares one width and height, so callers pass
// anchor positions plus a single size per collection.
package collision

import "github.com/meghashyamc/fingerblaster/geometry"

// Pair identifies a projectile and the target it overlaps, by index into the input slices.
type Pair struct {
	Projectile int
	Target     int
}

// Rects is the overlap predicate shared by every check in this package.
func Rects(a, b geometry.Rect) bool {
	return a.Intersects(b)
}

// Batch tests every projectile against every target and returns the overlapping pairs.
// Pairs come out in row-major order: all targets hit by projectile 0 in ascending
// index order, then projectile 1, and so on.
func Batch(projectiles []geometry.Vector, projectileW, projectileH float64, targets []geometry.Vector, targetW, targetH float64) []Pair {
	pairs := make([]Pair, 0)

	for i, p := range projectiles {
		projectile := geometry.RectAt(p, projectileW, projectileH)

		for j, t := range targets {
			if Rects(projectile, geometry.RectAt(t, targetW, targetH)) {
				pairs = append(pairs, Pair{Projectile: i, Target: j})
			}
		}
	}

	return pairs
}

// PlayerEnemies returns the indices of the enemies touching the player, ascending.
func PlayerEnemies(player geometry.Vector, playerW, playerH float64, enemies []geometry.Vector, enemyW, enemyH float64) []int {
	playerRect := geometry.RectAt(player, playerW, playerH)
	hits := make([]int, 0)

	for j, e := range enemies {
		if Rects(playerRect, geometry.RectAt(e, enemyW, enemyH)) {
			hits = append(hits, j)
		}
	}

	return hits
}

// PlayerPowerups flags, for each power-up in order, whether the player touches it.
// The result always has len(powerups) entries.
func PlayerPowerups(player geometry.Vector, playerW, playerH float64, powerups []geometry.Vector, powerupW, powerupH float64) []bool {
	playerRect := geometry.RectAt(player, playerW, playerH)
	flags := make([]bool, len(powerups))

	for i, pu := range powerups {
		flags[i] = Rects(playerRect, geometry.RectAt(pu, powerupW, powerupH))
	}

	return flags
}

func BulletBoss(bullet, boss geometry.Rect) bool {
	return Rects(bullet, boss)
}

func PlayerBullet(player, bullet geometry.Rect) bool {
	return Rects(player, bullet)
}
