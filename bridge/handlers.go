package bridge

import (
	"github.com/meghashyamc/fingerblaster/accelerator"
)

type handlerFunc func(a args) (any, error)

func (b *Bridge) registerHandlers() {
	b.handlers = map[string]handlerFunc{
		"check_bullet_enemy_collisions":   b.checkBulletEnemyCollisions,
		"check_player_enemy_collisions":   b.checkPlayerEnemyCollisions,
		"check_player_powerup_collisions": b.checkPlayerPowerupCollisions,
		"bullet_boss_collision":           b.bulletBossCollision,
		"player_bullet_collision":         b.playerBulletCollision,
		"rect_collision":                  b.rectCollision,
		"calculate_landmark_distance":     b.calculateLandmarkDistance,
		"is_pinch_detected":               b.isPinchDetected,
		"map_finger_position":             b.mapFingerPosition,
		"update_enemy_positions":          b.updateEnemyPositions,
		"calculate_aim_direction":         b.calculateAimDirection,
		"point_distance":                  b.pointDistance,
		"bulk_point_distance":             b.bulkPointDistance,
	}
}

func (b *Bridge) checkBulletEnemyCollisions(a args) (any, error) {
	bullets, err := a.records("bullets")
	if err != nil {
		return nil, err
	}
	enemies, err := a.records("enemies")
	if err != nil {
		return nil, err
	}
	size, err := a.floatList("bullet_w", "bullet_h", "enemy_w", "enemy_h")
	if err != nil {
		return nil, err
	}

	pairs, err := accelerator.CheckBulletEnemyCollisions(bullets, enemies, size[0], size[1], size[2], size[3])
	if err != nil {
		return nil, err
	}

	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{p.Projectile, p.Target}
	}

	return out, nil
}

func (b *Bridge) checkPlayerEnemyCollisions(a args) (any, error) {
	player, err := a.list("player")
	if err != nil {
		return nil, err
	}
	enemies, err := a.records("enemies")
	if err != nil {
		return nil, err
	}
	size, err := a.floatList("player_w", "player_h", "enemy_w", "enemy_h")
	if err != nil {
		return nil, err
	}

	return accelerator.CheckPlayerEnemyCollisions(player, enemies, size[0], size[1], size[2], size[3])
}

func (b *Bridge) checkPlayerPowerupCollisions(a args) (any, error) {
	player, err := a.list("player")
	if err != nil {
		return nil, err
	}
	powerups, err := a.records("powerups")
	if err != nil {
		return nil, err
	}
	size, err := a.floatList("player_w", "player_h", "powerup_w", "powerup_h")
	if err != nil {
		return nil, err
	}

	return accelerator.CheckPlayerPowerupCollisions(player, powerups, size[0], size[1], size[2], size[3])
}

func (b *Bridge) bulletBossCollision(a args) (any, error) {
	v, err := a.floatList("bullet_x", "bullet_y", "bullet_w", "bullet_h", "boss_x", "boss_y", "boss_w", "boss_h")
	if err != nil {
		return nil, err
	}

	return accelerator.BulletBossCollision(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]), nil
}

func (b *Bridge) playerBulletCollision(a args) (any, error) {
	v, err := a.floatList("player_x", "player_y", "player_w", "player_h", "bullet_x", "bullet_y", "bullet_w", "bullet_h")
	if err != nil {
		return nil, err
	}

	return accelerator.PlayerBulletCollision(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]), nil
}

func (b *Bridge) rectCollision(a args) (any, error) {
	v, err := a.floatList("x1", "y1", "w1", "h1", "x2", "y2", "w2", "h2")
	if err != nil {
		return nil, err
	}

	return accelerator.RectCollision(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]), nil
}

func (b *Bridge) calculateLandmarkDistance(a args) (any, error) {
	v, err := a.floatList("x1", "y1", "z1", "x2", "y2", "z2")
	if err != nil {
		return nil, err
	}

	return accelerator.CalculateLandmarkDistance(v[0], v[1], v[2], v[3], v[4], v[5]), nil
}

// threshold falls back to the configured pinch threshold.
func (b *Bridge) isPinchDetected(a args) (any, error) {
	v, err := a.floatList("thumb_x", "thumb_y", "thumb_z", "index_x", "index_y", "index_z")
	if err != nil {
		return nil, err
	}
	threshold, err := a.floatOr("threshold", b.defaults.PinchThreshold)
	if err != nil {
		return nil, err
	}

	return accelerator.IsPinchDetected(v[0], v[1], v[2], v[3], v[4], v[5], threshold), nil
}

// Range arguments left out fall back to the configured finger calibration.
func (b *Bridge) mapFingerPosition(a args) (any, error) {
	norm, err := a.floatList("norm_x", "norm_y")
	if err != nil {
		return nil, err
	}

	c := b.defaults.Calibration
	ranges := []struct {
		name     string
		fallback float64
	}{
		{"in_x_min", c.InputX.Min}, {"in_x_max", c.InputX.Max},
		{"in_y_min", c.InputY.Min}, {"in_y_max", c.InputY.Max},
		{"out_x_min", c.OutputX.Min}, {"out_x_max", c.OutputX.Max},
		{"out_y_min", c.OutputY.Min}, {"out_y_max", c.OutputY.Max},
	}
	v := make([]float64, len(ranges))
	for i, r := range ranges {
		if v[i], err = a.floatOr(r.name, r.fallback); err != nil {
			return nil, err
		}
	}

	x, y, err := accelerator.MapFingerPosition(norm[0], norm[1], v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
	if err != nil {
		return nil, err
	}

	return []float64{x, y}, nil
}

func (b *Bridge) updateEnemyPositions(a args) (any, error) {
	enemies, err := a.records("enemies")
	if err != nil {
		return nil, err
	}
	speeds, err := a.list("enemy_speeds")
	if err != nil {
		return nil, err
	}
	screenWidth, err := a.intOr("screen_width", b.defaults.ScreenWidth)
	if err != nil {
		return nil, err
	}
	screenHeight, err := a.intOr("screen_height", b.defaults.ScreenHeight)
	if err != nil {
		return nil, err
	}

	return accelerator.UpdateEnemyPositions(enemies, speeds, screenWidth, screenHeight)
}

func (b *Bridge) calculateAimDirection(a args) (any, error) {
	v, err := a.floatList("enemy_x", "enemy_y", "player_x", "player_y")
	if err != nil {
		return nil, err
	}

	dx, dy := accelerator.CalculateAimDirection(v[0], v[1], v[2], v[3])
	return []float64{dx, dy}, nil
}

func (b *Bridge) pointDistance(a args) (any, error) {
	v, err := a.floatList("x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}

	return accelerator.PointDistance(v[0], v[1], v[2], v[3]), nil
}

func (b *Bridge) bulkPointDistance(a args) (any, error) {
	points1, err := a.records("points1")
	if err != nil {
		return nil, err
	}
	points2, err := a.records("points2")
	if err != nil {
		return nil, err
	}

	return accelerator.BulkPointDistance(points1, points2)
}
