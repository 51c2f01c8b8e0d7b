package enemy

import (
	"fmt"

	"github.com/meghashyamc/fingerblaster/geometry"
)

// RecordLen is the number of leading components an enemy record must carry:
// x, y, width, height, horizontal speed. Anything after that belongs to the caller.
const RecordLen = 5

// Enemy is one enemy's state for a single frame.
type Enemy struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	// SpeedX is the horizontal step applied per update. Vertical speed is
	// supplied separately on each update.
	SpeedX float64
}

func FromRecord(record []float64) (Enemy, error) {
	if len(record) < RecordLen {
		return Enemy{}, fmt.Errorf("%w: enemy record has %d components, need %d", geometry.ErrInvalidArgument, len(record), RecordLen)
	}

	return Enemy{
		X:      record[0],
		Y:      record[1],
		Width:  record[2],
		Height: record[3],
		SpeedX: record[4],
	}, nil
}

func FromRecords(records [][]float64) ([]Enemy, error) {
	enemies := make([]Enemy, len(records))
	for i, record := range records {
		e, err := FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		enemies[i] = e
	}

	return enemies, nil
}

// WriteRecord stores e into the leading components of record, leaving any
// trailing caller-owned components untouched. record must hold at least RecordLen values.
func (e Enemy) WriteRecord(record []float64) {
	record[0] = e.X
	record[1] = e.Y
	record[2] = e.Width
	record[3] = e.Height
	record[4] = e.SpeedX
}

func (e Enemy) Position() geometry.Vector {
	return geometry.Vector{X: e.X, Y: e.Y}
}

func (e Enemy) Collider() geometry.Rect {
	return geometry.NewRect(e.X, e.Y, e.Width, e.Height)
}
