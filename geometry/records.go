package geometry

import "fmt"

// VectorFromRecord reads the first two components of a numeric record as a position.
// Extra components are ignored.
func VectorFromRecord(record []float64) (Vector, error) {
	if len(record) < 2 {
		return Vector{}, fmt.Errorf("%w: position record has %d components, need 2", ErrInvalidArgument, len(record))
	}

	return Vector{X: record[0], Y: record[1]}, nil
}

// VectorsFromRecords converts every record, failing on the first malformed one.
func VectorsFromRecords(records [][]float64) ([]Vector, error) {
	vectors := make([]Vector, len(records))
	for i, record := range records {
		v, err := VectorFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		vectors[i] = v
	}

	return vectors, nil
}
