package bridge

import (
	"fmt"
	"math"
)

// checkFinite rejects results that contain NaN or ±Inf anywhere.
func checkFinite(result any) error {
	switch v := result.(type) {
	case float64:
		return finite(v, "result")
	case []float64:
		for i, f := range v {
			if err := finite(f, fmt.Sprintf("result[%d]", i)); err != nil {
				return err
			}
		}
	case [][]float64:
		for i, row := range v {
			for j, f := range row {
				if err := finite(f, fmt.Sprintf("result[%d][%d]", i, j)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func finite(f float64, path string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s is %v", ErrNonFiniteResult, path, f)
	}

	return nil
}
