package bridge

import (
	"fmt"
	"math"

	"github.com/meghashyamc/fingerblaster/geometry"
	"github.com/tidwall/gjson"
)

// args reads typed values out of a request's "args" object.
type args struct {
	raw gjson.Result
}

func (a args) float(name string) (float64, error) {
	value := a.raw.Get(name)
	if !value.Exists() {
		return 0, fmt.Errorf("%w: missing argument %q", geometry.ErrInvalidArgument, name)
	}
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%w: argument %q must be a number, got %s", geometry.ErrInvalidArgument, name, value.Type)
	}

	return value.Float(), nil
}

// floatOr returns fallback when the argument is absent.
func (a args) floatOr(name string, fallback float64) (float64, error) {
	if !a.raw.Get(name).Exists() {
		return fallback, nil
	}

	return a.float(name)
}

// intOr reads a whole-number argument, returning fallback when it is absent.
// Fractional values are rejected rather than truncated.
func (a args) intOr(name string, fallback int) (int, error) {
	if !a.raw.Get(name).Exists() {
		return fallback, nil
	}

	f, err := a.float(name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: argument %q must be an integer, got %v", geometry.ErrInvalidArgument, name, f)
	}

	return int(f), nil
}

func (a args) list(name string) ([]float64, error) {
	value := a.raw.Get(name)
	if !value.Exists() {
		return nil, fmt.Errorf("%w: missing argument %q", geometry.ErrInvalidArgument, name)
	}

	return numbers(name, value)
}

func (a args) records(name string) ([][]float64, error) {
	value := a.raw.Get(name)
	if !value.Exists() {
		return nil, fmt.Errorf("%w: missing argument %q", geometry.ErrInvalidArgument, name)
	}
	if !value.IsArray() {
		return nil, fmt.Errorf("%w: argument %q must be an array of records", geometry.ErrInvalidArgument, name)
	}

	elements := value.Array()
	records := make([][]float64, len(elements))
	for i, element := range elements {
		record, err := numbers(fmt.Sprintf("%s[%d]", name, i), element)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	return records, nil
}

func numbers(name string, value gjson.Result) ([]float64, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("%w: argument %q must be an array of numbers", geometry.ErrInvalidArgument, name)
	}

	elements := value.Array()
	out := make([]float64, len(elements))
	for i, element := range elements {
		if element.Type != gjson.Number {
			return nil, fmt.Errorf("%w: %s[%d] must be a number, got %s", geometry.ErrInvalidArgument, name, i, element.Type)
		}
		out[i] = element.Float()
	}

	return out, nil
}

// floatList reads several scalar arguments in order.
func (a args) floatList(names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := a.float(name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
