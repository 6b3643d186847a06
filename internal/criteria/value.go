package criteria

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value is a sealed interface representing a scalar filter value.
// Only String, Int, Float and Bool implement it.
//
// The core performs no normalization: a String "18" stays a string and is
// handed to the backend unchanged.
type Value interface {
	// Text renders the scalar as text. Containing operators wrap this
	// rendering in wildcards.
	Text() string

	// Raw returns the underlying Go scalar (string, int64, float64 or bool).
	Raw() any

	filterValue() // Sealed - only these types implement it
}

// String is a text filter value.
type String string

func (String) filterValue() {}

func (s String) Text() string { return string(s) }

func (s String) Raw() any { return string(s) }

// Int is an integer filter value.
type Int int64

func (Int) filterValue() {}

func (i Int) Text() string { return strconv.FormatInt(int64(i), 10) }

func (i Int) Raw() any { return int64(i) }

// Float is a floating point filter value.
type Float float64

func (Float) filterValue() {}

func (f Float) Text() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }

func (f Float) Raw() any { return float64(f) }

// Bool is a boolean filter value.
type Bool bool

func (Bool) filterValue() {}

func (b Bool) Text() string { return strconv.FormatBool(bool(b)) }

func (b Bool) Raw() any { return bool(b) }

// ValueOf converts a Go scalar into a Value.
//
// Accepted inputs: string, bool, every signed and unsigned integer width,
// float32, float64 and json.Number.
// Returns an error for nil, empty strings and any other type.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("value is required")
	case Value:
		return val, nil
	case string:
		if val == "" {
			return nil, fmt.Errorf("value is required")
		}
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return uintValue(uint64(val))
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return uintValue(val)
	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", val.String(), err)
		}
		return Float(f), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func uintValue(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("integer %d overflows int64", u)
	}
	return Int(int64(u)), nil
}
