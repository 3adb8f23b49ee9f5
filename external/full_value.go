package external

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"scalarmap/scalar"
)

// FullValue is a host value paired with its datatype tag.
type FullValue struct {
	Datatype string
	Value    any
}

// ToFullValue converts v with the default categories and tags it.
func ToFullValue(v *scalar.Value) FullValue {
	return defaultMapper.ToFullValue(v)
}

func (m *Mapper) ToFullValue(v *scalar.Value) FullValue {
	return FullValue{
		Datatype: scalar.Datatype(v),
		Value:    m.ToValue(v),
	}
}

// MarshalJSON encodes the pair as a two element array, e.g. ["int",42].
// Bytes are base64 strings and times are RFC 3339 strings. NaN and the
// infinities have no JSON number form and are written as "NaN", "+Inf" and
// "-Inf".
func (fv FullValue) MarshalJSON() ([]byte, error) {
	value := fv.Value
	if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		value = strconv.FormatFloat(f, 'g', -1, 64)
	}

	data, err := json.Marshal([2]any{fv.Datatype, value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s value: %w", fv.Datatype, err)
	}

	return data, nil
}

func (fv FullValue) String() string {
	return fmt.Sprintf("[%s %v]", fv.Datatype, fv.Value)
}
