package external

import (
	"errors"
	"fmt"
	"math"
	"time"

	"scalarmap/scalar"
)

var ErrInvalidValue = errors.New("external: invalid value")

// FromValue converts a host value back into a scalar. With an empty datatype
// the kind is inferred from the Go type of x; otherwise x is coerced to the
// named datatype. Byte slices are copied.
//
// For every value v whose integers lie within ±2^53,
// FromValue(ToValue(&v), Datatype(&v)) is equal to v.
func FromValue(x any, datatype string) (scalar.Value, error) {
	if datatype == "" {
		return infer(x)
	}

	kind, typeCode, err := scalar.ParseDatatype(datatype)
	if err != nil {
		return scalar.Value{}, err
	}

	v, ok := coerce(x, kind, typeCode)
	if !ok {
		return scalar.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrInvalidValue, x, datatype)
	}

	return v, nil
}

func infer(x any) (scalar.Value, error) {
	switch x := x.(type) {
	case nil, Null:
		return scalar.Null(), nil
	case []byte:
		return scalar.Bytes(copyBytes(x)), nil
	case string:
		return scalar.Str(x), nil
	case int, int8, int16, int32, int64:
		i, _ := toInt64(x)
		return scalar.Int(i), nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(x)
		return scalar.Uint(u), nil
	case float32:
		return scalar.F64(float64(x)), nil
	case float64:
		return scalar.F64(x), nil
	case scalar.Counter:
		return scalar.CounterValue(x), nil
	case time.Time:
		return scalar.TimestampOf(x), nil
	case bool:
		return scalar.Boolean(x), nil
	default:
		return scalar.Value{}, fmt.Errorf("%w: unsupported host type %T", ErrInvalidValue, x)
	}
}

func coerce(x any, kind scalar.Kind, typeCode uint8) (scalar.Value, bool) {
	switch kind {
	case scalar.KindBytes:
		b, ok := x.([]byte)
		return scalar.Bytes(copyBytes(b)), ok
	case scalar.KindStr:
		s, ok := x.(string)
		return scalar.Str(s), ok
	case scalar.KindInt:
		i, ok := toInt64(x)
		return scalar.Int(i), ok
	case scalar.KindUint:
		u, ok := toUint64(x)
		return scalar.Uint(u), ok
	case scalar.KindF64:
		f, ok := toFloat64(x)
		return scalar.F64(f), ok
	case scalar.KindCounter:
		if c, ok := x.(scalar.Counter); ok {
			return scalar.CounterValue(c), true
		}
		i, ok := toInt64(x)
		return scalar.CounterValue(scalar.NewCounter(i)), ok
	case scalar.KindTimestamp:
		if t, ok := x.(time.Time); ok {
			return scalar.TimestampOf(t), true
		}
		ms, ok := toInt64(x)
		return scalar.Timestamp(ms), ok
	case scalar.KindBoolean:
		b, ok := x.(bool)
		return scalar.Boolean(b), ok
	case scalar.KindNull:
		switch x.(type) {
		case nil, Null:
			return scalar.Null(), true
		}
		return scalar.Value{}, false
	case scalar.KindUnknown:
		b, ok := x.([]byte)
		return scalar.Unknown(typeCode, copyBytes(b)), ok
	default:
		panic("external: unhandled kind " + kind.String())
	}
}

// toInt64 accepts any Go integer that fits in int64 and integral floats.
func toInt64(x any) (int64, bool) {
	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(x)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case float32:
		return floatToInt64(float64(x))
	case float64:
		return floatToInt64(x)
	default:
		return 0, false
	}
}

// toUint64 accepts any non-negative Go integer and non-negative integral floats.
func toUint64(x any) (uint64, bool) {
	switch x := x.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int, int8, int16, int32, int64:
		i, _ := toInt64(x)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float32:
		return floatToUint64(float64(x))
	case float64:
		return floatToUint64(x)
	default:
		return 0, false
	}
}

func toFloat64(x any) (float64, bool) {
	switch x := x.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}

	if i, ok := toInt64(x); ok {
		return float64(i), true
	}

	if u, ok := toUint64(x); ok {
		return float64(u), true
	}

	return 0, false
}

// 2^63 and 2^64 are exact in float64; the int64/uint64 ranges stop just below.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = float64(1<<63) * 2
)

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -twoTo63 || f >= twoTo63 {
		return 0, false
	}

	return int64(f), true
}

func floatToUint64(f float64) (uint64, bool) {
	if f != math.Trunc(f) || f < 0 || f >= twoTo64 {
		return 0, false
	}

	return uint64(f), true
}
