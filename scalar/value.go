package scalar

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"scalarmap/utils"
)

var ErrKindMismatch = errors.New("scalar: kind mismatch")

// Value is a tagged scalar held by a document. Only the payload field that
// matches kind is meaningful. The zero Value is null.
type Value struct {
	kind Kind

	bytesVal   []byte
	strVal     string
	intVal     int64
	uintVal    uint64
	floatVal   float64
	counterVal Counter
	boolVal    bool
	typeCode   uint8
}

// ============================================================
// Constructors
// ============================================================

// Bytes creates a bytes value. The slice is referenced, not copied.
func Bytes(v []byte) Value {
	return Value{kind: KindBytes, bytesVal: v}
}

func Str(v string) Value {
	return Value{kind: KindStr, strVal: v}
}

func Int(v int64) Value {
	return Value{kind: KindInt, intVal: v}
}

func Uint(v uint64) Value {
	return Value{kind: KindUint, uintVal: v}
}

func F64(v float64) Value {
	return Value{kind: KindF64, floatVal: v}
}

func CounterValue(c Counter) Value {
	return Value{kind: KindCounter, counterVal: c}
}

// Timestamp creates a timestamp value from milliseconds since the Unix epoch.
func Timestamp(ms int64) Value {
	return Value{kind: KindTimestamp, intVal: ms}
}

// TimestampOf creates a timestamp value from t truncated to milliseconds.
func TimestampOf(t time.Time) Value {
	return Timestamp(t.UnixMilli())
}

func Boolean(v bool) Value {
	return Value{kind: KindBoolean, boolVal: v}
}

func Null() Value {
	return Value{kind: KindNull}
}

// Unknown creates a value of a kind this version cannot interpret. The raw
// bytes and the type code are carried through untouched.
func Unknown(typeCode uint8, raw []byte) Value {
	return Value{kind: KindUnknown, typeCode: typeCode, bytesVal: raw}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind. A nil or zero Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil || v.kind == 0 {
		return KindNull
	}

	return v.kind
}

func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// TypeCode returns the raw type code of an Unknown value, zero otherwise.
func (v *Value) TypeCode() uint8 {
	if v.Kind() != KindUnknown {
		return 0
	}

	return v.typeCode
}

func (v *Value) expect(k Kind) error {
	if got := v.Kind(); got != k {
		return fmt.Errorf("%w: expected %s, got %s", ErrKindMismatch, k, got)
	}

	return nil
}

// AsBytes returns the bytes payload. The returned slice aliases the value.
func (v *Value) AsBytes() ([]byte, error) {
	if err := v.expect(KindBytes); err != nil {
		return nil, err
	}

	return v.bytesVal, nil
}

func (v *Value) AsStr() (string, error) {
	if err := v.expect(KindStr); err != nil {
		return "", err
	}

	return v.strVal, nil
}

func (v *Value) AsInt() (int64, error) {
	if err := v.expect(KindInt); err != nil {
		return 0, err
	}

	return v.intVal, nil
}

func (v *Value) AsUint() (uint64, error) {
	if err := v.expect(KindUint); err != nil {
		return 0, err
	}

	return v.uintVal, nil
}

func (v *Value) AsF64() (float64, error) {
	if err := v.expect(KindF64); err != nil {
		return 0, err
	}

	return v.floatVal, nil
}

func (v *Value) AsCounter() (Counter, error) {
	if err := v.expect(KindCounter); err != nil {
		return Counter{}, err
	}

	return v.counterVal, nil
}

// AsTimestamp returns milliseconds since the Unix epoch.
func (v *Value) AsTimestamp() (int64, error) {
	if err := v.expect(KindTimestamp); err != nil {
		return 0, err
	}

	return v.intVal, nil
}

func (v *Value) AsBoolean() (bool, error) {
	if err := v.expect(KindBoolean); err != nil {
		return false, err
	}

	return v.boolVal, nil
}

// AsUnknown returns the type code and raw bytes of an Unknown value.
func (v *Value) AsUnknown() (uint8, []byte, error) {
	if err := v.expect(KindUnknown); err != nil {
		return 0, nil, err
	}

	return v.typeCode, v.bytesVal, nil
}

// ============================================================
// Comparison
// ============================================================

// Equal reports whether both values have the same kind and payload. Byte
// payloads compare by content; floats compare with ==, so NaN is never equal.
func (v *Value) Equal(other *Value) bool {
	k := v.Kind()
	if k != other.Kind() {
		return false
	}

	switch k {
	case KindBytes:
		return bytes.Equal(v.bytesVal, other.bytesVal)
	case KindStr:
		return v.strVal == other.strVal
	case KindInt, KindTimestamp:
		return v.intVal == other.intVal
	case KindUint:
		return v.uintVal == other.uintVal
	case KindF64:
		return v.floatVal == other.floatVal
	case KindCounter:
		return v.counterVal.Value() == other.counterVal.Value()
	case KindBoolean:
		return v.boolVal == other.boolVal
	case KindNull:
		return true
	case KindUnknown:
		return v.typeCode == other.typeCode && bytes.Equal(v.bytesVal, other.bytesVal)
	default:
		panic(unhandled(k))
	}
}

// ExceedsSafeInteger reports whether an integer-like payload lies outside
// ±2^53, where widening to float64 no longer round-trips.
func (v *Value) ExceedsSafeInteger() bool {
	switch v.Kind() {
	case KindInt:
		return !utils.IsSymmetricRange(v.intVal, MaxSafeInteger)
	case KindUint:
		return !utils.IsInRange(0, v.uintVal, MaxSafeInteger)
	case KindCounter:
		return !utils.IsSymmetricRange(v.counterVal.Value(), MaxSafeInteger)
	default:
		return false
	}
}

// MaxSafeInteger is the largest integer magnitude a float64 holds exactly.
const MaxSafeInteger = 1 << 53

func (v *Value) String() string {
	switch k := v.Kind(); k {
	case KindBytes:
		return fmt.Sprintf("bytes(%x)", v.bytesVal)
	case KindStr:
		return fmt.Sprintf("%q", v.strVal)
	case KindInt:
		return fmt.Sprintf("%d", v.intVal)
	case KindUint:
		return fmt.Sprintf("%du", v.uintVal)
	case KindF64:
		if math.IsInf(v.floatVal, 0) || math.IsNaN(v.floatVal) {
			return fmt.Sprintf("f64(%v)", v.floatVal)
		}
		return fmt.Sprintf("%g", v.floatVal)
	case KindCounter:
		return "counter(" + v.counterVal.String() + ")"
	case KindTimestamp:
		return "timestamp(" + time.UnixMilli(v.intVal).UTC().Format(time.RFC3339Nano) + ")"
	case KindBoolean:
		return fmt.Sprintf("%t", v.boolVal)
	case KindNull:
		return "null"
	case KindUnknown:
		return fmt.Sprintf("unknown%d(%x)", v.typeCode, v.bytesVal)
	default:
		panic(unhandled(k))
	}
}
