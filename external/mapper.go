package external

import (
	"time"

	"go.uber.org/zap"

	"scalarmap/options"
	"scalarmap/scalar"
	"scalarmap/utils"
)

// Mapper converts scalar values into host values. A Mapper is immutable and
// safe for concurrent use.
type Mapper struct {
	categories options.CategoryEnum
	logger     *zap.Logger
}

type MapperOption func(*Mapper)

// WithLogger makes the mapper report lossy widenings at debug level.
func WithLogger(logger *zap.Logger) MapperOption {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMapper creates a mapper for the given conversion categories.
//
// Without options.CategoryUnsafeNumber integers stay exact: int and counter
// map to int64 and uint maps to uint64. Without options.CategoryTimestamp a
// timestamp maps to its millisecond count as float64.
func NewMapper(categories options.CategoryEnum, opts ...MapperOption) *Mapper {
	m := &Mapper{
		categories: categories,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

var defaultMapper = NewMapper(options.CategoryDefault)

// ToValue converts v with the default categories. It never retains or
// modifies v.
//
//	bytes, unknown  -> []byte (fresh copy)
//	str             -> string
//	int, uint, f64  -> float64
//	counter         -> float64 (current value)
//	timestamp       -> time.Time (UTC)
//	boolean         -> bool
//	null            -> Null
func ToValue(v *scalar.Value) any {
	return defaultMapper.ToValue(v)
}

// IntoValue is ToValue for a value the caller hands over.
func IntoValue(v scalar.Value) any {
	return defaultMapper.ToValue(&v)
}

func (m *Mapper) Categories() options.CategoryEnum {
	return m.categories
}

func (m *Mapper) ToValue(v *scalar.Value) any {
	return scalar.Visit[any](v, converter{m})
}

func (m *Mapper) IntoValue(v scalar.Value) any {
	return m.ToValue(&v)
}

type converter struct {
	*Mapper
}

var _ scalar.Visitor[any] = converter{}

func (c converter) VisitBytes(b []byte) any {
	return copyBytes(b)
}

func (c converter) VisitStr(s string) any {
	return s
}

func (c converter) VisitInt(i int64) any {
	if !c.categories.Has(options.CategoryUnsafeNumber) {
		return i
	}

	if !utils.IsSymmetricRange(i, scalar.MaxSafeInteger) {
		c.logger.Debug("lossy integer widening", zap.String("datatype", "int"), zap.Int64("value", i))
	}

	return float64(i)
}

func (c converter) VisitUint(u uint64) any {
	if !c.categories.Has(options.CategoryUnsafeNumber) {
		return u
	}

	if !utils.IsInRange(0, u, scalar.MaxSafeInteger) {
		c.logger.Debug("lossy integer widening", zap.String("datatype", "uint"), zap.Uint64("value", u))
	}

	return float64(u)
}

func (c converter) VisitF64(f float64) any {
	return f
}

func (c converter) VisitCounter(counter scalar.Counter) any {
	if !c.categories.Has(options.CategoryUnsafeNumber) {
		return counter.Value()
	}

	if n := counter.Value(); !utils.IsSymmetricRange(n, scalar.MaxSafeInteger) {
		c.logger.Debug("lossy integer widening", zap.String("datatype", "counter"), zap.Int64("value", n))
	}

	return counter.Float64()
}

func (c converter) VisitTimestamp(ms int64) any {
	if !c.categories.Has(options.CategoryTimestamp) {
		return float64(ms)
	}

	return time.UnixMilli(ms).UTC()
}

func (c converter) VisitBoolean(b bool) any {
	return b
}

func (c converter) VisitNull() any {
	return Null{}
}

func (c converter) VisitUnknown(_ uint8, raw []byte) any {
	return copyBytes(raw)
}
