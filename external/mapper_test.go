package external_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"scalarmap/external"
	"scalarmap/options"
	"scalarmap/scalar"
)

func Example() {
	values := []scalar.Value{
		scalar.Str("hello"),
		scalar.Int(42),
		scalar.Timestamp(1700000000000),
		scalar.Null(),
		scalar.Unknown(9, []byte{1, 2, 3}),
	}

	for i := range values {
		x := external.ToValue(&values[i])
		fmt.Printf("%s %T %v\n", scalar.Datatype(&values[i]), x, x)
	}
	// Output:
	// str string hello
	// int float64 42
	// timestamp time.Time 2023-11-14 22:13:20 +0000 UTC
	// null external.Null null
	// unknown9 []uint8 [1 2 3]
}

func TestToValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    scalar.Value
		expected any
	}{
		{"bytes", scalar.Bytes([]byte{1, 2, 3}), []byte{1, 2, 3}},
		{"empty bytes", scalar.Bytes(nil), []byte{}},
		{"str", scalar.Str("text"), "text"},
		{"empty str", scalar.Str(""), ""},
		{"int", scalar.Int(-42), float64(-42)},
		{"uint", scalar.Uint(42), float64(42)},
		{"f64", scalar.F64(3.25), 3.25},
		{"counter", scalar.CounterValue(scalar.NewCounter(10).Increment(2)), float64(12)},
		{"timestamp epoch", scalar.Timestamp(0), time.Unix(0, 0).UTC()},
		{"timestamp", scalar.Timestamp(1700000000000), time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		{"negative timestamp", scalar.Timestamp(-1), time.Date(1969, 12, 31, 23, 59, 59, 999_000_000, time.UTC)},
		{"true", scalar.Boolean(true), true},
		{"false", scalar.Boolean(false), false},
		{"null", scalar.Null(), external.Null{}},
		{"unknown", scalar.Unknown(9, []byte{1, 2, 3}), []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, external.ToValue(&tt.value))
			assert.Equal(t, tt.expected, external.IntoValue(tt.value))
		})
	}
}

func TestToValue_NullIsNotNil(t *testing.T) {
	t.Parallel()

	null := scalar.Null()
	x := external.ToValue(&null)

	require.NotNil(t, x)
	assert.IsType(t, external.Null{}, x)

	empty := scalar.Bytes(nil)
	b := external.ToValue(&empty)
	assert.NotNil(t, b.([]byte), "empty bytes must still be a buffer")
}

func TestToValue_BytesAreCopied(t *testing.T) {
	t.Parallel()

	for _, v := range []scalar.Value{
		scalar.Bytes([]byte{1, 2, 3}),
		scalar.Unknown(4, []byte{1, 2, 3}),
	} {
		t.Run(v.Datatype(), func(t *testing.T) {
			t.Parallel()

			out := external.ToValue(&v).([]byte)
			out[0] = 99

			var raw []byte
			if v.Kind() == scalar.KindBytes {
				raw, _ = v.AsBytes()
			} else {
				_, raw, _ = v.AsUnknown()
			}

			assert.Equal(t, []byte{1, 2, 3}, raw, "source must not alias the host buffer")
		})
	}
}

func TestToValue_IntegerWidening(t *testing.T) {
	t.Parallel()

	t.Run("exact within 2^53", func(t *testing.T) {
		t.Parallel()

		for _, i := range []int64{0, 1, -1, scalar.MaxSafeInteger, -scalar.MaxSafeInteger, 123456789012345} {
			v := scalar.Int(i)
			f := external.ToValue(&v).(float64)
			assert.Equal(t, i, int64(f))

			if i >= 0 {
				u := scalar.Uint(uint64(i))
				assert.Equal(t, uint64(i), uint64(external.ToValue(&u).(float64)))
			}
		}
	})

	t.Run("lossy above 2^53", func(t *testing.T) {
		t.Parallel()

		v := scalar.Int(scalar.MaxSafeInteger)
		w := scalar.Int(scalar.MaxSafeInteger + 1)
		assert.Equal(t, external.ToValue(&v), external.ToValue(&w))

		u := scalar.Uint(math.MaxUint64)
		assert.InDelta(t, math.Pow(2, 64), external.ToValue(&u).(float64), 0)
	})
}

func TestMapper_Categories(t *testing.T) {
	t.Parallel()

	big := scalar.Int(math.MaxInt64)
	ubig := scalar.Uint(math.MaxUint64)
	counter := scalar.CounterValue(scalar.NewCounter(scalar.MaxSafeInteger + 1))
	ts := scalar.Timestamp(1700000000000)

	t.Run("exact integers", func(t *testing.T) {
		t.Parallel()

		m := external.NewMapper(options.CategoryTimestamp)
		assert.Equal(t, int64(math.MaxInt64), m.ToValue(&big))
		assert.Equal(t, uint64(math.MaxUint64), m.ToValue(&ubig))
		assert.Equal(t, int64(scalar.MaxSafeInteger+1), m.ToValue(&counter))
		assert.IsType(t, time.Time{}, m.ToValue(&ts))
	})

	t.Run("raw timestamps", func(t *testing.T) {
		t.Parallel()

		m := external.NewMapper(options.CategoryUnsafeNumber)
		assert.Equal(t, float64(1700000000000), m.ToValue(&ts))
		assert.Equal(t, options.CategoryUnsafeNumber, m.Categories())
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		m := external.NewMapper(options.CategoryNone)
		assert.Equal(t, float64(1700000000000), m.IntoValue(ts))
		assert.Equal(t, int64(math.MaxInt64), m.IntoValue(big))
	})
}

func TestMapper_LogsLossyWidening(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	m := external.NewMapper(options.CategoryDefault, external.WithLogger(zap.New(core)))

	safe := scalar.Int(1)
	big := scalar.Int(-scalar.MaxSafeInteger - 1)
	ubig := scalar.Uint(scalar.MaxSafeInteger + 1)
	counter := scalar.CounterValue(scalar.NewCounter(scalar.MaxSafeInteger + 1))

	m.ToValue(&safe)
	m.ToValue(&big)
	m.ToValue(&ubig)
	m.ToValue(&counter)

	entries := logs.FilterMessage("lossy integer widening").All()
	require.Len(t, entries, 3)

	var datatypes []string
	for _, e := range entries {
		datatypes = append(datatypes, e.ContextMap()["datatype"].(string))
	}

	if diff := cmp.Diff([]string{"int", "uint", "counter"}, datatypes); diff != "" {
		t.Errorf("logged datatypes mismatch (-want +got):\n%s", diff)
	}
}

func TestMapper_NilLoggerKeepsNop(t *testing.T) {
	t.Parallel()

	m := external.NewMapper(options.CategoryDefault, external.WithLogger(nil))
	v := scalar.Int(math.MaxInt64)

	assert.NotPanics(t, func() { m.ToValue(&v) })
}

func TestToValue_CoversEveryKind(t *testing.T) {
	t.Parallel()

	for k := scalar.Kind(1); int(k) < scalar.KindTotal; k++ {
		v := sample(t, k)
		assert.NotPanics(t, func() { external.ToValue(&v) }, k.String())
		assert.NotPanics(t, func() { external.NewMapper(options.CategoryNone).ToValue(&v) }, k.String())
	}
}

func TestToValue_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	values := make([]scalar.Value, 0, 1000)
	for i := range 1000 {
		values = append(values, scalar.Int(int64(i)), scalar.Bytes([]byte{byte(i)}))
	}

	results := make([]any, len(values))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for i := range values {
		g.Go(func() error {
			results[i] = external.ToValue(&values[i])
			return nil
		})
	}

	require.NoError(t, g.Wait())

	for i := range values {
		assert.Equal(t, external.ToValue(&values[i]), results[i])
	}
}

func sample(t *testing.T, k scalar.Kind) scalar.Value {
	t.Helper()

	switch k {
	case scalar.KindBytes:
		return scalar.Bytes([]byte{1})
	case scalar.KindStr:
		return scalar.Str("s")
	case scalar.KindInt:
		return scalar.Int(1)
	case scalar.KindUint:
		return scalar.Uint(1)
	case scalar.KindF64:
		return scalar.F64(1)
	case scalar.KindCounter:
		return scalar.CounterValue(scalar.NewCounter(1))
	case scalar.KindTimestamp:
		return scalar.Timestamp(1)
	case scalar.KindBoolean:
		return scalar.Boolean(true)
	case scalar.KindNull:
		return scalar.Null()
	case scalar.KindUnknown:
		return scalar.Unknown(1, []byte{1})
	default:
		t.Fatalf("no sample for kind %s", k)
		return scalar.Value{}
	}
}
