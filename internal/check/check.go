package check

import (
	"fmt"
	"math"

	"scalarmap/internal/diagnostic"
	"scalarmap/options"
	"scalarmap/scalar"
)

const (
	CodeLossyWidening   = "LOSSY_WIDENING"
	CodeTypeCodeDropped = "UNKNOWN_TYPE_CODE_DROPPED"
	CodeNonFinite       = "NON_FINITE_NUMBER"
	CodeLoadFailed      = "LOAD_FAILED"
)

// Entry is a value together with the path it is reported under.
type Entry struct {
	Path  string
	Value *scalar.Value
}

// Values inspects entries without converting them and reports what a
// conversion under the given categories would lose.
func Values(categories options.CategoryEnum, entries ...Entry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, e := range entries {
		Value(&diags, categories, e.Path, e.Value)
	}

	return diags
}

// Value appends the diagnostics for a single value to diags.
func Value(diags *diagnostic.Diagnostics, categories options.CategoryEnum, path string, v *scalar.Value) {
	datatype := scalar.Datatype(v)

	switch k := v.Kind(); k {
	case scalar.KindInt, scalar.KindUint, scalar.KindCounter:
		if categories.Has(options.CategoryUnsafeNumber) && v.ExceedsSafeInteger() {
			diags.AddWarning(CodeLossyWidening,
				fmt.Sprintf("%s exceeds ±2^53 and will not round-trip through float64", v),
				datatype, path)
		}
	case scalar.KindF64:
		f, _ := v.AsF64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			diags.AddWarning(CodeNonFinite,
				fmt.Sprintf("%v has no JSON number form and is written as a string", f),
				datatype, path)
		}
	case scalar.KindUnknown:
		diags.AddInfo(CodeTypeCodeDropped,
			fmt.Sprintf("type code %d is only visible through the datatype tag", v.TypeCode()),
			datatype, path)
	case scalar.KindBytes, scalar.KindStr, scalar.KindTimestamp, scalar.KindBoolean, scalar.KindNull:
	default:
		panic("check: unhandled kind " + k.String())
	}
}

// Path builds the default path for the i-th value of a document.
func Path(i int) string {
	return fmt.Sprintf("values[%d]", i)
}
