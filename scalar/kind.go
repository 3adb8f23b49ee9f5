package scalar

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind enumerates the scalar variants a document can hold. The line comment
// of every member is its datatype tag.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindBytes     // bytes
	KindStr       // str
	KindInt       // int
	KindUint      // uint
	KindF64       // f64
	KindCounter   // counter
	KindTimestamp // timestamp
	KindBoolean   // boolean
	KindNull      // null
	KindUnknown   // unknown

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsValid() bool {
	return 0 < k && int(k) < KindTotal
}

// IsInteger reports whether the kind carries an exact integer payload that
// loses precision above 2^53 once widened to float64.
func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindUint, KindCounter:
		return true
	}
}

// IsBinary reports whether the kind carries a raw byte payload.
func (k Kind) IsBinary() bool {
	switch k {
	default:
		return false
	case KindBytes, KindUnknown:
		return true
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindTotal-1)
	for k := Kind(1); int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

func unhandled(k Kind) string {
	return "scalar: unhandled kind " + k.String()
}
