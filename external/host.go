package external

// Null is the host null value. A nil interface stands for an absent
// (undefined) value and is never produced by conversion.
type Null struct{}

func (Null) String() string { return "null" }

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
