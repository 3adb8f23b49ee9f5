package scalar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scalarmap/internal/match"
)

var ErrUnknownDatatype = errors.New("scalar: unknown datatype")

const unknownPrefix = "unknown"

// Datatype returns the type tag of v. Unknown values are tagged with their
// decimal type code appended, e.g. "unknown7".
func Datatype(v *Value) string {
	switch k := v.Kind(); k {
	case KindBytes, KindStr, KindInt, KindUint, KindF64, KindCounter,
		KindTimestamp, KindBoolean, KindNull:
		return k.String()
	case KindUnknown:
		return unknownPrefix + strconv.FormatUint(uint64(v.typeCode), 10)
	default:
		panic(unhandled(k))
	}
}

func (v *Value) Datatype() string {
	return Datatype(v)
}

// ParseDatatype is the inverse of Datatype. The type code is only meaningful
// for KindUnknown.
func ParseDatatype(tag string) (Kind, uint8, error) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if k != KindUnknown && k.String() == tag {
			return k, 0, nil
		}
	}

	digits, ok := strings.CutPrefix(tag, unknownPrefix)
	if !ok || digits == "" || (len(digits) > 1 && digits[0] == '0') {
		if guess, found := match.Closest(tag, datatypeTags(), maxSuggestDistance); found {
			return 0, 0, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownDatatype, tag, guess)
		}
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownDatatype, tag)
	}

	code, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: type code out of range", ErrUnknownDatatype, tag)
	}

	return KindUnknown, uint8(code), nil
}

const maxSuggestDistance = 3

// datatypeTags lists the fixed tags; unknown kinds are left out since they
// need a type code.
func datatypeTags() []string {
	tags := make([]string, 0, KindTotal-2)
	for _, k := range Kinds() {
		if k != KindUnknown {
			tags = append(tags, k.String())
		}
	}

	return tags
}
