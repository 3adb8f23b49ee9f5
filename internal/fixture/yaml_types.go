package fixture

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"scalarmap/scalar"
)

var (
	ErrMissingValue = errors.New("missing value")
	ErrInvalidEntry = errors.New("invalid entry")
)

// Document is a YAML list of named scalar values.
type Document struct {
	Version string  `yaml:"version"`
	Values  []Entry `yaml:"values"`

	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-"`
}

// Entry is one named value. Datatype is optional on input: without it the
// kind follows the YAML tag of the value node.
type Entry struct {
	Name  string
	Value scalar.Value
}

type rawEntry struct {
	Name     string    `yaml:"name"`
	Datatype string    `yaml:"datatype,omitempty"`
	Value    yaml.Node `yaml:"value"`
}

type outEntry struct {
	Name     string `yaml:"name"`
	Datatype string `yaml:"datatype"`
	Value    any    `yaml:"value"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: expected mapping, got %v", node.Line, ErrInvalidEntry, node.Kind)
	}

	var raw rawEntry

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	v, err := decodeValue(raw.Datatype, &raw.Value)
	if err != nil {
		return fmt.Errorf("line %d: entry %q: %w", node.Line, raw.Name, err)
	}

	e.Name = raw.Name
	e.Value = v

	return nil
}

// MarshalYAML implements custom YAML marshaling for Entry. The datatype is
// always written, so the output does not depend on tag inference.
func (e Entry) MarshalYAML() (any, error) {
	return outEntry{
		Name:     e.Name,
		Datatype: scalar.Datatype(&e.Value),
		Value:    scalar.Visit[any](&e.Value, encoder{}),
	}, nil
}

func decodeValue(datatype string, node *yaml.Node) (scalar.Value, error) {
	if node.Kind == 0 {
		if datatype == "" || datatype == scalar.KindNull.String() {
			return scalar.Null(), nil
		}
		return scalar.Value{}, ErrMissingValue
	}

	if node.Kind != yaml.ScalarNode {
		return scalar.Value{}, fmt.Errorf("%w: value must be a scalar, got %v", ErrInvalidEntry, node.Kind)
	}

	if datatype == "" {
		return inferValue(node)
	}

	kind, typeCode, err := scalar.ParseDatatype(datatype)
	if err != nil {
		return scalar.Value{}, err
	}

	if kind.IsInteger() && node.ShortTag() != "!!int" {
		return scalar.Value{}, fmt.Errorf("%w: %s value %q is not an integer", ErrInvalidEntry, datatype, node.Value)
	}

	if tag := node.ShortTag(); kind.IsBinary() && tag != "!!str" && tag != "!!binary" {
		return scalar.Value{}, fmt.Errorf("%w: %s value %q is not base64 text", ErrInvalidEntry, datatype, node.Value)
	}

	switch kind {
	case scalar.KindBytes:
		b, err := decodeBase64(node)
		return scalar.Bytes(b), err
	case scalar.KindStr:
		var s string
		err := node.Decode(&s)
		return scalar.Str(s), err
	case scalar.KindInt:
		var i int64
		err := node.Decode(&i)
		return scalar.Int(i), err
	case scalar.KindUint:
		var u uint64
		err := node.Decode(&u)
		return scalar.Uint(u), err
	case scalar.KindF64:
		var f float64
		err := node.Decode(&f)
		return scalar.F64(f), err
	case scalar.KindCounter:
		var i int64
		err := node.Decode(&i)
		return scalar.CounterValue(scalar.NewCounter(i)), err
	case scalar.KindTimestamp:
		return decodeTimestamp(node)
	case scalar.KindBoolean:
		var b bool
		err := node.Decode(&b)
		return scalar.Boolean(b), err
	case scalar.KindNull:
		if node.ShortTag() != "!!null" {
			return scalar.Value{}, fmt.Errorf("%w: null entry has value %q", ErrInvalidEntry, node.Value)
		}
		return scalar.Null(), nil
	case scalar.KindUnknown:
		b, err := decodeBase64(node)
		return scalar.Unknown(typeCode, b), err
	default:
		panic("fixture: unhandled kind " + kind.String())
	}
}

// inferValue picks the kind from the resolved YAML tag.
func inferValue(node *yaml.Node) (scalar.Value, error) {
	switch tag := node.ShortTag(); tag {
	case "!!null":
		return scalar.Null(), nil
	case "!!bool":
		return decodeValue(scalar.KindBoolean.String(), node)
	case "!!int":
		if strings.HasPrefix(node.Value, "-") {
			return decodeValue(scalar.KindInt.String(), node)
		}
		var i int64
		if node.Decode(&i) == nil {
			return scalar.Int(i), nil
		}
		return decodeValue(scalar.KindUint.String(), node)
	case "!!float":
		return decodeValue(scalar.KindF64.String(), node)
	case "!!str":
		return decodeValue(scalar.KindStr.String(), node)
	case "!!binary":
		return decodeValue(scalar.KindBytes.String(), node)
	case "!!timestamp":
		return decodeTimestamp(node)
	default:
		return scalar.Value{}, fmt.Errorf("%w: cannot infer datatype from tag %s", ErrInvalidEntry, tag)
	}
}

// decodeTimestamp accepts milliseconds since the epoch or a YAML timestamp.
func decodeTimestamp(node *yaml.Node) (scalar.Value, error) {
	if node.ShortTag() == "!!int" {
		var ms int64
		err := node.Decode(&ms)
		return scalar.Timestamp(ms), err
	}

	var t time.Time

	err := node.Decode(&t)
	if err != nil {
		return scalar.Value{}, err
	}

	return scalar.TimestampOf(t), nil
}

func decodeBase64(node *yaml.Node) ([]byte, error) {
	text := strings.Join(strings.Fields(node.Value), "")

	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64: %w", ErrInvalidEntry, err)
	}

	return b, nil
}

// encoder renders values in the shape decodeValue reads back.
type encoder struct{}

var _ scalar.Visitor[any] = encoder{}

func (encoder) VisitBytes(b []byte) any              { return base64.StdEncoding.EncodeToString(b) }
func (encoder) VisitStr(s string) any                { return s }
func (encoder) VisitInt(i int64) any                 { return i }
func (encoder) VisitUint(u uint64) any               { return u }
func (encoder) VisitF64(f float64) any               { return f }
func (encoder) VisitCounter(c scalar.Counter) any    { return c.Value() }
func (encoder) VisitTimestamp(ms int64) any          { return ms }
func (encoder) VisitBoolean(b bool) any              { return b }
func (encoder) VisitNull() any                       { return nil }
func (encoder) VisitUnknown(_ uint8, raw []byte) any { return base64.StdEncoding.EncodeToString(raw) }
