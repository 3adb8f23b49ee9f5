package scalar

// Visitor observes a Value by kind. Implementations must provide a method for
// every kind, so adding a kind breaks every visitor at compile time.
type Visitor[T any] interface {
	VisitBytes(b []byte) T
	VisitStr(s string) T
	VisitInt(i int64) T
	VisitUint(u uint64) T
	VisitF64(f float64) T
	VisitCounter(c Counter) T
	VisitTimestamp(ms int64) T
	VisitBoolean(b bool) T
	VisitNull() T
	VisitUnknown(typeCode uint8, raw []byte) T
}

// Visit dispatches v to the visitor method matching its kind. Byte payloads
// are passed by reference; visitors must not modify them.
func Visit[T any](v *Value, vis Visitor[T]) T {
	switch k := v.Kind(); k {
	case KindBytes:
		return vis.VisitBytes(v.bytesVal)
	case KindStr:
		return vis.VisitStr(v.strVal)
	case KindInt:
		return vis.VisitInt(v.intVal)
	case KindUint:
		return vis.VisitUint(v.uintVal)
	case KindF64:
		return vis.VisitF64(v.floatVal)
	case KindCounter:
		return vis.VisitCounter(v.counterVal)
	case KindTimestamp:
		return vis.VisitTimestamp(v.intVal)
	case KindBoolean:
		return vis.VisitBoolean(v.boolVal)
	case KindNull:
		return vis.VisitNull()
	case KindUnknown:
		return vis.VisitUnknown(v.typeCode, v.bytesVal)
	default:
		panic(unhandled(k))
	}
}
