package webidlruntime

// ValueKind identifies the primitive tag of a host value.
type ValueKind uint8

const (
	KindUndefined ValueKind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArrayLike
)

// String returns the script-facing name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArrayLike:
		return "array-like"
	default:
		return "unknown"
	}
}

// Value is the boundary contract with the dynamic-value source. It is a
// snapshot: implementations answer questions about a value captured by the
// caller, and the runtime layer never mutates through it.
//
// Only the array-like subset matters to the collection constructors; the
// scalar accessors exist so callers can convert leaf elements without a
// second dispatch surface.
type Value interface {
	// Kind reports the primitive tag of the value.
	Kind() ValueKind

	// Len returns the element count for array-like values, 0 otherwise.
	Len() int

	// Index returns element i of an array-like value. The second result is
	// false when the value is not array-like or i is out of range.
	Index(i int) (Value, bool)

	// Bool returns the boolean payload; meaningful only when Kind is
	// KindBoolean.
	Bool() bool

	// Number returns the numeric payload; meaningful only when Kind is
	// KindNumber.
	Number() float64

	// String returns the string payload; meaningful only when Kind is
	// KindString.
	String() string
}
