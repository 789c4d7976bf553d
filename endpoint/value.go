package endpoint

import "strconv"

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. KindInvalid is the zero Value's kind; invalid values are
// silently dropped during query assembly.
const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// Value is a closed query-parameter value: a string, integer, float or
// boolean with a single canonical string form.
//
// The zero Value is invalid. Invalid values are omitted from the final
// URL rather than raising an error; callers that need strictness should
// validate their parameter maps before building a request.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
}

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds one of the four concrete variants.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// String returns the canonical string form of v: the string itself,
// base-10 integers, shortest-round-trip floats, "true"/"false". The
// invalid zero Value returns "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}
