// Package raw models the loosely-typed scalar values a cleaner accepts.
//
// Input cells from CSV readers, JSON decoders, or spreadsheet libraries are
// rarely guaranteed to be strings. Rather than coercing silently, callers
// classify each cell into an explicit sum type at the boundary:
//
//	String      — a string payload, possibly blank
//	Missing     — the value was absent (nil, NULL, empty cell)
//	Unsupported — any other Go type; cleaners reject it as a type mismatch
//
// Usage: construct via FromAny when decoding untrusted input, or via the
// String/Missing/Unsupported constructors when the shape is already known.
package raw

import "fmt"

// Kind discriminates the variants of Value.
type Kind uint8

const (
	// KindMissing marks an absent value. The zero Value is Missing.
	KindMissing Kind = iota
	// KindString marks a string payload.
	KindString
	// KindUnsupported marks a value of any non-string type.
	KindUnsupported
)

// Value is an immutable tagged union over the three input variants.
// The zero value is Missing.
type Value struct {
	kind Kind
	str  string
	orig any
}

// String wraps a string payload. Blank strings are still KindString;
// cleaners decide whether blank counts as empty input.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Missing represents an absent value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Unsupported wraps a value of a type no cleaner accepts. The original is
// retained so error paths can report what was seen.
func Unsupported(v any) Value {
	return Value{kind: KindUnsupported, orig: v}
}

// FromAny classifies an arbitrary decoded value. nil maps to Missing,
// string and *string map to String (nil *string is Missing), and every
// other type maps to Unsupported. No coercion is performed: numbers,
// booleans, and composites are deliberately not stringified.
func FromAny(v any) Value {
	switch s := v.(type) {
	case nil:
		return Missing()
	case string:
		return String(s)
	case *string:
		if s == nil {
			return Missing()
		}
		return String(*s)
	default:
		return Unsupported(v)
	}
}

// Kind reports the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the string payload and true when the value is KindString.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// TypeName describes the wrapped value's dynamic type, for error messages.
// Returns "missing" and "string" for the respective variants.
func (v Value) TypeName() string {
	switch v.kind {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("%T", v.orig)
	}
}
