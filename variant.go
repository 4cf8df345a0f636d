// FILE: variant.go
package logf

// variantKind tags the payload carried by a Variant.
type variantKind uint8

const (
	variantInt variantKind = iota
	variantFloat
	variantString
)

// Variant is a tagged-union argument value. It never boxes into an interface
// value, so passing one on the hot path allocates nothing: the three payload
// shapes (32-bit int, 64-bit float, non-owning string) are carried directly
// as struct fields rather than through `any`.
//
// The string payload must reference storage that outlives the record's
// consumption by the consumer goroutine; Go string literals and other
// static/pinned strings satisfy this without any extra lifetime management.
type Variant struct {
	kind variantKind
	i    int32
	f    float64
	s    string
}

// Int builds an integer Variant. Values outside the int32 range are narrowed;
// the narrowing is documented behavior, not an error.
func Int(v int64) Variant {
	return Variant{kind: variantInt, i: int32(v)}
}

// Float builds a floating-point Variant.
func Float(v float64) Variant {
	return Variant{kind: variantFloat, f: v}
}

// Str builds a string Variant. The caller is responsible for the string
// outliving the record's consumption.
func Str(v string) Variant {
	return Variant{kind: variantString, s: v}
}

func (v Variant) isInt() bool    { return v.kind == variantInt }
func (v Variant) isFloat() bool  { return v.kind == variantFloat }
func (v Variant) isString() bool { return v.kind == variantString }
