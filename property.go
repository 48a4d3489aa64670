package cast

import (
	"fmt"

	"github.com/go-cast/cast/internal/wire"
)

// PropertyKind is the on-wire property type tag (§6.2).
type PropertyKind = wire.PropertyKind

// Known property kinds (§6.2).
const (
	KindByte    = wire.KindByte
	KindShort   = wire.KindShort
	KindInt32   = wire.KindInt32
	KindInt64   = wire.KindInt64
	KindFloat32 = wire.KindFloat32
	KindFloat64 = wire.KindFloat64
	KindString  = wire.KindString
	KindVector2 = wire.KindVector2
	KindVector3 = wire.KindVector3
	KindVector4 = wire.KindVector4
)

// PropertyValue is the closed set of element types a Property may hold
// (§3.1): one string variant, plus one array variant per scalar/vector
// primitive.
type PropertyValue interface {
	byte | uint16 | uint32 | uint64 | float32 | float64 | string | Vec2 | Vec3 | Vec4
}

// Property is a single node property: either a lone string value, or an
// ordered, possibly-empty array of T. The zero value is not usable;
// construct one with NewStringProperty / NewArrayProperty /
// NewEmptyArrayProperty.
type Property[T PropertyValue] struct {
	kind   PropertyKind
	values []T
}

// iProperty is the type-erased view every concrete Property[T]
// satisfies, letting Node hold heterogeneous properties in one map.
type iProperty interface {
	Identifier() PropertyKind
	ValueCount() int
	DataSize() uint32
	cloneProp() iProperty
}

// kindFor returns the wire kind tag for T, used by the generic
// constructors so callers never have to pass a redundant kind argument.
func kindFor[T PropertyValue]() PropertyKind {
	var zero T
	switch any(zero).(type) {
	case byte:
		return KindByte
	case uint16:
		return KindShort
	case uint32:
		return KindInt32
	case uint64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case string:
		return KindString
	case Vec2:
		return KindVector2
	case Vec3:
		return KindVector3
	case Vec4:
		return KindVector4
	default:
		panic(fmt.Sprintf("cast: unsupported property value type %T", zero))
	}
}

// NewArrayProperty constructs an Array<T> property from an ordered
// sequence of values (possibly empty).
func NewArrayProperty[T PropertyValue](values ...T) *Property[T] {
	var zero T
	if _, isString := any(zero).(string); isString {
		panic("cast: use NewStringProperty for string properties")
	}
	cp := make([]T, len(values))
	copy(cp, values)
	return &Property[T]{kind: kindFor[T](), values: cp}
}

// NewEmptyArrayProperty constructs an Array<T> property with n
// zero-valued elements, for callers that want to fill the buffer after
// allocation (mirrors the decoder's own pre-sized allocation).
func NewEmptyArrayProperty[T PropertyValue](n int) *Property[T] {
	return &Property[T]{kind: kindFor[T](), values: make([]T, n)}
}

// NewStringProperty constructs a String property holding a single value.
func NewStringProperty(value string) *Property[string] {
	return &Property[string]{kind: KindString, values: []string{value}}
}

// Identifier returns the property's on-wire kind tag.
func (p *Property[T]) Identifier() PropertyKind {
	return p.kind
}

// ValueCount returns the number of elements held (always 1 for String).
func (p *Property[T]) ValueCount() int {
	return len(p.values)
}

// DataSize returns the number of bytes the payload alone occupies on the
// wire, excluding the 8-byte property header and key bytes (§4.1).
func (p *Property[T]) DataSize() uint32 {
	if p.kind == KindString {
		s := any(p.values[0]).(string)
		return uint32(len(s) + 1)
	}
	return uint32(len(p.values) * wire.PayloadSize(p.kind))
}

// Values returns the property's underlying value slice. The returned
// slice must not be retained and mutated by the caller if the property's
// owning Node might be read concurrently.
func (p *Property[T]) Values() []T {
	return p.values
}

// SetValues replaces the property's values wholesale.
func (p *Property[T]) SetValues(values ...T) {
	cp := make([]T, len(values))
	copy(cp, values)
	p.values = cp
}

// AppendValues appends values to the end of the property's array. For a
// String property this panics: strings always hold exactly one value.
func (p *Property[T]) AppendValues(values ...T) {
	if p.kind == KindString {
		panic("cast: cannot append to a string property")
	}
	p.values = append(p.values, values...)
}

// First returns the property's first value, or ok=false if the array is
// empty. Strings always have exactly one value.
func (p *Property[T]) First() (value T, ok bool) {
	if len(p.values) == 0 {
		var zero T
		return zero, false
	}
	return p.values[0], true
}

// SetFirst overwrites the property's first value, growing a zero-length
// array property to length 1 if necessary.
func (p *Property[T]) SetFirst(value T) {
	if len(p.values) == 0 {
		p.values = append(p.values, value)
		return
	}
	p.values[0] = value
}

// clone returns a deep copy of the property.
func (p *Property[T]) clone() *Property[T] {
	cp := make([]T, len(p.values))
	copy(cp, p.values)
	return &Property[T]{kind: p.kind, values: cp}
}

// cloneProp satisfies iProperty so Node can deep-copy a heterogeneous
// property map without knowing each slot's concrete type.
func (p *Property[T]) cloneProp() iProperty {
	return p.clone()
}
