package cast

import "github.com/go-cast/cast/internal/propindex"

// Node is one element of the generic Cast tree: a typed identifier, an
// optional name hash, an insertion-ordered unique-key property map, and
// an ordered list of children. Node is the source of truth for every
// file this package loads — typed façades (Bone, Mesh, ...) are thin
// views over a Node's properties and never hold state of their own.
//
// A Node's children always know their parent; AddChild detaches a child
// from any previous parent before appending it, so a Node is never a
// child of two parents at once.
type Node struct {
	identifier NodeID
	hash       uint64
	index      *propindex.Index
	props      []iProperty
	children   []*Node
	parent     *Node
}

// NewNode constructs an empty node of the given identifier, with hash 0
// and no properties or children.
func NewNode(identifier NodeID) *Node {
	return &Node{identifier: identifier, index: propindex.New()}
}

// NewNodeWithHash constructs an empty node with an explicit name hash.
func NewNodeWithHash(identifier NodeID, hash uint64) *Node {
	n := NewNode(identifier)
	n.hash = hash
	return n
}

// NewNodeFrom returns a shallow copy of src: its identifier, hash, and a
// deep copy of its properties, but zero children. Use AdoptChildren to
// move src's children onto the copy explicitly — the two steps are kept
// separate so callers who only want a property-level duplicate are never
// surprised by children moving out from under src.
func NewNodeFrom(src *Node) *Node {
	nn := &Node{
		identifier: src.identifier,
		hash:       src.hash,
		index:      src.index.Clone(),
		props:      make([]iProperty, len(src.props)),
	}
	for i, p := range src.props {
		nn.props[i] = p.cloneProp()
	}
	return nn
}

// Identifier returns the node's on-wire kind tag.
func (n *Node) Identifier() NodeID {
	return n.identifier
}

// SetIdentifier overwrites the node's kind tag.
func (n *Node) SetIdentifier(id NodeID) {
	n.identifier = id
}

// Hash returns the node's name hash (§4.4). A Hash of 0 means "unset";
// hash lookups on 0 never match (see TryChildByHash).
func (n *Node) Hash() uint64 {
	return n.hash
}

// SetHash overwrites the node's name hash.
func (n *Node) SetHash(hash uint64) {
	n.hash = hash
}

// Parent returns the node's current parent, or nil if it is a root or
// has not yet been attached to a tree.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child to n's children. If child already has a
// parent, it is first detached from that parent's child list — a Node
// is never a child of two parents at once.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.detachChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// AdoptChildren moves every one of src's children onto n, preserving
// their relative order. src is left with no children.
func (n *Node) AdoptChildren(src *Node) {
	moving := src.children
	src.children = nil
	for _, c := range moving {
		c.parent = nil
		n.AddChild(c)
	}
}

// AddNewChild constructs a new node of the given identifier, appends it
// as a child of n, and returns it.
func (n *Node) AddNewChild(identifier NodeID) *Node {
	c := NewNode(identifier)
	n.AddChild(c)
	return c
}

func (n *Node) detachChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Children returns n's children in wire order. The returned slice must
// not be mutated by the caller; use AddChild/AdoptChildren instead.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildCountOfKind returns the number of direct children with the given
// identifier.
func (n *Node) ChildCountOfKind(id NodeID) int {
	count := 0
	for _, c := range n.children {
		if c.identifier == id {
			count++
		}
	}
	return count
}

// FirstChild returns n's first child, or ErrIndexOutOfRange if n has no
// children.
func (n *Node) FirstChild() (*Node, error) {
	c, ok := n.TryFirstChild()
	if !ok {
		return nil, ErrIndexOutOfRange
	}
	return c, nil
}

// TryFirstChild returns n's first child and true, or ok=false if n has
// no children.
func (n *Node) TryFirstChild() (*Node, bool) {
	if len(n.children) == 0 {
		return nil, false
	}
	return n.children[0], true
}

// FirstChildOfKind returns n's first child with the given identifier, or
// ErrIndexOutOfRange if none match.
func (n *Node) FirstChildOfKind(id NodeID) (*Node, error) {
	c, ok := n.TryFirstChildOfKind(id)
	if !ok {
		return nil, ErrIndexOutOfRange
	}
	return c, nil
}

// TryFirstChildOfKind returns n's first child with the given identifier
// and true, or ok=false if none match.
func (n *Node) TryFirstChildOfKind(id NodeID) (*Node, bool) {
	for _, c := range n.children {
		if c.identifier == id {
			return c, true
		}
	}
	return nil, false
}

// ChildAt returns the child at index i, or ErrIndexOutOfRange if i is
// outside [0, ChildCount).
func (n *Node) ChildAt(i int) (*Node, error) {
	c, ok := n.TryChildAt(i)
	if !ok {
		return nil, ErrIndexOutOfRange
	}
	return c, nil
}

// TryChildAt returns the child at index i and true, or ok=false if i is
// out of range.
func (n *Node) TryChildAt(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// ChildByHash returns the first direct child whose Hash equals hash, or
// ErrIndexOutOfRange if none match.
func (n *Node) ChildByHash(hash uint64) (*Node, error) {
	c, ok := n.TryChildByHash(hash)
	if !ok {
		return nil, ErrIndexOutOfRange
	}
	return c, nil
}

// TryChildByHash returns the first direct child whose Hash equals hash
// and true, or ok=false if none match. A hash of 0 always misses.
func (n *Node) TryChildByHash(hash uint64) (*Node, bool) {
	if hash == 0 {
		return nil, false
	}
	for _, c := range n.children {
		if c.hash == hash {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOfKind returns every direct child with the given identifier,
// in wire order.
func (n *Node) ChildrenOfKind(id NodeID) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.identifier == id {
			out = append(out, c)
		}
	}
	return out
}

// IterateChildrenOfKind returns a range-over-func iterator yielding n's
// children with the given identifier, in wire order, without the
// ChildrenOfKind allocation.
func (n *Node) IterateChildrenOfKind(id NodeID) func(yield func(*Node) bool) {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if c.identifier == id {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// PropertyCount returns the number of distinct property keys held.
func (n *Node) PropertyCount() int {
	return n.index.Len()
}

// PropertyKeys returns the node's property keys in insertion order. The
// returned slice must not be mutated by the caller.
func (n *Node) PropertyKeys() []string {
	return n.index.Keys()
}

func (n *Node) getProperty(key string) (iProperty, bool) {
	slot, ok := n.index.Slot(key)
	if !ok {
		return nil, false
	}
	return n.props[slot], true
}

func (n *Node) setProperty(key string, prop iProperty) {
	slot, created := n.index.Insert(key)
	if created {
		n.props = append(n.props, prop)
		return
	}
	n.props[slot] = prop
}

// GetProperty returns the property stored at key, or ErrPropertyMissing
// if key is absent.
func (n *Node) GetProperty(key string) (iProperty, error) {
	p, ok := n.getProperty(key)
	if !ok {
		return nil, ErrPropertyMissing
	}
	return p, nil
}

// TryGetProperty returns the property stored at key and true, or
// ok=false if key is absent.
func (n *Node) TryGetProperty(key string) (iProperty, bool) {
	return n.getProperty(key)
}

// GetString returns the string value stored at key. It returns
// ErrPropertyMissing if key is absent, or ErrPropertyKindMismatch if key
// holds a non-string property.
func (n *Node) GetString(key string) (string, error) {
	prop, ok := n.getProperty(key)
	if !ok {
		return "", ErrPropertyMissing
	}
	sp, ok := prop.(*Property[string])
	if !ok {
		return "", ErrPropertyKindMismatch
	}
	v, _ := sp.First()
	return v, nil
}

// GetStringOr returns the string value stored at key, or def if key is
// absent or holds a different property kind.
func (n *Node) GetStringOr(key, def string) string {
	v, err := n.GetString(key)
	if err != nil {
		return def
	}
	return v
}

// AddString always-overwrites key with a String property holding value.
func (n *Node) AddString(key, value string) {
	n.setProperty(key, NewStringProperty(value))
}

// GetFirst returns the first value of the Array<T> property stored at
// key. It returns ErrPropertyMissing if key is absent,
// ErrPropertyKindMismatch if key holds a different element type, and
// ErrEmptyArray if the array holds zero elements.
func GetFirst[T PropertyValue](n *Node, key string) (T, error) {
	var zero T
	prop, ok := n.getProperty(key)
	if !ok {
		return zero, ErrPropertyMissing
	}
	tp, ok := prop.(*Property[T])
	if !ok {
		return zero, ErrPropertyKindMismatch
	}
	v, ok := tp.First()
	if !ok {
		return zero, ErrEmptyArray
	}
	return v, nil
}

// GetFirstOr returns the first value of the Array<T> property stored at
// key, or def if key is absent, holds a different element type, or is
// empty.
func GetFirstOr[T PropertyValue](n *Node, key string, def T) T {
	v, err := GetFirst[T](n, key)
	if err != nil {
		return def
	}
	return v
}

// GetFirstIntegerOr returns the first value of the integer Array<T>
// property stored at key, widened to uint64, accepting any unsigned
// storage width up to and including maxBits. It returns def if key is
// absent, holds a non-integer property, is empty, or is stored wider
// than maxBits allows.
func (n *Node) GetFirstIntegerOr(key string, def uint64, maxBits int) uint64 {
	prop, ok := n.getProperty(key)
	if !ok {
		return def
	}

	var v uint64
	var bits int
	switch p := prop.(type) {
	case *Property[byte]:
		fv, ok := p.First()
		if !ok {
			return def
		}
		v, bits = uint64(fv), 8
	case *Property[uint16]:
		fv, ok := p.First()
		if !ok {
			return def
		}
		v, bits = uint64(fv), 16
	case *Property[uint32]:
		fv, ok := p.First()
		if !ok {
			return def
		}
		v, bits = uint64(fv), 32
	case *Property[uint64]:
		fv, ok := p.First()
		if !ok {
			return def
		}
		v, bits = fv, 64
	default:
		return def
	}

	if bits > maxBits {
		return def
	}
	return v
}

// GetArray returns the values of the Array<T> property stored at key.
// It returns ErrPropertyMissing if key is absent, or
// ErrPropertyKindMismatch if key holds a different element type.
func GetArray[T PropertyValue](n *Node, key string) ([]T, error) {
	prop, ok := n.getProperty(key)
	if !ok {
		return nil, ErrPropertyMissing
	}
	tp, ok := prop.(*Property[T])
	if !ok {
		return nil, ErrPropertyKindMismatch
	}
	return tp.Values(), nil
}

// TryGetArray returns the values of the Array<T> property stored at key
// and true, or ok=false if key is absent or holds a different element
// type.
func TryGetArray[T PropertyValue](n *Node, key string) ([]T, bool) {
	v, err := GetArray[T](n, key)
	return v, err == nil
}

// AddValue always-overwrites key with a single-element Array<T>
// property. Use AddString for string-valued properties.
func AddValue[T PropertyValue](n *Node, key string, value T) {
	n.setProperty(key, NewArrayProperty(value))
}

// AddArray always-overwrites key with an Array<T> property holding
// values.
func AddArray[T PropertyValue](n *Node, key string, values []T) {
	n.setProperty(key, NewArrayProperty(values...))
}
