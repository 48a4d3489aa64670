package cast

import "fmt"

// Mesh is a typed view over a Node of kind NodeMesh: vertex buffers and
// parallel index/weight arrays (§4.3).
type Mesh struct{ *Node }

// NewMesh constructs a new Mesh node with the default "linear" skinning
// method.
func NewMesh() Mesh {
	m := Mesh{NewNode(NodeMesh)}
	m.SetSkinningMethod("linear")
	return m
}

// AsMesh views an existing node as a Mesh.
func AsMesh(n *Node) Mesh { return Mesh{n} }

func (m Mesh) Name() string        { return m.GetStringOr("n", "") }
func (m Mesh) SetName(name string) { m.AddString("n", name) }

func (m Mesh) MaterialHash() uint64        { return m.GetFirstIntegerOr("m", 0, 64) }
func (m Mesh) SetMaterialHash(hash uint64) { AddValue(m.Node, "m", hash) }

func (m Mesh) Positions() []Vec3       { return GetFirstArrayOr[Vec3](m.Node, "vp") }
func (m Mesh) SetPositions(v []Vec3)   { AddArray(m.Node, "vp", v) }
func (m Mesh) Normals() []Vec3         { return GetFirstArrayOr[Vec3](m.Node, "vn") }
func (m Mesh) SetNormals(v []Vec3)     { AddArray(m.Node, "vn", v) }
func (m Mesh) Tangents() []Vec3        { return GetFirstArrayOr[Vec3](m.Node, "vt") }
func (m Mesh) SetTangents(v []Vec3)    { AddArray(m.Node, "vt", v) }
func (m Mesh) LegacyColors() []Vec4    { return GetFirstArrayOr[Vec4](m.Node, "vc") }
func (m Mesh) SetLegacyColors(v []Vec4) { AddArray(m.Node, "vc", v) }

func (m Mesh) WeightValues() []float32     { return GetFirstArrayOr[float32](m.Node, "wv") }
func (m Mesh) SetWeightValues(v []float32) { AddArray(m.Node, "wv", v) }

// BoneIndices returns the `wb` buffer widened to uint32 regardless of
// its on-wire storage width (u8/u16/u32), mirroring GetFirstIntegerOr's
// widening for scalars.
func (m Mesh) BoneIndices() []uint32 {
	prop, ok := m.TryGetProperty("wb")
	if !ok {
		return nil
	}
	switch p := prop.(type) {
	case *Property[byte]:
		return widen[byte, uint32](p.Values())
	case *Property[uint16]:
		return widen[uint16, uint32](p.Values())
	case *Property[uint32]:
		return widen[uint32, uint32](p.Values())
	default:
		return nil
	}
}

// FaceIndices returns the `f` buffer widened to uint32 regardless of its
// on-wire storage width.
func (m Mesh) FaceIndices() []uint32 {
	prop, ok := m.TryGetProperty("f")
	if !ok {
		return nil
	}
	switch p := prop.(type) {
	case *Property[byte]:
		return widen[byte, uint32](p.Values())
	case *Property[uint16]:
		return widen[uint16, uint32](p.Values())
	case *Property[uint32]:
		return widen[uint32, uint32](p.Values())
	default:
		return nil
	}
}

func (m Mesh) UVLayerCount() int { return int(m.GetFirstIntegerOr("ul", 0, 8)) }
func (m Mesh) SetUVLayerCount(n uint8) { AddValue(m.Node, "ul", n) }
func (m Mesh) ColorLayerCount() int { return int(m.GetFirstIntegerOr("cl", 0, 8)) }
func (m Mesh) SetColorLayerCount(n uint8) { AddValue(m.Node, "cl", n) }
func (m Mesh) MaxInfluences() int { return int(m.GetFirstIntegerOr("mi", 0, 8)) }
func (m Mesh) SetMaxInfluences(n uint8) { AddValue(m.Node, "mi", n) }

func (m Mesh) SkinningMethod() string        { return m.GetStringOr("sm", "linear") }
func (m Mesh) SetSkinningMethod(method string) { m.AddString("sm", method) }

// UVLayer returns the Nth UV layer (`u0`, `u1`, ...).
func (m Mesh) UVLayer(n int) []Vec2 { return GetFirstArrayOr[Vec2](m.Node, fmt.Sprintf("u%d", n)) }

// SetUVLayer sets the Nth UV layer.
func (m Mesh) SetUVLayer(n int, v []Vec2) { AddArray(m.Node, fmt.Sprintf("u%d", n), v) }

// ColorLayer returns the Nth color layer (`c0`, `c1`, ...).
func (m Mesh) ColorLayer(n int) []Vec4 { return GetFirstArrayOr[Vec4](m.Node, fmt.Sprintf("c%d", n)) }

// SetColorLayer sets the Nth color layer.
func (m Mesh) SetColorLayer(n int, v []Vec4) { AddArray(m.Node, fmt.Sprintf("c%d", n), v) }

// GetFirstArrayOr returns the Array<T> values stored at key, or nil if
// absent or of a different element type.
func GetFirstArrayOr[T PropertyValue](n *Node, key string) []T {
	v, ok := TryGetArray[T](n, key)
	if !ok {
		return nil
	}
	return v
}

func widen[S ~uint8 | ~uint16 | ~uint32, D ~uint32](in []S) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = D(v)
	}
	return out
}
