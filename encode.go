package cast

import (
	"io"

	"github.com/go-cast/cast/internal/utils"
	"github.com/go-cast/cast/internal/wire"
)

// computeSizes performs the bottom-up size pass (§4.6): every node's
// total on-wire byte span, including its own 24-byte header, is computed
// before any bytes are written, since that span is itself a header
// field (wire.NodeHeader.Size).
func computeSizes(n *Node, sizes map[*Node]uint32) (uint32, error) {
	size := uint32(wire.NodeHeaderSize)

	for _, key := range n.PropertyKeys() {
		prop, _ := n.getProperty(key)
		propSize, err := propertyWireSize(key, prop)
		if err != nil {
			return 0, err
		}
		size, err = utils.SafeAddUint32(size, propSize)
		if err != nil {
			return 0, err
		}
	}

	for _, child := range n.Children() {
		childSize, err := computeSizes(child, sizes)
		if err != nil {
			return 0, err
		}
		var err2 error
		size, err2 = utils.SafeAddUint32(size, childSize)
		if err2 != nil {
			return 0, err2
		}
	}

	sizes[n] = size
	return size, nil
}

func propertyWireSize(key string, prop iProperty) (uint32, error) {
	fixed, err := utils.SafeAddUint32(uint32(wire.PropertyHeaderSize), uint32(len(key)))
	if err != nil {
		return 0, err
	}
	return utils.SafeAddUint32(fixed, prop.DataSize())
}

// encodeDocument writes the file header followed by every root node,
// using sizes precomputed by computeSizes (§4.6's write pass).
func encodeDocument(w io.Writer, roots []*Node) error {
	sizes := make(map[*Node]uint32, len(roots))
	for _, root := range roots {
		if _, err := computeSizes(root, sizes); err != nil {
			return err
		}
	}

	fh := wire.FileHeader{
		Magic:     wire.Magic,
		Version:   wire.CurrentVersion,
		RootCount: int32(len(roots)),
		Reserved:  0,
	}
	if err := wire.WriteFileHeader(w, fh); err != nil {
		return utils.WrapError("writing file header", err)
	}

	for _, root := range roots {
		if err := encodeNode(w, root, sizes); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(w io.Writer, n *Node, sizes map[*Node]uint32) error {
	nh := wire.NodeHeader{
		Identifier:    uint32(n.Identifier()),
		Size:          sizes[n],
		Hash:          n.Hash(),
		PropertyCount: int32(n.PropertyCount()),
		ChildCount:    int32(n.ChildCount()),
	}
	if err := wire.WriteNodeHeader(w, nh); err != nil {
		return utils.WrapError("writing node header", err)
	}

	for _, key := range n.PropertyKeys() {
		prop, _ := n.getProperty(key)
		if err := encodeProperty(w, key, prop); err != nil {
			return err
		}
	}

	for _, child := range n.Children() {
		if err := encodeNode(w, child, sizes); err != nil {
			return err
		}
	}
	return nil
}

func encodeProperty(w io.Writer, key string, prop iProperty) error {
	ph := wire.PropertyHeader{
		Identifier: uint16(prop.Identifier()),
		KeyLength:  uint16(len(key)),
		ValueCount: int32(prop.ValueCount()),
	}
	if err := wire.WritePropertyHeader(w, ph); err != nil {
		return utils.WrapError("writing property header", err)
	}
	if err := wire.WriteKey(w, key); err != nil {
		return utils.WrapError("writing property key", err)
	}

	switch p := prop.(type) {
	case *Property[string]:
		v, _ := p.First()
		return utils.WrapError("writing string property payload", wire.WriteCString(w, v))
	case *Property[byte]:
		return writeArrayPayload(w, p.Values(), writeByte)
	case *Property[uint16]:
		return writeArrayPayload(w, p.Values(), writeUint16)
	case *Property[uint32]:
		return writeArrayPayload(w, p.Values(), writeUint32)
	case *Property[uint64]:
		return writeArrayPayload(w, p.Values(), writeUint64)
	case *Property[float32]:
		return writeArrayPayload(w, p.Values(), writeFloat32)
	case *Property[float64]:
		return writeArrayPayload(w, p.Values(), writeFloat64)
	case *Property[Vec2]:
		return writeArrayPayload(w, p.Values(), writeVec2)
	case *Property[Vec3]:
		return writeArrayPayload(w, p.Values(), writeVec3)
	case *Property[Vec4]:
		return writeArrayPayload(w, p.Values(), writeVec4)
	default:
		return ErrUnknownPropertyKind
	}
}

func writeArrayPayload[T any](w io.Writer, values []T, write func(io.Writer, T) error) error {
	for _, v := range values {
		if err := write(w, v); err != nil {
			return utils.WrapError("writing array property payload", err)
		}
	}
	return nil
}

func writeByte(w io.Writer, v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeUint16(w io.Writer, v uint16) error  { return wire.WriteStruct(w, v) }
func writeUint32(w io.Writer, v uint32) error  { return wire.WriteStruct(w, v) }
func writeUint64(w io.Writer, v uint64) error  { return wire.WriteStruct(w, v) }
func writeFloat32(w io.Writer, v float32) error { return wire.WriteStruct(w, v) }
func writeFloat64(w io.Writer, v float64) error { return wire.WriteStruct(w, v) }
func writeVec2(w io.Writer, v Vec2) error       { return wire.WriteStruct(w, v) }
func writeVec3(w io.Writer, v Vec3) error       { return wire.WriteStruct(w, v) }
func writeVec4(w io.Writer, v Vec4) error       { return wire.WriteStruct(w, v) }
