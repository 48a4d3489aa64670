package cast

import (
	"io"

	"github.com/go-cast/cast/internal/utils"
	"github.com/go-cast/cast/internal/wire"
)

// countingReader tracks the number of bytes consumed so the decoder can
// assert each node's declared size against observed stream offsets
// (§4.5 step 5).
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func decodeFileHeader(r *countingReader) (wire.FileHeader, error) {
	h, err := wire.ReadFileHeader(r)
	if err != nil {
		return h, wrapReadErr("reading file header", err)
	}
	if h.Magic != wire.Magic {
		return h, ErrBadMagic
	}
	if h.Version > wire.CurrentVersion {
		return h, ErrUnsupportedVersion
	}
	if h.RootCount < 0 {
		return h, utils.WrapError("reading file header", ErrSizeMismatch)
	}
	return h, nil
}

// decodeNode parses one node, recursively parsing its children, per the
// algorithm in §4.5.
func decodeNode(r *countingReader) (*Node, error) {
	start := r.n

	nh, err := wire.ReadNodeHeader(r)
	if err != nil {
		return nil, wrapReadErr("reading node header", err)
	}
	if nh.PropertyCount < 0 || nh.ChildCount < 0 {
		return nil, utils.WrapError("reading node header", ErrSizeMismatch)
	}

	n := NewNodeWithHash(NodeID(nh.Identifier), nh.Hash)

	for i := int32(0); i < nh.PropertyCount; i++ {
		key, prop, err := decodeProperty(r)
		if err != nil {
			return nil, err
		}
		n.setProperty(key, prop)
	}

	for i := int32(0); i < nh.ChildCount; i++ {
		child, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}

	consumed := uint32(r.n - start)
	if consumed != nh.Size {
		return nil, ErrSizeMismatch
	}

	return n, nil
}

func decodeProperty(r *countingReader) (string, iProperty, error) {
	ph, err := wire.ReadPropertyHeader(r)
	if err != nil {
		return "", nil, wrapReadErr("reading property header", err)
	}
	if ph.ValueCount < 0 {
		return "", nil, utils.WrapError("reading property header", ErrSizeMismatch)
	}

	key, err := wire.ReadKey(r, ph.KeyLength)
	if err != nil {
		return "", nil, wrapReadErr("reading property key", err)
	}

	kind := wire.PropertyKind(ph.Identifier)
	count := int(ph.ValueCount)

	if kind == KindString {
		s, err := wire.ReadCString(r)
		if err != nil {
			return "", nil, wrapReadErr("reading string property payload", err)
		}
		return key, NewStringProperty(s), nil
	}

	elemSize := wire.PayloadSize(kind)
	if elemSize == 0 {
		return "", nil, ErrUnknownPropertyKind
	}
	if err := validatePropertyPayloadSize(count, elemSize); err != nil {
		return "", nil, err
	}

	switch kind {
	case KindByte:
		return decodeArrayProperty[byte](r, key, count, readByte)
	case KindShort:
		return decodeArrayProperty[uint16](r, key, count, readUint16)
	case KindInt32:
		return decodeArrayProperty[uint32](r, key, count, readUint32)
	case KindInt64:
		return decodeArrayProperty[uint64](r, key, count, readUint64)
	case KindFloat32:
		return decodeArrayProperty[float32](r, key, count, readFloat32)
	case KindFloat64:
		return decodeArrayProperty[float64](r, key, count, readFloat64)
	case KindVector2:
		return decodeArrayProperty[Vec2](r, key, count, readVec2)
	case KindVector3:
		return decodeArrayProperty[Vec3](r, key, count, readVec3)
	case KindVector4:
		return decodeArrayProperty[Vec4](r, key, count, readVec4)
	default:
		return "", nil, ErrUnknownPropertyKind
	}
}

// validatePropertyPayloadSize bounds an array property's declared
// value_count before it drives an allocation: value_count arrives as an
// attacker-controlled wire field (§6.3), and a corrupt or malicious
// count must fail with a structured error rather than attempt an
// unbounded make() (§4.5/§7).
func validatePropertyPayloadSize(count, elemSize int) error {
	total, err := utils.SafeMultiply(uint64(count), uint64(elemSize))
	if err != nil {
		return utils.WrapError("reading property header", err)
	}
	if err := utils.ValidateBufferSize(total, utils.MaxPropertyPayloadSize, "property payload"); err != nil {
		return utils.WrapError("reading property header", err)
	}
	return nil
}

func decodeArrayProperty[T PropertyValue](r *countingReader, key string, count int, read func(*countingReader) (T, error)) (string, iProperty, error) {
	values := make([]T, count)
	for i := 0; i < count; i++ {
		v, err := read(r)
		if err != nil {
			return "", nil, wrapReadErr("reading array property payload", err)
		}
		values[i] = v
	}
	return key, NewArrayProperty(values...), nil
}

func readByte(r *countingReader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func readUint16(r *countingReader) (uint16, error) {
	var v uint16
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readUint32(r *countingReader) (uint32, error) {
	var v uint32
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readUint64(r *countingReader) (uint64, error) {
	var v uint64
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readFloat32(r *countingReader) (float32, error) {
	var v float32
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readFloat64(r *countingReader) (float64, error) {
	var v float64
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readVec2(r *countingReader) (Vec2, error) {
	var v Vec2
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readVec3(r *countingReader) (Vec3, error) {
	var v Vec3
	err := wire.ReadStruct(r, &v)
	return v, err
}

func readVec4(r *countingReader) (Vec4, error) {
	var v Vec4
	err := wire.ReadStruct(r, &v)
	return v, err
}

func wrapReadErr(context string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return utils.WrapError(context, ErrUnexpectedEOF)
	}
	return utils.WrapError(context, err)
}
