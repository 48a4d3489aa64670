package wire

import (
	"encoding/binary"
	"io"

	"github.com/go-cast/cast/internal/utils"
)

// Vec2 is a 2-component little-endian float32 vector (8 bytes on wire).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component little-endian float32 vector (12 bytes on wire).
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component little-endian float32 vector (16 bytes on wire).
// Quaternions (§4.7) are stored as Vec4 in XYZW order.
type Vec4 struct {
	X, Y, Z, W float32
}

// ReadStruct reads a fixed-width little-endian value into v using
// encoding/binary. The decoder uses it for single array elements; the
// header structs are decoded by ReadFileHeader, ReadNodeHeader and
// ReadPropertyHeader instead.
func ReadStruct(r io.Reader, v interface{}) error {
	return binary.Read(r, binary.LittleEndian, v)
}

// WriteStruct writes a fixed-width little-endian value from v.
func WriteStruct(w io.Writer, v interface{}) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// ReadFileHeader reads the 16-byte file header.
func ReadFileHeader(r io.Reader) (FileHeader, error) {
	buf := utils.GetBuffer(FileHeaderSize)
	defer utils.ReleaseBuffer(buf)

	if _, err := io.ReadFull(r, buf); err != nil {
		return FileHeader{}, err
	}

	return FileHeader{
		Magic:     binary.LittleEndian.Uint32(buf[0:4]),
		Version:   binary.LittleEndian.Uint32(buf[4:8]),
		RootCount: int32(binary.LittleEndian.Uint32(buf[8:12])),
		Reserved:  binary.LittleEndian.Uint32(buf[12:16]),
	}, nil
}

// WriteFileHeader writes the 16-byte file header.
func WriteFileHeader(w io.Writer, h FileHeader) error {
	buf := utils.GetBuffer(FileHeaderSize)
	defer utils.ReleaseBuffer(buf)

	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(h.RootCount))
	binary.LittleEndian.PutUint32(buf[12:16], h.Reserved)

	_, err := w.Write(buf)
	return err
}

// ReadNodeHeader reads the 24-byte node header.
func ReadNodeHeader(r io.Reader) (NodeHeader, error) {
	buf := utils.GetBuffer(NodeHeaderSize)
	defer utils.ReleaseBuffer(buf)

	if _, err := io.ReadFull(r, buf); err != nil {
		return NodeHeader{}, err
	}

	return NodeHeader{
		Identifier:    binary.LittleEndian.Uint32(buf[0:4]),
		Size:          binary.LittleEndian.Uint32(buf[4:8]),
		Hash:          binary.LittleEndian.Uint64(buf[8:16]),
		PropertyCount: int32(binary.LittleEndian.Uint32(buf[16:20])),
		ChildCount:    int32(binary.LittleEndian.Uint32(buf[20:24])),
	}, nil
}

// WriteNodeHeader writes the 24-byte node header.
func WriteNodeHeader(w io.Writer, h NodeHeader) error {
	buf := utils.GetBuffer(NodeHeaderSize)
	defer utils.ReleaseBuffer(buf)

	binary.LittleEndian.PutUint32(buf[0:4], h.Identifier)
	binary.LittleEndian.PutUint32(buf[4:8], h.Size)
	binary.LittleEndian.PutUint64(buf[8:16], h.Hash)
	binary.LittleEndian.PutUint32(buf[16:20], uint32(h.PropertyCount))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(h.ChildCount))

	_, err := w.Write(buf)
	return err
}

// ReadPropertyHeader reads the 8-byte fixed portion of a property header.
func ReadPropertyHeader(r io.Reader) (PropertyHeader, error) {
	buf := utils.GetBuffer(PropertyHeaderSize)
	defer utils.ReleaseBuffer(buf)

	if _, err := io.ReadFull(r, buf); err != nil {
		return PropertyHeader{}, err
	}

	return PropertyHeader{
		Identifier: binary.LittleEndian.Uint16(buf[0:2]),
		KeyLength:  binary.LittleEndian.Uint16(buf[2:4]),
		ValueCount: int32(binary.LittleEndian.Uint32(buf[4:8])),
	}, nil
}

// WritePropertyHeader writes the 8-byte fixed portion of a property header.
func WritePropertyHeader(w io.Writer, h PropertyHeader) error {
	buf := utils.GetBuffer(PropertyHeaderSize)
	defer utils.ReleaseBuffer(buf)

	binary.LittleEndian.PutUint16(buf[0:2], h.Identifier)
	binary.LittleEndian.PutUint16(buf[2:4], h.KeyLength)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.ValueCount))

	_, err := w.Write(buf)
	return err
}

// ReadKey reads a property key of the given byte length. The key carries
// no null terminator (§4.5).
func ReadKey(r io.Reader, length uint16) (string, error) {
	if length == 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteKey writes a property key with no terminator.
func WriteKey(w io.Writer, key string) error {
	_, err := io.WriteString(w, key)
	return err
}

// ReadCString reads a UTF-8 string up to and including the first 0x00
// byte; the terminator is consumed but not included in the result.
func ReadCString(r io.Reader) (string, error) {
	var b [1]byte
	buf := make([]byte, 0, 16)
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", err
		}
		if b[0] == 0x00 {
			return string(buf), nil
		}
		buf = append(buf, b[0])
	}
}

// WriteCString writes s followed by a single 0x00 terminator.
func WriteCString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := w.Write([]byte{0x00})
	return err
}

// PayloadSize returns the sizeof one on-wire element for a fixed-width
// array kind. String payload sizes are computed by the caller (they
// depend on the string's UTF-8 byte length).
func PayloadSize(kind PropertyKind) int {
	switch kind {
	case KindByte:
		return 1
	case KindShort:
		return 2
	case KindInt32, KindFloat32:
		return 4
	case KindInt64, KindFloat64:
		return 8
	case KindVector2:
		return 8
	case KindVector3:
		return 12
	case KindVector4:
		return 16
	default:
		return 0
	}
}
