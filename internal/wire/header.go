// Package wire implements the fixed-width binary layout of the Cast
// container format: file/node/property headers and primitive value
// codecs. It knows nothing about the node/property tree above it — every
// function here reads or writes exactly the bytes the caller asks for.
package wire

// Magic is the 4-byte ASCII signature "cast" read little-endian as a
// uint32, per §6.3.
const Magic uint32 = 0x74736163

// CurrentVersion is the only file format version this codec writes, and
// the highest version it will load (§4.5: reject version > 1).
const CurrentVersion uint32 = 1

// FileHeaderSize is the fixed byte length of the file header.
const FileHeaderSize = 16

// NodeHeaderSize is the fixed byte length of a node header.
const NodeHeaderSize = 24

// PropertyHeaderSize is the fixed byte length of a property header,
// excluding the variable-length key that follows it.
const PropertyHeaderSize = 8

// FileHeader is the 16-byte file header described in §6.3.
type FileHeader struct {
	Magic     uint32
	Version   uint32
	RootCount int32
	Reserved  uint32
}

// NodeHeader is the 24-byte node header described in §6.3. Size is the
// total byte span of the node including this header.
type NodeHeader struct {
	Identifier    uint32
	Size          uint32
	Hash          uint64
	PropertyCount int32
	ChildCount    int32
}

// PropertyHeader is the 8-byte fixed portion of a property header,
// described in §6.3. The key bytes (KeyLength of them) follow on the wire
// but are not part of this struct, since binary.Read/Write only handle
// fixed-width fields.
type PropertyHeader struct {
	Identifier uint16
	KeyLength  uint16
	ValueCount int32
}

// PropertyKind is the on-wire property type tag from §6.2.
type PropertyKind uint16

// Known property kinds.
const (
	KindByte    PropertyKind = 0x62 // 'b' — u8
	KindShort   PropertyKind = 0x68 // 'h' — u16
	KindInt32   PropertyKind = 0x69 // 'i' — u32
	KindInt64   PropertyKind = 0x6C // 'l' — u64
	KindFloat32 PropertyKind = 0x66 // 'f' — f32
	KindFloat64 PropertyKind = 0x64 // 'd' — f64
	KindString  PropertyKind = 0x73 // 's' — UTF-8 string
	KindVector2 PropertyKind = 0x7632
	KindVector3 PropertyKind = 0x7633
	KindVector4 PropertyKind = 0x7634
)

// NodeID is the on-wire 32-bit node identifier tag from §6.1.
type NodeID uint32

// Known node identifiers. Any other uint32 value is a valid, unknown
// node identifier and is preserved verbatim (§6.1).
const (
	NodeRoot              NodeID = 0x746F6F72
	NodeModel             NodeID = 0x6C646F6D
	NodeMesh              NodeID = 0x6873656D
	NodeBlendShape        NodeID = 0x68736C62
	NodeSkeleton          NodeID = 0x6C656B73
	NodeBone              NodeID = 0x656E6F62
	NodeIKHandle          NodeID = 0x64686B69
	NodeConstraint        NodeID = 0x74736E63
	NodeAnimation         NodeID = 0x6D696E61
	NodeCurve             NodeID = 0x76727563
	NodeNotificationTrack NodeID = 0x6669746E
	NodeMaterial          NodeID = 0x6C74616D
	NodeFile              NodeID = 0x656C6966

	// The four identifiers below are not enumerated in §6.1 but back
	// façades §4.3 requires (Color, Hair, Instance, CurveModeOverride).
	// They follow the same little-endian-ASCII convention as the
	// documented thirteen; NodeInstance reuses the tag the reference
	// Cast codec assigns ("inst"), the other three are this codec's own
	// choice of tag ("colr", "hair", "mode") since no upstream value is
	// documented for them.
	NodeColor             NodeID = 0x726F6C63 // "colr"
	NodeHair              NodeID = 0x72696168 // "hair"
	NodeInstance          NodeID = 0x74736E69 // "inst"
	NodeCurveModeOverride NodeID = 0x65646F6D // "mode"
)
