// Package cast reads and writes the Cast binary container format: a
// hierarchical, typed, property-bearing node tree used to describe 3D
// models, skeletons, animations, materials, and related assets.
//
// The package is a faithful codec first: Load followed by Save reproduces
// the original bytes exactly (the round-trip law, §8). A generic Node and
// Property tree carries every file losslessly, including node identifiers
// and property payloads this package does not recognize; typed façades
// (Bone, Mesh, Skeleton, ...) are thin, optional views over that generic
// tree for well-known node kinds.
package cast

import "errors"

// Error kinds surfaced by the decoder, encoder, and façade getters (§7).
// Decoder/encoder failures abort the operation with no partial result;
// façade getters may return these from the strict (non-"Or") accessors.
var (
	// ErrBadMagic is returned when the file header's magic does not match.
	ErrBadMagic = errors.New("cast: bad magic")

	// ErrUnsupportedVersion is returned when the file header's version is
	// greater than the version this codec supports.
	ErrUnsupportedVersion = errors.New("cast: unsupported version")

	// ErrUnexpectedEOF is returned when the stream ends before a header,
	// key, or payload the format promised has been fully read.
	ErrUnexpectedEOF = errors.New("cast: unexpected end of stream")

	// ErrUnknownPropertyKind is returned when a property header names a
	// kind identifier outside §6.2's closed set.
	ErrUnknownPropertyKind = errors.New("cast: unknown property kind")

	// ErrSizeMismatch is returned when a node's declared size disagrees
	// with the number of bytes actually consumed while parsing it.
	ErrSizeMismatch = errors.New("cast: node size mismatch")

	// ErrPropertyMissing is returned by strict getters when the key is
	// absent from the node's property map.
	ErrPropertyMissing = errors.New("cast: property missing")

	// ErrPropertyKindMismatch is returned by strict getters when the key
	// is present but holds a different property variant than requested.
	ErrPropertyKindMismatch = errors.New("cast: property kind mismatch")

	// ErrEmptyArray is returned by "first value" getters when the backing
	// array property holds zero elements.
	ErrEmptyArray = errors.New("cast: property array is empty")

	// ErrIndexOutOfRange is returned by indexed child/value accessors
	// when the index is outside the available range.
	ErrIndexOutOfRange = errors.New("cast: index out of range")

	// ErrTypeMismatch reports a child whose node identifier does not
	// match the requested façade kind. No accessor in this package
	// returns it: the child lookups by kind report a miss with
	// ErrIndexOutOfRange or ok=false.
	ErrTypeMismatch = errors.New("cast: node type mismatch")
)
