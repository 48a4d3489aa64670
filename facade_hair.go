package cast

// Hair is a typed view over a Node of kind NodeHair: a named strand
// group with a material and a per-strand segment-count buffer (§4.3).
//
// §9's open question over Hair's `se` key (a dual-purpose segment-count
// buffer vs. packed particle array in the reference implementation) is
// resolved here as a plain u32 segment-count buffer: one element per
// strand, giving the number of particles/segments in that strand. A
// packed particle array is not modeled since nothing else in this
// format documents its layout.
type Hair struct{ *Node }

// NewHair constructs a new Hair node.
func NewHair() Hair { return Hair{NewNode(NodeHair)} }

// AsHair views an existing node as a Hair.
func AsHair(n *Node) Hair { return Hair{n} }

func (h Hair) Name() string             { return h.GetStringOr("n", "") }
func (h Hair) SetName(name string)      { h.AddString("n", name) }
func (h Hair) MaterialHash() uint64     { return h.GetFirstIntegerOr("m", 0, 64) }
func (h Hair) SetMaterialHash(hash uint64) { AddValue(h.Node, "m", hash) }

// SegmentCounts returns the `se` per-strand segment-count buffer.
func (h Hair) SegmentCounts() []uint32 { return GetFirstArrayOr[uint32](h.Node, "se") }

// SetSegmentCounts stores the per-strand segment-count buffer.
func (h Hair) SetSegmentCounts(counts []uint32) { AddArray(h.Node, "se", counts) }
