package cast

// BlendShape is a typed view over a Node of kind NodeBlendShape: a base
// mesh plus a list of target mesh hashes and optional per-target weights
// (§4.3).
type BlendShape struct{ *Node }

// NewBlendShape constructs a new, empty BlendShape node.
func NewBlendShape() BlendShape { return BlendShape{NewNode(NodeBlendShape)} }

// AsBlendShape views an existing node as a BlendShape.
func AsBlendShape(n *Node) BlendShape { return BlendShape{n} }

func (bs BlendShape) BaseMeshHash() uint64        { return bs.GetFirstIntegerOr("b", 0, 64) }
func (bs BlendShape) SetBaseMeshHash(hash uint64) { AddValue(bs.Node, "b", hash) }

func (bs BlendShape) TargetHashes() []uint64 { return GetFirstArrayOr[uint64](bs.Node, "t") }
func (bs BlendShape) SetTargetHashes(hashes []uint64) { AddArray(bs.Node, "t", hashes) }

// TargetWeights returns the `ts` weight array, or a slice of 1.0 values
// the length of TargetHashes if `ts` is absent (§4.3's documented
// default: "defaults to 1.0 per target").
func (bs BlendShape) TargetWeights() []float32 {
	if v, ok := TryGetArray[float32](bs.Node, "ts"); ok {
		return v
	}
	targets := bs.TargetHashes()
	weights := make([]float32, len(targets))
	for i := range weights {
		weights[i] = 1.0
	}
	return weights
}

func (bs BlendShape) SetTargetWeights(weights []float32) { AddArray(bs.Node, "ts", weights) }

// TargetCount returns the number of blend shape targets.
func (bs BlendShape) TargetCount() int { return len(bs.TargetHashes()) }
