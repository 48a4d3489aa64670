package cast

// CurveModeOverride is a typed view over a Node of kind
// NodeCurveModeOverride: a per-target override of which transform
// channels a curve's mode applies to (§4.3).
type CurveModeOverride struct{ *Node }

// NewCurveModeOverride constructs a new CurveModeOverride node.
func NewCurveModeOverride() CurveModeOverride {
	return CurveModeOverride{NewNode(NodeCurveModeOverride)}
}

// AsCurveModeOverride views an existing node as a CurveModeOverride.
func AsCurveModeOverride(n *Node) CurveModeOverride { return CurveModeOverride{n} }

func (o CurveModeOverride) NodeName() string        { return o.GetStringOr("nn", "") }
func (o CurveModeOverride) SetNodeName(name string) { o.AddString("nn", name) }
func (o CurveModeOverride) Mode() string            { return o.GetStringOr("m", "") }
func (o CurveModeOverride) SetMode(mode string)     { o.AddString("m", mode) }

func (o CurveModeOverride) OverrideTranslation() bool { return o.GetFirstIntegerOr("ot", 0, 8) != 0 }
func (o CurveModeOverride) SetOverrideTranslation(v bool) {
	AddValue(o.Node, "ot", boolToByte(v))
}
func (o CurveModeOverride) OverrideRotation() bool { return o.GetFirstIntegerOr("or", 0, 8) != 0 }
func (o CurveModeOverride) SetOverrideRotation(v bool) {
	AddValue(o.Node, "or", boolToByte(v))
}
func (o CurveModeOverride) OverrideScale() bool { return o.GetFirstIntegerOr("os", 0, 8) != 0 }
func (o CurveModeOverride) SetOverrideScale(v bool) {
	AddValue(o.Node, "os", boolToByte(v))
}
