package cast

// Curve is a typed view over a Node of kind NodeCurve: a keyframed
// animation channel targeting a node-name/property-key pair (§4.3).
type Curve struct{ *Node }

// NewCurve constructs a new Curve node with the default "relative" mode.
func NewCurve() Curve {
	c := Curve{NewNode(NodeCurve)}
	c.SetMode("relative")
	return c
}

// AsCurve views an existing node as a Curve.
func AsCurve(n *Node) Curve { return Curve{n} }

func (c Curve) NodeName() string        { return c.GetStringOr("nn", "") }
func (c Curve) SetNodeName(name string) { c.AddString("nn", name) }
func (c Curve) KeyPropertyName() string { return c.GetStringOr("kp", "") }
func (c Curve) SetKeyPropertyName(key string) { c.AddString("kp", key) }

// KeyFrames returns the `kb` keyframe index buffer widened to uint32
// regardless of its on-wire storage width (u8/u16/u32).
func (c Curve) KeyFrames() []uint32 {
	prop, ok := c.TryGetProperty("kb")
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

// SetKeyFrames stores the keyframe index buffer as u32 values.
func (c Curve) SetKeyFrames(frames []uint32) { AddArray(c.Node, "kb", frames) }

// KeyValues returns the `kv` property unwrapped, type-erased: callers
// know the concrete element type from the curve's KeyPropertyName and
// should use GetArray[T](curve.Node, "kv") directly for a typed view.
func (c Curve) KeyValues() (iProperty, bool) { return c.TryGetProperty("kv") }

func (c Curve) Mode() string                { return c.GetStringOr("m", "relative") }
func (c Curve) SetMode(mode string)         { c.AddString("m", mode) }
func (c Curve) AdditiveWeight() float32     { return GetFirstOr[float32](c.Node, "ab", 0) }
func (c Curve) SetAdditiveWeight(w float32) { AddValue(c.Node, "ab", w) }
