package cast

// Animation is a typed view over a Node of kind NodeAnimation: a
// container for Curve/CurveModeOverride/NotificationTrack children
// (§4.3).
type Animation struct{ *Node }

// NewAnimation constructs a new Animation node with the default 30fps
// framerate and looping disabled.
func NewAnimation() Animation {
	a := Animation{NewNode(NodeAnimation)}
	a.SetFramerate(30)
	return a
}

// AsAnimation views an existing node as an Animation.
func AsAnimation(n *Node) Animation { return Animation{n} }

func (a Animation) Framerate() float32     { return GetFirstOr[float32](a.Node, "f", 30) }
func (a Animation) SetFramerate(fps float32) { AddValue(a.Node, "f", fps) }
func (a Animation) Looping() bool          { return a.GetFirstIntegerOr("b", 0, 8) != 0 }
func (a Animation) SetLooping(looping bool) { AddValue(a.Node, "b", boolToByte(looping)) }

// Curves returns the animation's direct Curve children.
func (a Animation) Curves() []Curve {
	children := a.ChildrenOfKind(NodeCurve)
	curves := make([]Curve, len(children))
	for i, c := range children {
		curves[i] = AsCurve(c)
	}
	return curves
}

// AddCurve constructs a new Curve, appends it as a child, and returns it.
func (a Animation) AddCurve() Curve {
	c := NewCurve()
	a.AddChild(c.Node)
	return c
}
