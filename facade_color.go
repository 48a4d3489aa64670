package cast

// Color is a typed view over a Node of kind NodeColor: a named RGBA
// value in a given color space (§4.3).
type Color struct{ *Node }

// NewColor constructs a new Color node with the default "srgb" color
// space.
func NewColor() Color {
	c := Color{NewNode(NodeColor)}
	c.SetColorSpace("srgb")
	return c
}

// AsColor views an existing node as a Color.
func AsColor(n *Node) Color { return Color{n} }

func (c Color) Name() string              { return c.GetStringOr("n", "") }
func (c Color) SetName(name string)       { c.AddString("n", name) }
func (c Color) ColorSpace() string        { return c.GetStringOr("cs", "srgb") }
func (c Color) SetColorSpace(space string) { c.AddString("cs", space) }
func (c Color) RGBA() Vec4                { return GetFirstOr[Vec4](c.Node, "rgba", Vec4{}) }
func (c Color) SetRGBA(v Vec4)            { AddValue(c.Node, "rgba", v) }
