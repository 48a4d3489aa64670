package cast

// Constraint is a typed view over a Node of kind NodeConstraint: a
// constrained-bone relationship with optional per-axis skips (§4.3).
type Constraint struct{ *Node }

// NewConstraint constructs a new Constraint node with the default
// "unknown" type.
func NewConstraint() Constraint {
	c := Constraint{NewNode(NodeConstraint)}
	c.SetType("unknown")
	return c
}

// AsConstraint views an existing node as a Constraint.
func AsConstraint(n *Node) Constraint { return Constraint{n} }

func (c Constraint) Name() string          { return c.GetStringOr("n", "") }
func (c Constraint) SetName(name string)   { c.AddString("n", name) }
func (c Constraint) Type() string          { return c.GetStringOr("ct", "unknown") }
func (c Constraint) SetType(t string)      { c.AddString("ct", t) }
func (c Constraint) ConstraintBoneHash() uint64        { return c.GetFirstIntegerOr("cb", 0, 64) }
func (c Constraint) SetConstraintBoneHash(hash uint64) { AddValue(c.Node, "cb", hash) }
func (c Constraint) TargetBoneHash() uint64            { return c.GetFirstIntegerOr("tb", 0, 64) }
func (c Constraint) SetTargetBoneHash(hash uint64)     { AddValue(c.Node, "tb", hash) }
func (c Constraint) MaintainOffset() bool              { return c.GetFirstIntegerOr("tr", 0, 8) != 0 }
func (c Constraint) SetMaintainOffset(v bool)          { AddValue(c.Node, "tr", boolToByte(v)) }
func (c Constraint) SkipX() bool                       { return c.GetFirstIntegerOr("sx", 0, 8) != 0 }
func (c Constraint) SetSkipX(v bool)                   { AddValue(c.Node, "sx", boolToByte(v)) }
func (c Constraint) SkipY() bool                       { return c.GetFirstIntegerOr("sy", 0, 8) != 0 }
func (c Constraint) SetSkipY(v bool)                   { AddValue(c.Node, "sy", boolToByte(v)) }
func (c Constraint) SkipZ() bool                       { return c.GetFirstIntegerOr("sz", 0, 8) != 0 }
func (c Constraint) SetSkipZ(v bool)                   { AddValue(c.Node, "sz", boolToByte(v)) }
