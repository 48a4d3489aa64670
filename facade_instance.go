package cast

// Instance is a typed view over a Node of kind NodeInstance: a placed
// reference to an external file with its own transform (§4.3).
type Instance struct{ *Node }

// NewInstance constructs a new Instance node.
func NewInstance() Instance { return Instance{NewNode(NodeInstance)} }

// AsInstance views an existing node as an Instance.
func AsInstance(n *Node) Instance { return Instance{n} }

func (i Instance) Name() string             { return i.GetStringOr("n", "") }
func (i Instance) SetName(name string)      { i.AddString("n", name) }
func (i Instance) ReferenceFileHash() uint64 { return i.GetFirstIntegerOr("rf", 0, 64) }
func (i Instance) SetReferenceFileHash(hash uint64) { AddValue(i.Node, "rf", hash) }
func (i Instance) Position() Vec3           { return GetFirstOr[Vec3](i.Node, "p", Vec3{}) }
func (i Instance) SetPosition(v Vec3)       { AddValue(i.Node, "p", v) }
func (i Instance) Rotation() Vec4           { return GetFirstOr[Vec4](i.Node, "r", IdentityQuaternion) }
func (i Instance) SetRotation(q Vec4)       { AddValue(i.Node, "r", q) }
func (i Instance) Scale() Vec3              { return GetFirstOr[Vec3](i.Node, "s", Vec3{X: 1, Y: 1, Z: 1}) }
func (i Instance) SetScale(v Vec3)          { AddValue(i.Node, "s", v) }
