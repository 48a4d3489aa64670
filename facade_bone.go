package cast

// NoParentBone is the sentinel `p` value meaning "this bone is a root".
const NoParentBone uint32 = 0xFFFFFFFF

// Bone is a typed view over a Node of kind NodeBone (§4.3).
type Bone struct{ *Node }

// NewBone constructs a new Bone node with default scale (1,1,1).
func NewBone() Bone {
	b := Bone{NewNode(NodeBone)}
	b.SetScale(Vec3{X: 1, Y: 1, Z: 1})
	b.SetParentIndex(NoParentBone)
	return b
}

// AsBone views an existing node as a Bone.
func AsBone(n *Node) Bone { return Bone{n} }

func (b Bone) Name() string            { return b.GetStringOr("n", "") }
func (b Bone) SetName(name string)     { b.AddString("n", name) }
func (b Bone) ParentIndex() uint32     { return uint32(b.GetFirstIntegerOr("p", uint64(NoParentBone), 32)) }
func (b Bone) SetParentIndex(p uint32) { AddValue(b.Node, "p", p) }
func (b Bone) HasParent() bool         { return b.ParentIndex() != NoParentBone }

func (b Bone) LocalPosition() Vec3        { return GetFirstOr[Vec3](b.Node, "lp", Vec3{}) }
func (b Bone) SetLocalPosition(v Vec3)    { AddValue(b.Node, "lp", v) }
func (b Bone) WorldPosition() Vec3        { return GetFirstOr[Vec3](b.Node, "wp", Vec3{}) }
func (b Bone) SetWorldPosition(v Vec3)    { AddValue(b.Node, "wp", v) }
func (b Bone) LocalRotation() Vec4        { return GetFirstOr[Vec4](b.Node, "lr", IdentityQuaternion) }
func (b Bone) SetLocalRotation(q Vec4)    { AddValue(b.Node, "lr", q) }
func (b Bone) WorldRotation() Vec4        { return GetFirstOr[Vec4](b.Node, "wr", IdentityQuaternion) }
func (b Bone) SetWorldRotation(q Vec4)    { AddValue(b.Node, "wr", q) }
func (b Bone) Scale() Vec3                { return GetFirstOr[Vec3](b.Node, "s", Vec3{X: 1, Y: 1, Z: 1}) }
func (b Bone) SetScale(v Vec3)            { AddValue(b.Node, "s", v) }
func (b Bone) SegmentScaleCompensate() bool {
	return b.GetFirstIntegerOr("ssc", 0, 8) != 0
}
func (b Bone) SetSegmentScaleCompensate(v bool) {
	AddValue(b.Node, "ssc", boolToByte(v))
}

func boolToByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
