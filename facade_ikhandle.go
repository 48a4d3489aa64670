package cast

// IKHandle is a typed view over a Node of kind NodeIKHandle: an inverse
// kinematics chain described by bone-name hashes (§4.3).
type IKHandle struct{ *Node }

// NewIKHandle constructs a new IKHandle node.
func NewIKHandle() IKHandle { return IKHandle{NewNode(NodeIKHandle)} }

// AsIKHandle views an existing node as an IKHandle.
func AsIKHandle(n *Node) IKHandle { return IKHandle{n} }

func (h IKHandle) StartBoneHash() uint64          { return h.GetFirstIntegerOr("sb", 0, 64) }
func (h IKHandle) SetStartBoneHash(hash uint64)   { AddValue(h.Node, "sb", hash) }
func (h IKHandle) EndBoneHash() uint64            { return h.GetFirstIntegerOr("eb", 0, 64) }
func (h IKHandle) SetEndBoneHash(hash uint64)     { AddValue(h.Node, "eb", hash) }
func (h IKHandle) TargetBoneHash() uint64         { return h.GetFirstIntegerOr("tb", 0, 64) }
func (h IKHandle) SetTargetBoneHash(hash uint64)  { AddValue(h.Node, "tb", hash) }
func (h IKHandle) PoleVectorBoneHash() uint64     { return h.GetFirstIntegerOr("pv", 0, 64) }
func (h IKHandle) SetPoleVectorBoneHash(hash uint64) { AddValue(h.Node, "pv", hash) }
func (h IKHandle) PoleBoneHash() uint64           { return h.GetFirstIntegerOr("pb", 0, 64) }
func (h IKHandle) SetPoleBoneHash(hash uint64)    { AddValue(h.Node, "pb", hash) }
func (h IKHandle) TargetRotation() bool           { return h.GetFirstIntegerOr("tr", 0, 8) != 0 }
func (h IKHandle) SetTargetRotation(v bool)       { AddValue(h.Node, "tr", boolToByte(v)) }
