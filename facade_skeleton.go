package cast

// Skeleton is a typed view over a Node of kind NodeSkeleton: a container
// whose children of kind Bone describe a rig (§4.3).
type Skeleton struct{ *Node }

// NewSkeleton constructs a new, empty Skeleton node.
func NewSkeleton() Skeleton { return Skeleton{NewNode(NodeSkeleton)} }

// AsSkeleton views an existing node as a Skeleton.
func AsSkeleton(n *Node) Skeleton { return Skeleton{n} }

// Bones returns the skeleton's direct Bone children, in index order
// (§4.7's forward-kinematics helpers rely on this order: parents must
// precede children).
func (s Skeleton) Bones() []Bone {
	children := s.ChildrenOfKind(NodeBone)
	bones := make([]Bone, len(children))
	for i, c := range children {
		bones[i] = AsBone(c)
	}
	return bones
}

// AddBone constructs a new Bone, appends it as a child, and returns it.
func (s Skeleton) AddBone() Bone {
	b := NewBone()
	s.AddChild(b.Node)
	return b
}

// BoneCount returns the number of direct Bone children.
func (s Skeleton) BoneCount() int { return s.ChildCountOfKind(NodeBone) }
