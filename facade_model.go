package cast

// Model is a typed view over a Node of kind NodeModel: the top-level
// container for a mesh asset's skeleton, meshes, and materials.
//
// §4.3's façade table does not give Model its own property row — it is
// purely a container, like Skeleton, identified by its children's kinds.
type Model struct{ *Node }

// NewModel constructs a new, empty Model node.
func NewModel() Model { return Model{NewNode(NodeModel)} }

// AsModel views an existing node as a Model.
func AsModel(n *Node) Model { return Model{n} }

// Skeleton returns the model's Skeleton child, if any.
func (m Model) Skeleton() (Skeleton, bool) {
	n, ok := m.TryFirstChildOfKind(NodeSkeleton)
	if !ok {
		return Skeleton{}, false
	}
	return AsSkeleton(n), true
}

// AddSkeleton constructs a new Skeleton, appends it as a child, and
// returns it.
func (m Model) AddSkeleton() Skeleton {
	s := NewSkeleton()
	m.AddChild(s.Node)
	return s
}

// Meshes returns the model's direct Mesh children.
func (m Model) Meshes() []Mesh {
	children := m.ChildrenOfKind(NodeMesh)
	meshes := make([]Mesh, len(children))
	for i, c := range children {
		meshes[i] = AsMesh(c)
	}
	return meshes
}

// AddMesh constructs a new Mesh, appends it as a child, and returns it.
func (m Model) AddMesh() Mesh {
	mesh := NewMesh()
	m.AddChild(mesh.Node)
	return mesh
}

// Materials returns the model's direct Material children.
func (m Model) Materials() []Material {
	children := m.ChildrenOfKind(NodeMaterial)
	materials := make([]Material, len(children))
	for i, c := range children {
		materials[i] = AsMaterial(c)
	}
	return materials
}

// AddMaterial constructs a new Material, appends it as a child, and
// returns it.
func (m Model) AddMaterial() Material {
	mat := NewMaterial()
	m.AddChild(mat.Node)
	return mat
}
