package cast

// Material slot keys (§4.3): one u64 texture hash per slot.
const (
	MaterialSlotAlbedo    = "albedo"
	MaterialSlotDiffuse   = "diffuse"
	MaterialSlotNormal    = "normal"
	MaterialSlotSpecular  = "specular"
	MaterialSlotEmissive  = "emissive"
	MaterialSlotGloss     = "gloss"
	MaterialSlotRoughness = "roughness"
	MaterialSlotAO        = "ao"
	MaterialSlotCavity    = "cavity"
	MaterialSlotAniso     = "aniso"
)

// Material is a typed view over a Node of kind NodeMaterial: a named
// type plus an open set of texture-hash slots (§4.3).
type Material struct{ *Node }

// NewMaterial constructs a new, empty Material node.
func NewMaterial() Material { return Material{NewNode(NodeMaterial)} }

// AsMaterial views an existing node as a Material.
func AsMaterial(n *Node) Material { return Material{n} }

func (m Material) Name() string        { return m.GetStringOr("n", "") }
func (m Material) SetName(name string) { m.AddString("n", name) }
func (m Material) Type() string        { return m.GetStringOr("t", "") }
func (m Material) SetType(t string)    { m.AddString("t", t) }

// Slot returns the texture hash stored under the named slot (one of the
// MaterialSlot* constants, or an "extraN" key for additional slots), or
// 0 if unset.
func (m Material) Slot(slot string) uint64 { return m.GetFirstIntegerOr(slot, 0, 64) }

// SetSlot sets the texture hash for the named slot.
func (m Material) SetSlot(slot string, hash uint64) { AddValue(m.Node, slot, hash) }
