package cast

import (
	"bytes"
	"strconv"
	"testing"

	set3 "github.com/TomTonic/Set3"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, NewDocument()))
	require.Equal(t,
		[]byte{0x63, 0x61, 0x73, 0x74, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		buf.Bytes(),
	)

	doc, err := Load(&buf)
	require.NoError(t, err)
	require.Empty(t, doc.Roots)
}

func TestRoundTripSingleBone(t *testing.T) {
	root := NewNode(NodeRoot)
	skel := root.AddNewChild(NodeSkeleton)
	bone := AsBone(skel.AddNewChild(NodeBone))
	bone.SetName("root")
	bone.SetParentIndex(NoParentBone)
	bone.SetLocalPosition(Vec3{})
	bone.SetLocalRotation(IdentityQuaternion)

	doc := NewDocument()
	doc.AddRoot(root)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, loaded.Roots, 1)

	loadedSkel, ok := loaded.Roots[0].TryFirstChildOfKind(NodeSkeleton)
	require.True(t, ok)
	loadedBone, ok := loadedSkel.TryFirstChildOfKind(NodeBone)
	require.True(t, ok)

	b := AsBone(loadedBone)
	require.Equal(t, "root", b.Name())
	require.Equal(t, NoParentBone, b.ParentIndex())
	require.False(t, b.HasParent())
	require.Equal(t, IdentityQuaternion, b.LocalRotation())
	require.Equal(t, Vec3{}, b.LocalPosition())
}

func TestRoundTrip16BoneChain(t *testing.T) {
	root := NewNode(NodeRoot)
	skel := AsSkeleton(root.AddNewChild(NodeSkeleton))

	for i := 0; i < 16; i++ {
		b := skel.AddBone()
		b.SetName(boneName(i))
		if i == 0 {
			b.SetParentIndex(NoParentBone)
		} else {
			b.SetParentIndex(uint32(i - 1))
		}
		b.SetLocalPosition(Vec3{Z: float32(i)})
	}

	doc := NewDocument()
	doc.AddRoot(root)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	loadedSkel := AsSkeleton(mustFirstChildOfKind(t, loaded.Roots[0], NodeSkeleton))
	bones := loadedSkel.Bones()
	require.Len(t, bones, 16)
	require.Equal(t, Vec3{Z: 5}, bones[5].LocalPosition())
	require.False(t, bones[0].HasParent())
}

func boneName(i int) string {
	return "bone_" + strconv.Itoa(i)
}

func mustFirstChildOfKind(t *testing.T, n *Node, id NodeID) *Node {
	t.Helper()
	c, ok := n.TryFirstChildOfKind(id)
	require.True(t, ok)
	return c
}

func TestRoundTripBlendShapeTargetEnumeration(t *testing.T) {
	root := NewNode(NodeRoot)
	model := AsModel(root.AddNewChild(NodeModel))

	base := model.AddMesh()
	base.SetName("base")
	h0 := Hash("base")
	base.SetHash(h0)

	target1 := model.AddMesh()
	target1.SetName("target1")
	h1 := Hash("target1")
	target1.SetHash(h1)

	target2 := model.AddMesh()
	target2.SetName("target2")
	h2 := Hash("target2")
	target2.SetHash(h2)

	bs := AsBlendShape(root.AddNewChild(NodeBlendShape))
	bs.SetBaseMeshHash(h0)
	bs.SetTargetHashes([]uint64{h1, h2})
	bs.SetTargetWeights([]float32{0.25, 0.75})

	doc := NewDocument()
	doc.AddRoot(root)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))
	loaded, err := Load(&buf)
	require.NoError(t, err)

	loadedBS := AsBlendShape(mustFirstChildOfKind(t, loaded.Roots[0], NodeBlendShape))
	pairs := enumerateTargetShapes(loadedBS)
	require.Equal(t, []targetShapePair{{hash: h1, weight: 0.25}, {hash: h2, weight: 0.75}}, pairs)
}

type targetShapePair struct {
	hash   uint64
	weight float32
}

// enumerateTargetShapes pairs a BlendShape's target hashes with their
// weights in order (§8 scenario 4's `enumerate_target_shapes`).
func enumerateTargetShapes(bs BlendShape) []targetShapePair {
	hashes := bs.TargetHashes()
	weights := bs.TargetWeights()
	pairs := make([]targetShapePair, len(hashes))
	for i, h := range hashes {
		pairs[i] = targetShapePair{hash: h, weight: weights[i]}
	}
	return pairs
}

func TestRoundTripUnknownIdentifierPreserved(t *testing.T) {
	root := NewNode(NodeRoot)
	unknown := root.AddNewChild(NodeID(0xDEADBEEF))
	AddArray(unknown, "x", []uint32{1, 2, 3})

	doc := NewDocument()
	doc.AddRoot(root)

	var original bytes.Buffer
	require.NoError(t, Save(&original, doc))

	loaded, err := Load(bytes.NewReader(original.Bytes()))
	require.NoError(t, err)

	var roundTripped bytes.Buffer
	require.NoError(t, Save(&roundTripped, loaded))

	require.Equal(t, original.Bytes(), roundTripped.Bytes())

	loadedUnknown := mustFirstChildOfKind(t, loaded.Roots[0], NodeID(0xDEADBEEF))
	require.Equal(t, NodeID(0xDEADBEEF), loadedUnknown.Identifier())
	xs, ok := TryGetArray[uint32](loadedUnknown, "x")
	require.True(t, ok)
	require.Equal(t, []uint32{1, 2, 3}, xs)
}

func TestLoadRejectsTamperedSize(t *testing.T) {
	root := NewNode(NodeRoot)
	child := root.AddNewChild(NodeBone)
	AddArray(child, "x", []uint32{1, 2, 3, 4})

	doc := NewDocument()
	doc.AddRoot(root)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))

	tampered := buf.Bytes()[:len(buf.Bytes())-4]

	_, err := Load(bytes.NewReader(tampered))
	require.Error(t, err)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	bad := []byte{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := Load(bytes.NewReader(bad))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	bad := []byte{0x63, 0x61, 0x73, 0x74, 99, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := Load(bytes.NewReader(bad))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSizeInvariantMatchesDeclaredNodeSize(t *testing.T) {
	root := NewNode(NodeRoot)
	child := AsBone(root.AddNewChild(NodeBone))
	child.SetName("leaf")
	child.SetLocalPosition(Vec3{X: 1, Y: 2, Z: 3})

	doc := NewDocument()
	doc.AddRoot(root)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))

	_, err := Load(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err, "decoder's own size assertion is the size-invariant check")
}

func TestTreeConsistencyNoNodeVisitedTwice(t *testing.T) {
	root := NewNode(NodeRoot)
	model := root.AddNewChild(NodeModel)
	skel := model.AddNewChild(NodeSkeleton)
	for i := 0; i < 5; i++ {
		bone := skel.AddNewChild(NodeBone)
		bone.SetHash(Hash(boneName(i)))
	}
	mesh := model.AddNewChild(NodeMesh)

	visited := set3.Empty[*Node]()
	var walk func(n *Node)
	walk = func(n *Node) {
		require.False(t, visited.Contains(n), "node visited twice")
		visited.Add(n)
		if n.Parent() != nil {
			require.Contains(t, n.Parent().Children(), n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)

	// root, model, skeleton, 5 bones, mesh
	require.EqualValues(t, 9, visited.Len())
	_ = mesh
}

func TestReparentAtomicityExactlyOnceAtEnd(t *testing.T) {
	a := NewNode(NodeModel)
	b := NewNode(NodeModel)
	a.AddNewChild(NodeBone)
	x := a.AddNewChild(NodeBone)

	b.AddChild(x)

	require.NotContains(t, a.Children(), x)
	require.Equal(t, x, b.Children()[len(b.Children())-1])
	count := 0
	for _, c := range b.Children() {
		if c == x {
			count++
		}
	}
	require.Equal(t, 1, count)
}
