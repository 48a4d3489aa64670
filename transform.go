package cast

// RecomputeLocal derives every bone's local position/rotation from its
// current world position/rotation (§4.7). Bones must be in index order
// (parents before children, per each bone's `p` field) — this is a
// documented precondition, not validated here.
func RecomputeLocal(bones []Bone) {
	for i, b := range bones {
		parent, ok := parentOf(bones, i)
		if !ok {
			b.SetLocalPosition(b.WorldPosition())
			b.SetLocalRotation(b.WorldRotation())
			continue
		}

		parentWorldRot := parent.WorldRotation()
		parentConj := quatConjugate(parentWorldRot)

		b.SetLocalRotation(quatMultiply(parentConj, b.WorldRotation()))
		b.SetLocalPosition(quatRotate(vec3Sub(b.WorldPosition(), parent.WorldPosition()), parentConj))
	}
}

// RecomputeWorld derives every bone's world position/rotation from its
// current local position/rotation (§4.7).
//
// The documented source formula for a child's world_pos rotates the
// node's *current* world_pos field rather than its local_pos — §9's
// open question flags this as a likely bug, since a forward kinematics
// pass should only ever read the local pose on the input side. This
// implementation uses local_pos, which is the corrected behavior.
func RecomputeWorld(bones []Bone) {
	for i, b := range bones {
		parent, ok := parentOf(bones, i)
		if !ok {
			b.SetWorldPosition(b.LocalPosition())
			b.SetWorldRotation(b.LocalRotation())
			continue
		}

		parentWorldRot := parent.WorldRotation()

		b.SetWorldRotation(quatMultiply(parentWorldRot, b.LocalRotation()))
		b.SetWorldPosition(vec3Add(quatRotate(b.LocalPosition(), parentWorldRot), parent.WorldPosition()))
	}
}

// parentOf resolves bone i's parent within bones by its `p` index,
// returning ok=false for a root bone (p == NoParentBone).
func parentOf(bones []Bone, i int) (Bone, bool) {
	p := bones[i].ParentIndex()
	if p == NoParentBone || int(p) >= len(bones) {
		return Bone{}, false
	}
	return bones[p], true
}
