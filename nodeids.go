package cast

import "github.com/go-cast/cast/internal/wire"

// NodeID is the on-wire 32-bit node identifier tag (§6.1). Any value
// outside the known constants below is a valid, unknown identifier and
// is preserved verbatim on round-trip.
type NodeID = wire.NodeID

// Known node identifiers (§6.1), plus four extension identifiers this
// codec assigns for façades §4.3 requires but §6.1 does not enumerate
// (Color, Hair, Instance, CurveModeOverride) — see internal/wire/header.go.
const (
	NodeRoot              = wire.NodeRoot
	NodeModel             = wire.NodeModel
	NodeMesh              = wire.NodeMesh
	NodeBlendShape        = wire.NodeBlendShape
	NodeSkeleton          = wire.NodeSkeleton
	NodeBone              = wire.NodeBone
	NodeIKHandle          = wire.NodeIKHandle
	NodeConstraint        = wire.NodeConstraint
	NodeAnimation         = wire.NodeAnimation
	NodeCurve             = wire.NodeCurve
	NodeNotificationTrack = wire.NodeNotificationTrack
	NodeMaterial          = wire.NodeMaterial
	NodeFile              = wire.NodeFile
	NodeColor             = wire.NodeColor
	NodeHair              = wire.NodeHair
	NodeInstance          = wire.NodeInstance
	NodeCurveModeOverride = wire.NodeCurveModeOverride
)
