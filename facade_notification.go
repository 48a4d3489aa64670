package cast

// NotificationTrack is a typed view over a Node of kind
// NodeNotificationTrack: a named list of event keyframes (§4.3).
type NotificationTrack struct{ *Node }

// NewNotificationTrack constructs a new NotificationTrack node.
func NewNotificationTrack() NotificationTrack {
	return NotificationTrack{NewNode(NodeNotificationTrack)}
}

// AsNotificationTrack views an existing node as a NotificationTrack.
func AsNotificationTrack(n *Node) NotificationTrack { return NotificationTrack{n} }

func (t NotificationTrack) Name() string        { return t.GetStringOr("n", "") }
func (t NotificationTrack) SetName(name string) { t.AddString("n", name) }

// KeyFrames returns the `kb` event keyframe buffer widened to uint32
// regardless of its on-wire storage width (u8/u16/u32).
func (t NotificationTrack) KeyFrames() []uint32 {
	prop, ok := t.TryGetProperty("kb")
	if !ok {
		return nil
	}
	switch p := prop.(type) {
	case *Property[byte]:
		return widen[byte, uint32](p.Values())
	case *Property[uint16]:
		return widen[uint16, uint32](p.Values())
	case *Property[uint32]:
		return widen[uint32, uint32](p.Values())
	default:
		return nil
	}
}

// SetKeyFrames stores the event keyframe buffer as u32 values.
func (t NotificationTrack) SetKeyFrames(frames []uint32) { AddArray(t.Node, "kb", frames) }
