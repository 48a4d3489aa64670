package cast

import (
	"math"

	"github.com/go-cast/cast/internal/wire"
)

// Vec2 is a 2-component little-endian float32 vector (8 bytes on wire).
type Vec2 = wire.Vec2

// Vec3 is a 3-component little-endian float32 vector (12 bytes on wire).
type Vec3 = wire.Vec3

// Vec4 is a 4-component little-endian float32 vector (16 bytes on wire).
// Quaternions (§4.7) are stored as Vec4 in XYZW order.
type Vec4 = wire.Vec4

// IdentityQuaternion is the XYZW identity rotation.
var IdentityQuaternion = Vec4{X: 0, Y: 0, Z: 0, W: 1}

func vec3Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func vec3Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// quatConjugate returns the conjugate (inverse, for unit quaternions) of
// a rotation quaternion in XYZW order.
func quatConjugate(q Vec4) Vec4 {
	return Vec4{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// quatMultiply composes two rotation quaternions (a then b, Hamilton
// product a*b) in XYZW order.
func quatMultiply(a, b Vec4) Vec4 {
	return Vec4{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// quatRotate rotates vector v by rotation quaternion q.
func quatRotate(v Vec3, q Vec4) Vec3 {
	qv := Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := quatMultiply(quatMultiply(q, qv), quatConjugate(q))
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// quatNormalize returns q scaled to unit length, or the identity
// quaternion if q is degenerate (zero length).
func quatNormalize(q Vec4) Vec4 {
	lenSq := float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if lenSq == 0 {
		return IdentityQuaternion
	}
	inv := float32(1 / math.Sqrt(lenSq))
	return Vec4{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}
