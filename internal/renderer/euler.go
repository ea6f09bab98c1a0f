package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// gimbalThreshold is where the pitch is treated as straight up or down.
const gimbalThreshold = 0.9999999

// Euler holds rotation angles in radians applied in YXZ order:
// yaw about Y, then pitch about X, then roll about Z.
type Euler struct {
	X float32 // pitch
	Y float32 // yaw
	Z float32 // roll
}

// SetFromQuaternion decomposes q into YXZ angles.
func (e *Euler) SetFromQuaternion(q mgl32.Quat) *Euler {
	m := q.Normalize().Mat4()

	m13, m11 := m.At(0, 2), m.At(0, 0)
	m21, m22, m23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m31, m33 := m.At(2, 0), m.At(2, 2)

	e.X = math32.Asin(-mgl32.Clamp(m23, -1, 1))
	if math32.Abs(m23) < gimbalThreshold {
		e.Y = math32.Atan2(m13, m33)
		e.Z = math32.Atan2(m21, m22)
	} else {
		e.Y = math32.Atan2(-m31, m11)
		e.Z = 0
	}
	return e
}

// Quaternion composes the angles back into a rotation.
func (e Euler) Quaternion() mgl32.Quat {
	yaw := mgl32.QuatRotate(e.Y, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(e.X, mgl32.Vec3{1, 0, 0})
	roll := mgl32.QuatRotate(e.Z, mgl32.Vec3{0, 0, 1})
	return yaw.Mul(pitch).Mul(roll)
}
