// camera.go
package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/linmath"
)

// Camera is a perspective camera whose orientation is stored as a quaternion.
// With the identity rotation it looks down -Z with +Y up.
type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Quaternion mgl32.Quat // Orientation in world space
	Up         mgl32.Vec3 // Local up, used to keep movement level
	Projection mgl32.Mat4 // Projection matrix

	// COLD DATA - Projection parameters
	Fov         float32 // Vertical field of view in degrees
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane
	AspectRatio float32 // Width over height

	Name string
}

func NewDefaultCamera(height int32, width int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 2, 10},
		Quaternion:  mgl32.QuatIdent(),
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         10000.0,
		AspectRatio: aspect(width, height),
	}
	camera.UpdateProjection()
	return &camera
}

func aspect(width, height int32) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// Resize updates the aspect ratio for a new framebuffer size.
func (c *Camera) Resize(width, height int32) {
	c.SetAspectRatio(aspect(width, height))
}

// Matrix returns the camera's world transform.
func (c *Camera) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).Mul4(c.Quaternion.Normalize().Mat4())
}

// Front returns the world-space viewing direction.
func (c *Camera) Front() mgl32.Vec3 {
	return c.Quaternion.Rotate(mgl32.Vec3{0, 0, -1})
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	inv := c.Quaternion.Normalize().Conjugate().Mat4()
	return inv.Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// LookAt turns the camera toward target without introducing roll.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	e := Euler{
		X: math32.Asin(mgl32.Clamp(dir.Y(), -1, 1)),
		Y: math32.Atan2(-dir.X(), -dir.Z()),
	}
	c.Quaternion = e.Quaternion()
}

// linmath.Mat4x4 is column-major like mgl32, so columns copy across directly.
func convertMGL32Mat4ToLinMathMat4x4(m mgl32.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

func (c *Camera) GetViewProjectionVulkan() linmath.Mat4x4 {
	return convertMGL32Mat4ToLinMathMat4x4(c.GetViewProjection())
}

func (c *Camera) GetViewMatrixVulkan() linmath.Mat4x4 {
	return convertMGL32Mat4ToLinMathMat4x4(c.GetViewMatrix())
}
