package render

import (
	"math"

	"github.com/taigrr/gyro/pkg/math3d"
)

// Camera is a perspective camera whose orientation is a quaternion. With
// the identity orientation it looks down -Z with +Y up.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation rotates camera space into world space
	Orientation math3d.Quat

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates a camera at (0, 0, 5) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 0, 5),
		Orientation: math3d.QuatIdent(),
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         100,
		viewDirty:   true,
		projDirty:   true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetOrientation sets the camera orientation.
func (c *Camera) SetOrientation(q math3d.Quat) {
	c.Orientation = q.Normalize()
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Forward returns the viewing direction in world space.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Orientation.Transform(math3d.Forward())
}

// Right returns the right direction vector.
func (c *Camera) Right() math3d.Vec3 {
	return c.Orientation.Transform(math3d.Right())
}

// Up returns the up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	return c.Orientation.Transform(math3d.Up())
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.computeViewMatrix()
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.computeProjectionMatrix()
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

func (c *Camera) computeViewMatrix() {
	// View = Rotation * Translation(-position), where Rotation undoes the
	// camera orientation.
	rot := c.Orientation.Conjugate().Mat4()
	trans := math3d.Translate(c.Position.Negate())
	c.viewMatrix = rot.Mul(trans)
}

func (c *Camera) computeProjectionMatrix() {
	c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// Orbit rotates the camera position about target by q and turns the
// camera with it.
func (c *Camera) Orbit(target math3d.Vec3, q math3d.Quat) {
	c.Position = target.Add(q.Transform(c.Position.Sub(target)))
	c.Orientation = q.Mul(c.Orientation).Normalize()
	c.viewDirty = true
}

// LookAt turns the camera so that it faces target.
func (c *Camera) LookAt(target math3d.Vec3) {
	if target.Sub(c.Position).LenSq() == 0 {
		return
	}
	c.Orientation = math3d.QuatLookAt(c.Position, target, math3d.Up(), math3d.Forward())
	c.viewDirty = true
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	// Transform to clip space
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))

	// Check if behind camera
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	// Perspective divide to NDC (-1 to 1)
	ndc := clipPos.PerspectiveDivide()

	// Check if in view frustum
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x, y = ndcToScreen(ndc, screenWidth, screenHeight)
	return x, y, ndc.Z, true
}

// ProjectLine clips the segment a-b to the view frustum and returns the
// screen coordinates of what is left. ok is false when none of it is
// visible.
func (c *Camera) ProjectLine(a, b math3d.Vec3, screenWidth, screenHeight int) (x0, y0, x1, y1 float64, ok bool) {
	vp := c.ViewProjectionMatrix()
	ca := vp.MulVec4(math3d.V4FromV3(a, 1))
	cb := vp.MulVec4(math3d.V4FromV3(b, 1))

	// Liang-Barsky in clip space against -w <= x, y, z <= w.
	t0, t1 := 0.0, 1.0
	for _, d := range [6][2]float64{
		{ca.W + ca.X, cb.W + cb.X},
		{ca.W - ca.X, cb.W - cb.X},
		{ca.W + ca.Y, cb.W + cb.Y},
		{ca.W - ca.Y, cb.W - cb.Y},
		{ca.W + ca.Z, cb.W + cb.Z},
		{ca.W - ca.Z, cb.W - cb.Z},
	} {
		da, db := d[0], d[1]
		switch {
		case da < 0 && db < 0:
			return 0, 0, 0, 0, false
		case da < 0:
			t0 = max(t0, da/(da-db))
		case db < 0:
			t1 = min(t1, da/(da-db))
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}

	x0, y0 = ndcToScreen(lerpClip(ca, cb, t0).PerspectiveDivide(), screenWidth, screenHeight)
	x1, y1 = ndcToScreen(lerpClip(ca, cb, t1).PerspectiveDivide(), screenWidth, screenHeight)
	return x0, y0, x1, y1, true
}

func lerpClip(a, b math3d.Vec4, t float64) math3d.Vec4 {
	return math3d.V4(
		a.X+(b.X-a.X)*t,
		a.Y+(b.Y-a.Y)*t,
		a.Z+(b.Z-a.Z)*t,
		a.W+(b.W-a.W)*t,
	)
}

// ndcToScreen maps NDC x and y to pixels with Y flipped.
func ndcToScreen(ndc math3d.Vec3, screenWidth, screenHeight int) (x, y float64) {
	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight)
	return x, y
}
