package render

import (
	"math"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
)

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
	pen    int
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// SetPen sets the stroke radius in pixels. 0, the default, draws lines one
// pixel wide.
func (w *Wireframe) SetPen(r int) {
	w.pen = max(r, 0)
}

// SetFramebuffer switches the target, for example after a resize.
func (w *Wireframe) SetFramebuffer(fb *Framebuffer) {
	w.fb = fb
}

// DrawLine3D draws the part of a 3D line that lies inside the view
// frustum.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, x2, y2, ok := w.camera.ProjectLine(p1, p2, w.fb.Width, w.fb.Height)
	if !ok {
		return
	}
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), w.pen, color)
}

// DrawMesh draws every edge of mesh rotated by q about the origin.
func (w *Wireframe) DrawMesh(mesh *models.Mesh, q math3d.Quat, color Color) {
	world := make([]math3d.Vec3, len(mesh.Positions))
	for i, p := range mesh.Positions {
		q.TransformTo(p, &world[i])
	}
	for _, e := range mesh.Edges() {
		w.DrawLine3D(world[e[0]], world[e[1]], color)
	}
}

// cubeEdges are the 12 edges between the corners of Cube, indexed by bit
// pattern (bit 0 = +X, bit 1 = +Y, bit 2 = +Z).
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// DrawCube draws the outline of a cube of the given size centered on the
// origin and rotated by q.
func (w *Wireframe) DrawCube(q math3d.Quat, size float64, color Color) {
	var corners [8]math3d.Vec3
	for i := range corners {
		c := math3d.V3(-0.5, -0.5, -0.5)
		if i&1 != 0 {
			c.X = 0.5
		}
		if i&2 != 0 {
			c.Y = 0.5
		}
		if i&4 != 0 {
			c.Z = 0.5
		}
		corners[i] = q.Transform(c.Scale(size))
	}
	for _, e := range cubeEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}

// DrawAxes draws the X, Y and Z axes of the frame q, in red, green and
// blue.
func (w *Wireframe) DrawAxes(q math3d.Quat, length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, q.Transform(math3d.V3(length, 0, 0)), ColorRed)   // X axis
	w.DrawLine3D(origin, q.Transform(math3d.V3(0, length, 0)), ColorGreen) // Y axis
	w.DrawLine3D(origin, q.Transform(math3d.V3(0, 0, length)), ColorBlue)  // Z axis
}

// DrawRotationAxis draws the axis q turns about, through the origin, as a
// line of the given length with a dot at its positive end. Rotations
// under a thousandth of a degree draw nothing.
func (w *Wireframe) DrawRotationAxis(q math3d.Quat, length float64, color Color) {
	aa := q.AxisAngle()
	if math.Abs(aa.Angle) < 1e-3 {
		return
	}
	tip := aa.Axis().Scale(length / 2)
	w.DrawLine3D(tip.Negate(), tip, color)
	if x, y, _, ok := w.camera.WorldToScreen(tip, w.fb.Width, w.fb.Height); ok {
		w.fb.DrawLine(int(x), int(y), int(x), int(y), w.pen+1, color)
	}
}
