// Package models loads geometry and rotation data from glTF files.
package models

import (
	"github.com/taigrr/gyro/pkg/math3d"
)

// Mesh is a triangle mesh reduced to what a wireframe needs.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     [][3]int // Indices into Positions

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Positions {
		m.Positions[i] = mat.MulVec3(m.Positions[i])
	}
	m.CalculateBounds()
}

// Rotate rotates all vertices about the origin.
func (m *Mesh) Rotate(q math3d.Quat) {
	for i := range m.Positions {
		q.TransformTo(m.Positions[i], &m.Positions[i])
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it so its largest
// dimension is size.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	ext := m.Size()
	maxDim := max(ext.X, ext.Y, ext.Z)
	if maxDim <= 0 {
		return
	}
	s := size / maxDim
	m.Transform(math3d.Scale(math3d.V3(s, s, s)).Mul(math3d.Translate(m.Center().Negate())))
}

// Edges returns every distinct triangle edge once, lower index first.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(m.Faces)*3/2)
	edges := make([][2]int, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for k := range 3 {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Positions: make([]math3d.Vec3, len(m.Positions)),
		Faces:     make([][3]int, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Faces, m.Faces)
	return clone
}

// Cube returns a unit cube centered on the origin, used when no model is
// given.
func Cube() *Mesh {
	m := NewMesh("cube")
	for i := range 8 {
		x, y, z := -0.5, -0.5, -0.5
		if i&1 != 0 {
			x = 0.5
		}
		if i&2 != 0 {
			y = 0.5
		}
		if i&4 != 0 {
			z = 0.5
		}
		m.Positions = append(m.Positions, math3d.V3(x, y, z))
	}
	m.Faces = [][3]int{
		{0, 2, 1}, {1, 2, 3}, // back
		{4, 5, 6}, {5, 7, 6}, // front
		{0, 1, 4}, {1, 5, 4}, // bottom
		{2, 6, 3}, {3, 6, 7}, // top
		{0, 4, 2}, {2, 4, 6}, // left
		{1, 3, 5}, {3, 7, 5}, // right
	}
	m.CalculateBounds()
	return m
}
