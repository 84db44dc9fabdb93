package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/gyro/pkg/math3d"
)

// Scene is everything gyro reads from a glTF document: the combined
// triangle geometry, every node's rest rotation and the rotation tracks of
// all animations.
type Scene struct {
	Name   string
	Mesh   *Mesh
	Nodes  []Node
	Tracks []*Track
}

// Node is a glTF node reduced to its rotation.
type Node struct {
	Name     string
	Mesh     int // Index into the document meshes, -1 if none.
	Rotation math3d.Quat
}

// LoadGLB loads the triangle geometry of a glTF or GLB file.
func LoadGLB(path string) (*Mesh, error) {
	scene, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	return scene.Mesh, nil
}

// LoadScene opens a glTF or GLB file and extracts its geometry, node
// rotations and rotation animations.
func LoadScene(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	scene, err := SceneFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	scene.Name = filepath.Base(path)
	scene.Mesh.Name = scene.Name
	return scene, nil
}

// SceneFromDocument extracts a Scene from an already decoded document.
func SceneFromDocument(doc *gltf.Document) (*Scene, error) {
	scene := &Scene{Mesh: NewMesh("")}

	for _, m := range doc.Meshes {
		if err := processMesh(doc, m, scene.Mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	scene.Mesh.CalculateBounds()

	for _, n := range doc.Nodes {
		r := n.RotationOrDefault()
		node := Node{
			Name:     n.Name,
			Mesh:     -1,
			Rotation: math3d.Q(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])),
		}
		if n.Mesh != nil {
			node.Mesh = *n.Mesh
		}
		scene.Nodes = append(scene.Nodes, node)
	}

	for i, a := range doc.Animations {
		tracks, err := rotationTracks(doc, a)
		if err != nil {
			return nil, fmt.Errorf("animation %d %q: %w", i, a.Name, err)
		}
		scene.Tracks = append(scene.Tracks, tracks...)
	}

	return scene, nil
}

// rotationTracks builds a Track for every channel of a that targets a
// node's rotation. Translation, scale and weight channels are skipped.
func rotationTracks(doc *gltf.Document, a *gltf.Animation) ([]*Track, error) {
	var tracks []*Track
	for _, ch := range a.Channels {
		if ch.Target.Path != gltf.TRSRotation || ch.Target.Node == nil {
			continue
		}
		if ch.Sampler < 0 || ch.Sampler >= len(a.Samplers) {
			return nil, fmt.Errorf("channel sampler %d out of range", ch.Sampler)
		}
		s := a.Samplers[ch.Sampler]

		times, err := readScalarAccessor(doc, s.Input)
		if err != nil {
			return nil, fmt.Errorf("read key times: %w", err)
		}
		values, err := readQuatAccessor(doc, s.Output)
		if err != nil {
			return nil, fmt.Errorf("read key rotations: %w", err)
		}

		interp := interpolationFrom(s.Interpolation)
		if interp == InterpolationCubicSpline {
			values, err = cubicSplineValues(values, len(times))
			if err != nil {
				return nil, err
			}
		}

		track, err := NewTrack(*ch.Target.Node, times, values, interp)
		if err != nil {
			return nil, err
		}
		track.Name = a.Name
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func interpolationFrom(i gltf.Interpolation) Interpolation {
	switch i {
	case gltf.InterpolationStep:
		return InterpolationStep
	case gltf.InterpolationCubicSpline:
		return InterpolationCubicSpline
	default:
		return InterpolationLinear
	}
}

// cubicSplineValues keeps the value of each (in-tangent, value,
// out-tangent) triple.
func cubicSplineValues(raw []math3d.Quat, keys int) ([]math3d.Quat, error) {
	if len(raw) != keys*3 {
		return nil, fmt.Errorf("cubic spline output has %d values for %d keys", len(raw), keys)
	}
	values := make([]math3d.Quat, keys)
	for i := range values {
		values[i] = raw[i*3+1]
	}
	return values, nil
}

// processMesh extracts geometry from a glTF mesh.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+1],
					baseVertex + indices[i+2],
				})
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + i,
					baseVertex + i + 1,
					baseVertex + i + 2,
				})
			}
		}
	}

	return nil
}

// accessorBytes returns the buffer backing accessor idx, the offset of
// its first element and the distance between elements.
func accessorBytes(doc *gltf.Document, idx int, want gltf.AccessorType, elemSize int) (*gltf.Accessor, []byte, int, int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d out of range", idx)
	}
	accessor := doc.Accessors[idx]
	if accessor.Type != want {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d: expected %v, got %v", idx, want, accessor.Type)
	}
	if accessor.BufferView == nil {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d has no buffer view", idx)
	}

	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d: buffer view %d out of range", idx, *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d: buffer %d out of range", idx, bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if len(buffer.Data) == 0 {
		return nil, nil, 0, 0, fmt.Errorf("buffer %d has no data (uri %q)", bufferView.Buffer, buffer.URI)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if accessor.Count > 0 && start+(accessor.Count-1)*stride+elemSize > len(buffer.Data) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d overruns buffer %d", idx, bufferView.Buffer)
	}
	return accessor, buffer.Data, start, stride, nil
}

// readFloats reads n float32 components per element.
func readFloats(doc *gltf.Document, idx int, typ gltf.AccessorType, n int) ([][4]float64, error) {
	accessor, data, start, stride, err := accessorBytes(doc, idx, typ, n*4)
	if err != nil {
		return nil, err
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("accessor %d: expected float components, got %v", idx, accessor.ComponentType)
	}

	result := make([][4]float64, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		for j := range n {
			result[i][j] = float64(readFloat32(data[offset+j*4:]))
		}
	}
	return result, nil
}

// readScalarAccessor reads SCALAR float data, such as key times.
func readScalarAccessor(doc *gltf.Document, idx int) ([]float64, error) {
	raw, err := readFloats(doc, idx, gltf.AccessorScalar, 1)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(raw))
	for i, r := range raw {
		result[i] = r[0]
	}
	return result, nil
}

// readVec3Accessor reads Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	raw, err := readFloats(doc, idx, gltf.AccessorVec3, 3)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vec3, len(raw))
	for i, r := range raw {
		result[i] = math3d.V3(r[0], r[1], r[2])
	}
	return result, nil
}

// readQuatAccessor reads VEC4 float data as (x, y, z, w) quaternions.
func readQuatAccessor(doc *gltf.Document, idx int) ([]math3d.Quat, error) {
	raw, err := readFloats(doc, idx, gltf.AccessorVec4, 4)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Quat, len(raw))
	for i, r := range raw {
		result[i] = math3d.Q(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))
	}
	return result, nil
}

// readIndices reads index data from a glTF accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}

	var size int
	switch doc.Accessors[idx].ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", doc.Accessors[idx].ComponentType)
	}

	accessor, data, start, stride, err := accessorBytes(doc, idx, gltf.AccessorScalar, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
