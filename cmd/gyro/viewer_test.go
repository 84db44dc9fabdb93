package main

import (
	"testing"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
	"github.com/taigrr/gyro/pkg/render"
)

func turnScene(t *testing.T) *models.Scene {
	t.Helper()
	tr, err := models.NewTrack(1, []float64{0, 2}, []math3d.Quat{math3d.QuatIdent(), math3d.QuatRotationZ(90)}, models.InterpolationLinear)
	if err != nil {
		t.Fatal(err)
	}
	empty, err := models.NewTrack(0, []float64{0}, []math3d.Quat{math3d.QuatIdent()}, models.InterpolationLinear)
	if err != nil {
		t.Fatal(err)
	}
	return &models.Scene{
		Name:   "turn",
		Mesh:   models.Cube(),
		Nodes:  []models.Node{{Mesh: -1, Rotation: math3d.QuatIdent()}, {Mesh: 0, Rotation: math3d.QuatIdent()}},
		Tracks: []*models.Track{empty, tr},
	}
}

func TestPickTrack(t *testing.T) {
	scene := turnScene(t)
	if got := pickTrack(scene); got != scene.Tracks[1] {
		t.Errorf("pickTrack chose node %d, want the track on the mesh node", got.Node)
	}

	scene.Nodes[1].Mesh = -1
	if got := pickTrack(scene); got != scene.Tracks[0] {
		t.Error("without mesh nodes pickTrack should fall back to the first track")
	}

	if got := pickTrack(&models.Scene{}); got != nil {
		t.Errorf("pickTrack on an empty scene = %v", got)
	}
}

func TestViewerTrackPlayback(t *testing.T) {
	v := newViewer(turnScene(t), math3d.QuatRotationX(90), 60)

	v.step(1)
	want := math3d.QuatRotationX(90).Mul(math3d.QuatRotationZ(45))
	if got := v.orientation(); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("orientation at 1s = %v, want %v", got, want)
	}

	// Playback loops over the track duration.
	v.step(2)
	if got := v.trackRotation(); !got.ApproxEqual(math3d.QuatRotationZ(45), 1e-6) {
		t.Errorf("track at 3s = %v, want the 1s pose", got)
	}

	v.paused = true
	v.step(0.5)
	if v.clock != 3 {
		t.Errorf("paused clock advanced to %v", v.clock)
	}
}

func TestViewerResetEasesToIdentity(t *testing.T) {
	v := newViewer(&models.Scene{Mesh: models.Cube()}, math3d.QuatRotationAxis(150, math3d.V3(1, 2, 3)), 60)
	v.resetOrientation()
	if v.tween == nil {
		t.Fatal("reset did not start an ease")
	}

	for range 600 {
		v.step(1.0 / 60)
	}
	if v.tween != nil {
		t.Fatal("ease still running after 10s")
	}
	if got := v.orientation(); got != math3d.QuatIdent() {
		t.Errorf("orientation = %v, want identity", got)
	}
}

func TestViewerImpulseCancelsEase(t *testing.T) {
	v := newViewer(&models.Scene{Mesh: models.Cube()}, math3d.QuatRotationY(90), 60)
	v.resetOrientation()
	v.impulse(0, 5, 0)

	if v.tween != nil {
		t.Error("impulse left the ease running")
	}
	if !v.spinner.Moving(1) {
		t.Error("impulse did not reach the spinner")
	}
}

func TestDrawFrame(t *testing.T) {
	fb := render.NewFramebuffer(80, 40)
	camera := render.NewCamera()
	camera.SetAspectRatio(2)
	wire := render.NewWireframe(camera, fb)
	mesh := models.Cube()
	mesh.Fit(2)

	drawFrame(fb, wire, mesh, math3d.QuatRotationY(30), [3]uint8{1, 2, 3}, false)
	if fb.Count(meshColor) == 0 {
		t.Error("mesh not drawn")
	}
	if fb.Count(render.ColorRed) != 0 {
		t.Error("axes drawn with showAxis off")
	}

	drawFrame(fb, wire, mesh, math3d.QuatRotationY(30), [3]uint8{1, 2, 3}, true)
	if fb.Count(render.ColorRed) == 0 || fb.Count(axisColor) == 0 {
		t.Error("axes missing with showAxis on")
	}
}
