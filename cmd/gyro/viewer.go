package main

import (
	"math"

	"github.com/taigrr/gyro/pkg/anim"
	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
	"github.com/taigrr/gyro/pkg/render"
)

var (
	meshColor = render.RGB(0, 255, 128)
	axisColor = render.ColorOrange
)

// viewer holds the orientation state of the model: user spin, an optional
// ease back to a rest orientation and an optional animation track.
type viewer struct {
	scene   *models.Scene
	track   *models.Track
	spinner *anim.Spinner
	tween   *anim.Tween
	fps     int

	clock    float64 // Animation time in seconds
	paused   bool
	showAxis bool
	showHUD  bool
}

func newViewer(scene *models.Scene, start math3d.Quat, fps int) *viewer {
	return &viewer{
		scene:    scene,
		track:    pickTrack(scene),
		spinner:  anim.NewSpinner(fps, start),
		fps:      fps,
		showAxis: true,
		showHUD:  true,
	}
}

// pickTrack returns the first track driving a node with a mesh, else the
// first track, else nil.
func pickTrack(scene *models.Scene) *models.Track {
	for _, tr := range scene.Tracks {
		if tr.Node >= 0 && tr.Node < len(scene.Nodes) && scene.Nodes[tr.Node].Mesh >= 0 {
			return tr
		}
	}
	if len(scene.Tracks) > 0 {
		return scene.Tracks[0]
	}
	return nil
}

// step advances the viewer by one frame of dt seconds.
func (v *viewer) step(dt float64) {
	if v.tween != nil {
		v.spinner.Reset(v.tween.Update())
		if v.tween.Done() {
			v.tween = nil
		}
	} else {
		v.spinner.Update()
	}
	if v.track != nil && !v.paused {
		v.clock += dt
	}
}

// impulse spins the model, cancelling any ease in progress.
func (v *viewer) impulse(pitch, yaw, roll float64) {
	v.tween = nil
	v.spinner.ApplyImpulse(pitch, yaw, roll)
}

// resetOrientation eases the user orientation back to the identity.
func (v *viewer) resetOrientation() {
	v.spinner.Stop()
	if v.tween == nil {
		v.tween = anim.NewTween(v.fps, v.spinner.Orientation, math3d.QuatIdent())
	} else {
		v.tween.Retarget(math3d.QuatIdent())
	}
	v.clock = 0
}

// trackRotation returns the animated rotation at the current time, looping
// over the track duration.
func (v *viewer) trackRotation() math3d.Quat {
	if v.track == nil {
		return math3d.QuatIdent()
	}
	t := v.clock
	if d := v.track.Duration(); d > 0 {
		t = math.Mod(t, d)
	}
	return v.track.Sample(t)
}

// orientation is the user orientation followed, in the model frame, by the
// animated rotation.
func (v *viewer) orientation() math3d.Quat {
	return v.spinner.Orientation.Mul(v.trackRotation())
}

// drawFrame renders the mesh rotated by q.
func drawFrame(fb *render.Framebuffer, wire *render.Wireframe, mesh *models.Mesh, q math3d.Quat, bg [3]uint8, showAxis bool) {
	fb.Clear(render.RGB(bg[0], bg[1], bg[2]))
	wire.DrawMesh(mesh, q, meshColor)
	if showAxis {
		wire.DrawAxes(q, 1.4)
		wire.DrawRotationAxis(q, 3, axisColor)
	}
}
