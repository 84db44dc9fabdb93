package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
)

func TestParseColor(t *testing.T) {
	got, err := parseColor("10,20,30")
	if err != nil || got != [3]uint8{10, 20, 30} {
		t.Errorf("parseColor = %v, %v", got, err)
	}
	if _, err := parseColor("red"); err == nil {
		t.Error("expected an error for a named color")
	}
}

func TestCheckPositive(t *testing.T) {
	for _, v := range []int{0, -30} {
		err := checkPositive("fps", v)
		if err == nil || !strings.Contains(err.Error(), "-fps") {
			t.Errorf("checkPositive(%d) = %v, want an -fps error", v, err)
		}
	}
	if err := checkPositive("fps", 60); err != nil {
		t.Errorf("checkPositive(60) = %v", err)
	}
}

func TestRunRejectsZeroFPS(t *testing.T) {
	old := *targetFPS
	*targetFPS = 0
	defer func() { *targetFPS = old }()

	if err := run(""); err == nil {
		t.Error("run with -fps 0 succeeded")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"320x160", 320, 160, false},
		{"1x1", 1, 1, false},
		{"0x10", 0, 0, true},
		{"wide", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			w, h, err := parseSize(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if w != tc.w || h != tc.h {
				t.Errorf("parseSize = %d, %d", w, h)
			}
		})
	}
}

func TestParseEuler(t *testing.T) {
	q, err := parseEuler("", "xyz")
	if err != nil || q != math3d.QuatIdent() {
		t.Errorf("empty = %v, %v", q, err)
	}

	q, err = parseEuler("10,20,30", "xyz")
	if err != nil || !q.ApproxEqual(math3d.QuatEulerDegXYZ(10, 20, 30), 1e-6) {
		t.Errorf("xyz = %v, %v", q, err)
	}
	q, err = parseEuler("10,20,30", "ZYX")
	if err != nil || !q.ApproxEqual(math3d.QuatEulerDegZYX(10, 20, 30), 1e-6) {
		t.Errorf("zyx = %v, %v", q, err)
	}

	if _, err := parseEuler("10,20,30", "yxz"); err == nil {
		t.Error("expected an error for an unknown order")
	}
	if _, err := parseEuler("10,20", "xyz"); err == nil {
		t.Error("expected an error for two angles")
	}
}

func TestLoadScene(t *testing.T) {
	scene, err := loadScene("")
	if err != nil {
		t.Fatalf("loadScene(\"\"): %v", err)
	}
	if scene.Name != "cube" || scene.Mesh.TriangleCount() != 12 {
		t.Errorf("default scene = %q with %d triangles", scene.Name, scene.Mesh.TriangleCount())
	}

	if _, err := loadScene("model.obj"); err == nil {
		t.Error("expected an error for .obj")
	}
}

func TestWriteInspect(t *testing.T) {
	tr, err := models.NewTrack(0, []float64{0, 1}, []math3d.Quat{math3d.QuatIdent(), math3d.QuatRotationX(90)}, models.InterpolationStep)
	if err != nil {
		t.Fatal(err)
	}
	scene := &models.Scene{
		Name:   "test.glb",
		Nodes:  []models.Node{{Name: "lid", Mesh: 0, Rotation: math3d.QuatIdent()}, {Mesh: -1, Rotation: math3d.QuatRotationZ(90)}},
		Tracks: []*models.Track{tr},
	}

	var buf bytes.Buffer
	if err := writeInspect(&buf, scene); err != nil {
		t.Fatalf("writeInspect: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"test.glb: 2 nodes, 1 rotation tracks",
		"[0] lid",
		"  quaternion ( 0.000E+0  0.000E+0  0.000E+0  1.000E+0)",
		"  matrix  [ 1.000E+0  0.000E+0  0.000E+0]",
		"[1] node 1",
		"  axis-angle 90.00° about (0.0000, 0.0000, 1.0000)",
		`track 0 "": node 0, STEP, 2 keys, 1.000s`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriteInspectStopsOnError(t *testing.T) {
	w := &failWriter{}
	scene := &models.Scene{Nodes: []models.Node{{Rotation: math3d.QuatIdent()}}}
	if err := writeInspect(w, scene); err == nil {
		t.Error("expected the write error")
	}
	if w.n != 1 {
		t.Errorf("%d writes after the first failure, want 1 in total", w.n)
	}
}

func TestOrientationLine(t *testing.T) {
	got := orientationLine(math3d.QuatRotationY(90))
	want := "q (0.000 0.707 0.000 0.707)  90.00° about (0.0000, 1.0000, 0.0000)"
	if got != want {
		t.Errorf("orientationLine = %q, want %q", got, want)
	}
}
