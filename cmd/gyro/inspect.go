package main

import (
	"fmt"
	"io"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
)

// writeInspect prints every node rotation three ways and a summary of each
// rotation track.
func writeInspect(w io.Writer, scene *models.Scene) error {
	ew := &errWriter{w: w}

	ew.printf("%s: %d nodes, %d rotation tracks\n", scene.Name, len(scene.Nodes), len(scene.Tracks))
	for i, n := range scene.Nodes {
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("node %d", i)
		}
		ew.printf("\n[%d] %s\n", i, name)
		writeRotation(ew, n.Rotation)
	}

	for i, tr := range scene.Tracks {
		ew.printf("\ntrack %d %q: node %d, %s, %d keys, %.3fs\n",
			i, tr.Name, tr.Node, tr.Interp, len(tr.Times), tr.Duration())
		ew.printf("  first %s\n  last  %s\n", tr.Values[0], tr.Values[len(tr.Values)-1])
	}
	return ew.err
}

func writeRotation(ew *errWriter, q math3d.Quat) {
	ew.printf("  quaternion %s\n", q)
	ew.printf("  axis-angle %s\n", q.AxisAngle())
	m := q.Mat3()
	for row := range 3 {
		label := "          "
		if row == 0 {
			label = "  matrix  "
		}
		ew.printf("%s[%s %s %s]\n", label,
			math3d.FormatSci(m.Get(row, 0)), math3d.FormatSci(m.Get(row, 1)), math3d.FormatSci(m.Get(row, 2)))
	}
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
