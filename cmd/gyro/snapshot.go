package main

import (
	"fmt"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
	"github.com/taigrr/gyro/pkg/render"
)

// snapshot renders the scene at orientation start to a WebP file of
// width x height pixels.
func snapshot(scene *models.Scene, start math3d.Quat, bg [3]uint8, width, height, ss int, path string) error {
	ss = max(ss, 1)
	fb := render.NewFramebuffer(width*ss, height*ss)

	camera := render.NewCamera()
	camera.SetAspectRatio(float64(width) / float64(height))
	wire := render.NewWireframe(camera, fb)
	wire.SetPen(ss / 2)

	v := newViewer(scene, start, 60)
	drawFrame(fb, wire, scene.Mesh, v.orientation(), bg, true)

	if err := render.SaveWebP(fb, path, ss); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	fmt.Printf("Saved: %s (%dx%d, orientation %s)\n", path, width, height, v.orientation())
	return nil
}
