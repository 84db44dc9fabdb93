// gyro - Terminal Quaternion Playground
// Spin a model or a cube in your terminal and watch its orientation as a
// quaternion, an axis-angle and a rotation matrix.
//
// Controls:
//
//	Mouse drag  - Spin model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Ease back to identity
//	X           - Toggle rotation axis
//	P           - Pause/resume the model's animation
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
)

var (
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	bgColor      = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	snapshotPath = flag.String("snapshot", "", "Render one frame to this WebP file and exit")
	snapshotSize = flag.String("size", "320x160", "Snapshot size in pixels (WxH)")
	supersample  = flag.Int("supersample", 2, "Snapshot supersampling factor")
	inspect      = flag.Bool("inspect", false, "Print node rotations and animation tracks and exit")
	eulerAngles  = flag.String("euler", "", "Initial orientation as Euler angles in degrees (X,Y,Z)")
	eulerOrder   = flag.String("order", "xyz", "Euler order for -euler: xyz or zyx")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gyro - Terminal Quaternion Playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gyro [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a unit cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Spin model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Ease back to identity\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle rotation axis\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause/resume animation\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	if err := checkPositive("fps", *targetFPS); err != nil {
		return err
	}
	if err := checkPositive("supersample", *supersample); err != nil {
		return err
	}
	bg, err := parseColor(*bgColor)
	if err != nil {
		return err
	}
	start, err := parseEuler(*eulerAngles, *eulerOrder)
	if err != nil {
		return err
	}

	scene, err := loadScene(modelPath)
	if err != nil {
		return err
	}

	if *inspect {
		return writeInspect(os.Stdout, scene)
	}

	scene.Mesh.Fit(2)

	if *snapshotPath != "" {
		w, h, err := parseSize(*snapshotSize)
		if err != nil {
			return err
		}
		return snapshot(scene, start, bg, w, h, *supersample, *snapshotPath)
	}

	return interactive(scene, start, bg, *targetFPS)
}

// loadScene loads modelPath, or a cube scene when it is empty.
func loadScene(modelPath string) (*models.Scene, error) {
	if modelPath == "" {
		return &models.Scene{Name: "cube", Mesh: models.Cube()}, nil
	}

	ext := strings.ToLower(filepath.Ext(modelPath))
	switch ext {
	case ".glb", ".gltf":
		scene, err := models.LoadScene(modelPath)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		if scene.Mesh.TriangleCount() == 0 {
			scene.Mesh = models.Cube()
		}
		return scene, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

// parseColor parses "R,G,B".
func parseColor(s string) ([3]uint8, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return [3]uint8{}, fmt.Errorf("parse -bg %q: %w", s, err)
	}
	return [3]uint8{r, g, b}, nil
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("parse -size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("parse -size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

// checkPositive rejects a non-positive integer flag value.
func checkPositive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("invalid -%s %d: must be positive", name, v)
	}
	return nil
}

// parseEuler parses "X,Y,Z" degrees into an orientation. An empty string is
// the identity.
func parseEuler(s, order string) (math3d.Quat, error) {
	if s == "" {
		return math3d.QuatIdent(), nil
	}
	var x, y, z float64
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &x, &y, &z); err != nil {
		return math3d.Quat{}, fmt.Errorf("parse -euler %q: %w", s, err)
	}
	switch strings.ToLower(order) {
	case "xyz":
		return math3d.QuatEulerDegXYZ(x, y, z), nil
	case "zyx":
		return math3d.QuatEulerDegZYX(x, y, z), nil
	default:
		return math3d.Quat{}, fmt.Errorf("unknown Euler order %q (use xyz or zyx)", order)
	}
}
