package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/gyro/pkg/math3d"
	"github.com/taigrr/gyro/pkg/models"
	"github.com/taigrr/gyro/pkg/render"
)

const (
	// Spin added per second while a key is held, in degrees per frame.
	torqueStrength = 170.0
	// Spin added per cell of mouse drag, in degrees per frame.
	dragStrength = 1.7
	// Spread of the random Space impulse, in degrees per frame.
	randomImpulse = 85.0
)

func interactive(scene *models.Scene, start math3d.Quat, bg [3]uint8, fps int) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	cameraZ := 5.0
	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	camera.SetPosition(math3d.V3(0, 0, cameraZ))
	camera.LookAt(math3d.Zero3())
	wire := render.NewWireframe(camera, fb)

	view := newViewer(scene, start, fps)
	hud := NewHUD(scene.Name, scene.Mesh.TriangleCount())

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ pitch, yaw, roll float64 }{}

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height)
			fbWidth, fbHeight = termRenderer.FramebufferSize()
			fb = render.NewFramebuffer(fbWidth, fbHeight)
			wire.SetFramebuffer(fb)
			camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("q"):
				inputTorque.roll = -torqueStrength
			case ev.MatchString("e"):
				inputTorque.roll = torqueStrength
			case ev.MatchString("w", "up"):
				inputTorque.pitch = -torqueStrength
			case ev.MatchString("s", "down"):
				inputTorque.pitch = torqueStrength
			case ev.MatchString("a", "left"):
				inputTorque.yaw = -torqueStrength
			case ev.MatchString("d", "right"):
				inputTorque.yaw = torqueStrength
			case ev.MatchString("r"):
				inputTorque = struct{ pitch, yaw, roll float64 }{}
				view.resetOrientation()
			case ev.MatchString("space"):
				view.impulse(
					(rand.Float64()-0.5)*randomImpulse,
					(rand.Float64()-0.5)*randomImpulse,
					(rand.Float64()-0.5)*randomImpulse,
				)
			case ev.MatchString("x"):
				view.showAxis = !view.showAxis
			case ev.MatchString("p"):
				view.paused = !view.paused
			case ev.MatchString("+", "="):
				cameraZ = math.Max(1.5, cameraZ-0.5)
				camera.SetPosition(math3d.V3(0, 0, cameraZ))
			case ev.MatchString("-", "_"):
				cameraZ = math.Min(20, cameraZ+0.5)
				camera.SetPosition(math3d.V3(0, 0, cameraZ))
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				view.showHUD = !view.showHUD
			}

		case uv.KeyReleaseEvent:
			switch {
			case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
				inputTorque.pitch = 0
			case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
				inputTorque.yaw = 0
			case ev.MatchString("q"), ev.MatchString("e"):
				inputTorque.roll = 0
			}

		case uv.MouseClickEvent:
			mouseDown = true
			lastMouseX, lastMouseY = ev.X, ev.Y

		case uv.MouseReleaseEvent:
			mouseDown = false

		case uv.MouseMotionEvent:
			if mouseDown {
				dx := ev.X - lastMouseX
				dy := ev.Y - lastMouseY
				view.impulse(float64(dy)*dragStrength, float64(dx)*dragStrength, 0)
				lastMouseX, lastMouseY = ev.X, ev.Y
			}

		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				cameraZ = math.Max(1.5, cameraZ-0.5)
			case uv.MouseWheelDown:
				cameraZ = math.Min(20, cameraZ+0.5)
			}
			camera.SetPosition(math3d.V3(0, 0, cameraZ))
		}
	}

	// Main loop
	targetDuration := time.Second / time.Duration(fps)
	lastFrame := time.Now()
	events := term.Events()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		// Drain pending input before drawing the frame.
	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev, ok := <-events:
				if !ok {
					cleanup()
					return nil
				}
				handle(ev)
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		if inputTorque.pitch != 0 || inputTorque.yaw != 0 || inputTorque.roll != 0 {
			view.impulse(
				inputTorque.pitch*dt,
				inputTorque.yaw*dt,
				inputTorque.roll*dt,
			)
		}
		inputTorque.pitch = decayTorque(inputTorque.pitch)
		inputTorque.yaw = decayTorque(inputTorque.yaw)
		inputTorque.roll = decayTorque(inputTorque.roll)

		view.step(dt)
		q := view.orientation()

		drawFrame(fb, wire, scene.Mesh, q, bg, view.showAxis)

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, view.showHUD, q, view.track != nil && view.paused)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// decayTorque fades a held-key torque, snapping to zero once it is too
// small to matter.
func decayTorque(v float64) float64 {
	v *= 0.9
	if math.Abs(v) < 0.5 {
		return 0
	}
	return v
}
