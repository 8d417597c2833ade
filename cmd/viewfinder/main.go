// viewfinder - Interactive camera framing inspector
//
// Drives the camera synchronization pipeline against an in-memory session
// and visualizes the result: the render buffer, the data window being
// cropped to, and where the camera filmback lands under the active
// conform policy.
//
// Controls:
//
//	f/c/v/h/d   - Conform policy: fit, crop, match vertically/horizontally, off
//	Arrows      - Shrink/grow the data window
//	Tab         - Cycle cameras
//	+/-         - Focal length
//	o           - Toggle perspective/orthographic
//	a           - Toggle anamorphic pixels
//	x           - Toggle a demo clipping plane
//	r           - Reset framing
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/renderloop/viewfinder/pkg/camera"
	"github.com/renderloop/viewfinder/pkg/engine"
	"github.com/renderloop/viewfinder/pkg/framing"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

var (
	gltfPath  = flag.String("gltf", "", "Load cameras from a glTF/GLB file")
	targetFPS = flag.Int("fps", 30, "Target FPS")
	logPath   = flag.String("log", "", "Append pipeline warnings to this file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "viewfinder - Interactive camera framing inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: viewfinder [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  f/c/v/h/d   - Conform policy: fit, crop, match vertically/horizontally, off\n")
		fmt.Fprintf(os.Stderr, "  Arrows      - Shrink/grow the data window\n")
		fmt.Fprintf(os.Stderr, "  Tab         - Cycle cameras\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Focal length\n")
		fmt.Fprintf(os.Stderr, "  o           - Toggle perspective/orthographic\n")
		fmt.Fprintf(os.Stderr, "  a           - Toggle anamorphic pixels\n")
		fmt.Fprintf(os.Stderr, "  x           - Toggle a demo clipping plane\n")
		fmt.Fprintf(os.Stderr, "  r           - Reset framing\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the interactive state: the cameras being inspected, the
// framing controls, and the camera context wired to a recording session.
type app struct {
	session *engine.Recorder
	camCtx  *camera.Context
	opts    engine.ParamList

	cameras []*scene.Camera
	camIdx  int

	width, height int
	inset         geom.Vec2i
	par           float64
	policy        framing.Policy
	framing       framing.Framing

	overlay overlayRect
}

func newApp(cams []*scene.Camera, width, height, fps int) *app {
	a := &app{
		session: engine.NewRecorder(),
		camCtx:  camera.New(),
		cameras: cams,
		width:   width,
		height:  height,
		par:     1,
		policy:  framing.Fit,
		overlay: newOverlayRect(fps),
	}
	a.camCtx.Begin(a.session)
	a.camCtx.SetCamera(a.activeCamera())
	a.applyFraming()
	return a
}

func (a *app) activeCamera() *scene.Camera {
	return a.cameras[a.camIdx]
}

func (a *app) gridHeight() int {
	return max(a.height-statusRows, 1)
}

// bufSize is the virtual render buffer: one pixel per cell column, two
// pixel rows per cell row, which makes buffer pixels roughly square on
// screen.
func (a *app) bufSize() geom.Vec2i {
	return geom.V2i(max(a.width, 2), max(a.gridHeight()*2, 2))
}

// applyFraming rebuilds the framing from the terminal size and the data
// window insets. The display window always spans the whole buffer; the
// insets carve the data window out of it symmetrically.
func (a *app) applyFraming() {
	buf := a.bufSize()
	a.inset.X = min(max(a.inset.X, 0), (buf.X-2)/2)
	a.inset.Y = min(max(a.inset.Y, 0), (buf.Y-2)/2)

	f := framing.FromDataWindow(geom.R2i(0, 0, buf.X, buf.Y))
	f.DataWindow = geom.R2i(a.inset.X, a.inset.Y, buf.X-a.inset.X, buf.Y-a.inset.Y)
	f.PixelAspectRatio = a.par
	a.framing = f
	a.camCtx.SetFraming(f)
}

// sync runs one round of the consumer protocol when the inputs changed.
func (a *app) sync() {
	if !a.camCtx.IsInvalid() {
		return
	}
	buf := a.bufSize()
	a.camCtx.UpdateCameraAndClipPlanes(a.session, buf)
	a.camCtx.SetOptions(&a.opts, buf)
	a.camCtx.MarkValid()
}

func (a *app) resize(w, h int) {
	a.width, a.height = w, h
	a.applyFraming()
}

func (a *app) setPolicy(p framing.Policy) {
	a.policy = p
	a.camCtx.SetWindowPolicy(p)
}

func (a *app) adjustFocal(delta float32) {
	cam := a.activeCamera()
	cam.FocalLength = min(max(cam.FocalLength+delta, 5), 300)
	a.camCtx.MarkCameraInvalid(cam)
}

func (a *app) handleKey(ev uv.KeyPressEvent) (quit bool) {
	switch {
	case ev.MatchString("escape", "q", "ctrl+c"):
		return true
	case ev.MatchString("f"):
		a.setPolicy(framing.Fit)
	case ev.MatchString("c"):
		a.setPolicy(framing.Crop)
	case ev.MatchString("v"):
		a.setPolicy(framing.MatchVertically)
	case ev.MatchString("h"):
		a.setPolicy(framing.MatchHorizontally)
	case ev.MatchString("d"):
		a.setPolicy(framing.DontConform)
	case ev.MatchString("left"):
		a.inset.X -= insetStep
		a.applyFraming()
	case ev.MatchString("right"):
		a.inset.X += insetStep
		a.applyFraming()
	case ev.MatchString("up"):
		a.inset.Y -= insetStep
		a.applyFraming()
	case ev.MatchString("down"):
		a.inset.Y += insetStep
		a.applyFraming()
	case ev.MatchString("tab"):
		a.camIdx = (a.camIdx + 1) % len(a.cameras)
		a.camCtx.SetCamera(a.activeCamera())
	case ev.MatchString("+", "="):
		a.adjustFocal(5)
	case ev.MatchString("-", "_"):
		a.adjustFocal(-5)
	case ev.MatchString("o"):
		cam := a.activeCamera()
		if cam.Projection == scene.Perspective {
			cam.Projection = scene.Orthographic
		} else {
			cam.Projection = scene.Perspective
		}
		a.camCtx.MarkCameraInvalid(cam)
	case ev.MatchString("a"):
		if a.par == 1 {
			a.par = 2
		} else {
			a.par = 1
		}
		a.applyFraming()
	case ev.MatchString("x"):
		cam := a.activeCamera()
		if len(cam.ClipPlanes) == 0 {
			cam.ClipPlanes = []geom.Vec4{geom.V4(0, 0, 1, -2)}
		} else {
			cam.ClipPlanes = nil
		}
		a.camCtx.MarkCameraInvalid(cam)
	case ev.MatchString("r"):
		a.inset = geom.Vec2i{}
		a.par = 1
		a.setPolicy(framing.Fit)
		a.applyFraming()
	}
	return false
}

// filmbackRect maps the active camera's image-plane window into render
// buffer pixels: the conformed window spans the display window, and the
// y axis flips from screen space to image space.
func (a *app) filmbackRect() ([4]float64, bool) {
	size := a.framing.DisplayWindow.Size()
	if size.X == 0 || size.Y == 0 {
		return [4]float64{}, false
	}

	window := camera.ScreenWindow(a.activeCamera())
	conformed := framing.ConformedWindow(window, a.policy, a.par*size.X/size.Y)
	cs := conformed.Size()
	if cs.X == 0 || cs.Y == 0 {
		return [4]float64{}, false
	}

	sx := size.X / cs.X
	sy := size.Y / cs.Y
	minX := a.framing.DisplayWindow.Min.X
	minY := a.framing.DisplayWindow.Min.Y
	return [4]float64{
		minX + (window.Min.X-conformed.Min.X)*sx,
		minY + (conformed.Max.Y-window.Max.Y)*sy,
		minX + (window.Max.X-conformed.Min.X)*sx,
		minY + (conformed.Max.Y-window.Min.Y)*sy,
	}, true
}

func loadCameras() ([]*scene.Camera, error) {
	if *gltfPath == "" {
		return builtinCameras(), nil
	}
	cams, err := scene.LoadCameras(*gltfPath)
	if err != nil {
		return nil, fmt.Errorf("load cameras: %w", err)
	}
	if len(cams) == 0 {
		return nil, fmt.Errorf("no cameras in %s", *gltfPath)
	}
	return cams, nil
}

// builtinCameras is the showcase set used when no file is given.
func builtinCameras() []*scene.Camera {
	wide := scene.NewCamera("/showcase/wide")
	wide.FocalLength = 18
	wide.ClippingRange = scene.ClippingRange{Near: 0.1, Far: 1000}

	portrait := scene.NewCamera("/showcase/portrait")
	portrait.FocalLength = 85
	portrait.FStop = 2.8
	portrait.FocusDistance = 3
	portrait.ClippingRange = scene.ClippingRange{Near: 0.1, Far: 1000}

	plan := scene.NewCamera("/showcase/plan")
	plan.Projection = scene.Orthographic
	plan.ClippingRange = scene.ClippingRange{Near: 0.1, Far: 1000}

	return []*scene.Camera{wide, portrait, plan}
}

func run() error {
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		camera.SetLogger(slog.New(slog.NewTextHandler(f, nil)))
	}

	cams, err := loadCameras()
	if err != nil {
		return err
	}

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	a := newApp(cams, width, height, *targetFPS)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		// Drain pending input before computing the frame. The camera
		// context is single-goroutine, so events are handled here rather
		// than concurrently.
		drained := false
		for !drained {
			select {
			case ev, ok := <-events:
				if !ok {
					cleanup()
					return nil
				}
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					term.Erase()
					term.Resize(ev.Width, ev.Height)
					a.resize(ev.Width, ev.Height)
				case uv.KeyPressEvent:
					if a.handleKey(ev) {
						cleanup()
						return nil
					}
				}
			default:
				drained = true
			}
		}

		now := time.Now()

		a.sync()
		if target, ok := a.filmbackRect(); ok {
			a.overlay.update(target)
		}

		a.Draw(term, uv.Rect(0, 0, a.width, a.height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
