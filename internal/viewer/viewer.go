// Package viewer implements the interactive water viewer: the window, the
// render loop driving the animation clock, and live parameter tuning.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/config"
	"github.com/Faultbox/wavefield/internal/engine/camera"
	"github.com/Faultbox/wavefield/internal/engine/debug"
	"github.com/Faultbox/wavefield/internal/engine/input"
	"github.com/Faultbox/wavefield/internal/engine/scene"
	"github.com/Faultbox/wavefield/internal/engine/window"
	"github.com/Faultbox/wavefield/internal/logger"
	"github.com/Faultbox/wavefield/internal/tuning"
	"github.com/Faultbox/wavefield/pkg/wave"
)

const title = "wavefield"

// Viewer is the interactive viewer instance.
type Viewer struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	camera *camera.OrbitCamera

	clock    wave.Clock
	tuner    *tuning.Tuner
	dragging bool

	shots   *debug.ScreenshotCapture
	capture bool // read back the next frame before it is presented

	width, height int
	log           *zap.Logger
}

// New opens the window and prepares the scene from cfg. cfg.Water is edited
// in place by the tuning keys.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Scene must come after the window, since the GL context must exist
	grid := cfg.Grid.NewGrid()
	v.scene, err = scene.New(grid, cfg.Sky)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	v.input = input.New()
	v.camera = camera.NewOrbitCamera()
	v.camera.FitToBounds(grid.Bounds())
	v.tuner = tuning.New(&cfg.Water)
	v.shots = debug.NewScreenshotCapture("screenshots", title)
	v.clock.Set(float64(cfg.Bake.Time))
	v.width, v.height = v.window.GetSize()

	v.log.Info("viewer initialized",
		zap.Int("resolution", grid.Resolution),
		zap.String("selected", v.tuner.Status()),
	)
	return v, nil
}

// Run starts the render loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			break
		}
		for _, ev := range v.input.Events() {
			if err := v.handle(ev); err != nil {
				return err
			}
		}

		t := v.clock.Advance(dt)
		v.scene.Render(v.camera, v.width, v.height, t, &v.cfg.Water)
		if v.capture {
			v.capture = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if since := now.Sub(fpsTimer); since >= time.Second {
			fps := float64(frameCount) / since.Seconds()
			v.window.SetTitle(fmt.Sprintf("%s  %.0f fps  t=%.1fs  %s", title, fps, t, v.tuner.Status()))
			v.log.Debug("fps", zap.Float64("fps", fps), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

func (v *Viewer) handle(ev input.Event) error {
	switch ev.Type {
	case input.EventWindowResize:
		v.width, v.height = v.window.GetSize()
	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			v.dragging = true
		}
	case input.EventMouseUp:
		if ev.Button == sdl.BUTTON_LEFT {
			v.dragging = false
		}
	case input.EventMouseMove:
		if v.dragging {
			v.camera.HandleDrag(float32(ev.DeltaX), float32(ev.DeltaY))
		}
	case input.EventMouseWheel:
		v.camera.HandleZoom(float32(ev.DeltaY))
	case input.EventKeyDown:
		return v.handleKey(ev)
	}
	return nil
}

func (v *Viewer) handleKey(ev input.Event) error {
	switch ev.Key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_TAB:
		if ev.Shift {
			v.tuner.Prev()
		} else {
			v.tuner.Next()
		}
		v.log.Info("selected", zap.String("param", v.tuner.Status()))
	case sdl.SCANCODE_UP, sdl.SCANCODE_DOWN:
		if _, err := v.tuner.Nudge(tuning.Steps(ev.Key == sdl.SCANCODE_UP, ev.Shift)); err != nil {
			return fmt.Errorf("tuning: %w", err)
		}
		v.log.Info("tuned", zap.String("param", v.tuner.Status()))
		v.checkParams()
	case sdl.SCANCODE_R:
		v.tuner.Reset()
		v.log.Info("parameters reset")
	case sdl.SCANCODE_SPACE:
		if ev.Repeat {
			return nil
		}
		paused := v.clock.Toggle()
		v.log.Info("clock", zap.Bool("paused", paused), zap.Float32("t", v.clock.Elapsed()))
	case sdl.SCANCODE_P:
		v.capture = true
	case sdl.SCANCODE_S:
		if ev.Repeat {
			return nil
		}
		if err := v.cfg.Save(); err != nil {
			v.log.Error("failed to save config", zap.Error(err))
		} else {
			v.log.Info("config saved", zap.String("path", v.cfg.Path))
		}
	}
	return nil
}

func (v *Viewer) screenshot() {
	name, err := v.shots.CaptureFromPixels(v.scene.ReadPixels(v.width, v.height), v.width, v.height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", name))
}

func (v *Viewer) checkParams() {
	if err := v.cfg.Water.Check(); err != nil {
		v.log.Warn("water parameters out of domain", zap.Error(err))
	}
}

// Close releases GL and window resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
