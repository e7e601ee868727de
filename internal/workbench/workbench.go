// Package workbench implements the panel-driven tuning window: the water is
// rendered offscreen and shown next to an ImGui panel of sliders and color
// editors for every wave parameter.
package workbench

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/config"
	"github.com/Faultbox/wavefield/internal/engine/camera"
	"github.com/Faultbox/wavefield/internal/engine/debug"
	"github.com/Faultbox/wavefield/internal/engine/framebuffer"
	"github.com/Faultbox/wavefield/internal/engine/scene"
	"github.com/Faultbox/wavefield/internal/engine/ui"
	"github.com/Faultbox/wavefield/internal/logger"
	"github.com/Faultbox/wavefield/internal/tuning"
	"github.com/Faultbox/wavefield/pkg/wave"
)

const (
	title      = "wavefield tuner"
	panelWidth = 380
)

// Workbench is the tuning window instance.
type Workbench struct {
	cfg *config.Config

	backend *ui.Backend
	scene   *scene.Scene
	fb      *framebuffer.Framebuffer
	camera  *camera.OrbitCamera

	clock wave.Clock
	tuner *tuning.Tuner
	shots *debug.ScreenshotCapture

	capture   bool
	lastMouse imgui.Vec2
	lastFrame time.Time
	fps       float64
	frames    int
	fpsTimer  time.Time
	warning   string

	err error
	log *zap.Logger
}

// New opens the window and prepares the offscreen scene from cfg. cfg.Water
// is edited in place by the panel.
func New(cfg *config.Config) (*Workbench, error) {
	w := &Workbench{
		cfg: cfg,
		log: logger.Named("workbench"),
	}

	var err error
	w.backend, err = ui.NewBackend(title, cfg.Window.Width, cfg.Window.Height, cfg.Sky.Horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui backend: %w", err)
	}

	grid := cfg.Grid.NewGrid()
	w.scene, err = scene.New(grid, cfg.Sky)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	w.fb, err = framebuffer.New(cfg.Window.Width-panelWidth, cfg.Window.Height)
	if err != nil {
		w.scene.Destroy()
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	w.camera = camera.NewOrbitCamera()
	w.camera.FitToBounds(grid.Bounds())
	w.tuner = tuning.New(&cfg.Water)
	w.shots = debug.NewScreenshotCapture("screenshots", "wavetune")
	w.clock.Set(float64(cfg.Bake.Time))
	w.checkParams()

	w.log.Info("workbench initialized", zap.Int("resolution", grid.Resolution))
	return w, nil
}

// Run drives the ImGui loop and returns when the window closes or a frame fails.
func (w *Workbench) Run() error {
	w.lastFrame = time.Now()
	w.fpsTimer = w.lastFrame
	w.log.Info("starting render loop")
	w.backend.Run(w.frame)
	return w.err
}

func (w *Workbench) frame() {
	now := time.Now()
	dt := now.Sub(w.lastFrame)
	w.lastFrame = now
	t := w.clock.Advance(dt)

	w.frames++
	if since := now.Sub(w.fpsTimer); since >= time.Second {
		w.fps = float64(w.frames) / since.Seconds()
		w.backend.SetWindowTitle(fmt.Sprintf("%s  %.0f fps  t=%.1fs", title, w.fps, t))
		w.frames = 0
		w.fpsTimer = now
	}

	if err := w.handleKeys(); err != nil {
		w.fail(err)
		return
	}

	pos, size := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, size.Y))
	if imgui.BeginV("Water", nil, flags) {
		act, err := ui.DrawTuning(w.tuner, ui.PanelState{
			Time:    t,
			Paused:  w.clock.Paused(),
			FPS:     w.fps,
			Warning: w.warning,
		})
		if err != nil {
			imgui.End()
			w.fail(fmt.Errorf("tuning panel: %w", err))
			return
		}
		w.apply(act)
		w.checkParams()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+panelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-panelWidth, size.Y))
	if imgui.BeginV("View", nil, flags|imgui.WindowFlagsNoScrollbar) {
		w.renderView(t)
	}
	imgui.End()
}

// renderView draws the water into the framebuffer, shows it and routes mouse
// input over the image to the camera.
func (w *Workbench) renderView(t float32) {
	avail := imgui.ContentRegionAvail()
	w.fb.Resize(int(avail.X), int(avail.Y))
	w.fb.Draw(func(width, height int) {
		w.scene.Render(w.camera, width, height, t, &w.cfg.Water)
	})
	if w.capture {
		w.capture = false
		w.screenshot()
	}

	ui.Image(w.fb.Texture(), avail.X, avail.Y)
	if !imgui.IsItemHovered() {
		return
	}
	mouse := imgui.MousePos()
	if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		w.camera.HandleDrag(mouse.X-w.lastMouse.X, mouse.Y-w.lastMouse.Y)
	}
	w.lastMouse = mouse
	if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
		w.camera.HandleZoom(wheel)
	}
}

// handleKeys maps the keyboard shortcuts shared with waterview. Keys typed
// into a widget stay with the widget.
func (w *Workbench) handleKeys() error {
	if imgui.CurrentIO().WantTextInput() {
		return nil
	}
	shift := ui.IsShiftDown()
	switch {
	case ui.IsKeyPressed(imgui.KeyEscape):
		w.backend.Close()
	case ui.IsKeyPressed(imgui.KeyTab):
		if shift {
			w.tuner.Prev()
		} else {
			w.tuner.Next()
		}
	case ui.IsKeyPressed(imgui.KeyUpArrow), ui.IsKeyPressed(imgui.KeyDownArrow):
		if _, err := w.tuner.Nudge(tuning.Steps(ui.IsKeyPressed(imgui.KeyUpArrow), shift)); err != nil {
			return fmt.Errorf("tuning: %w", err)
		}
		w.log.Debug("tuned", zap.String("param", w.tuner.Status()))
	default:
		w.apply(ui.Actions{
			TogglePause: ui.IsKeyPressed(imgui.KeySpace),
			Reset:       ui.IsKeyPressed(imgui.KeyR),
			Save:        ui.IsKeyPressed(imgui.KeyS),
			Screenshot:  ui.IsKeyPressed(imgui.KeyP),
		})
	}
	return nil
}

func (w *Workbench) apply(act ui.Actions) {
	if !act.Any() {
		return
	}
	if act.TogglePause {
		paused := w.clock.Toggle()
		w.log.Info("clock", zap.Bool("paused", paused), zap.Float32("t", w.clock.Elapsed()))
	}
	if act.Reset {
		w.tuner.Reset()
		w.log.Info("parameters reset")
	}
	if act.Save {
		if err := w.cfg.Save(); err != nil {
			w.log.Error("failed to save config", zap.Error(err))
		} else {
			w.log.Info("config saved", zap.String("path", w.cfg.Path))
		}
	}
	if act.Screenshot {
		w.capture = true
	}
}

func (w *Workbench) screenshot() {
	width, height := w.fb.Size()
	name, err := w.shots.CaptureFromPixels(w.fb.ReadPixels(), width, height)
	if err != nil {
		w.log.Error("screenshot failed", zap.Error(err))
		return
	}
	w.log.Info("screenshot saved", zap.String("path", name))
}

func (w *Workbench) checkParams() {
	warning := ""
	if err := w.cfg.Water.Check(); err != nil {
		warning = err.Error()
	}
	if warning != "" && warning != w.warning {
		w.log.Warn("water parameters out of domain", zap.String("report", warning))
	}
	w.warning = warning
}

func (w *Workbench) fail(err error) {
	if w.err == nil {
		w.err = err
	}
	w.backend.Close()
}

// Close releases GL resources.
func (w *Workbench) Close() {
	w.log.Info("closing workbench")

	if w.fb != nil {
		w.fb.Destroy()
	}
	if w.scene != nil {
		w.scene.Destroy()
	}
}
