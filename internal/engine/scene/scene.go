// Package scene renders the water surface with OpenGL.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/engine/camera"
	"github.com/Faultbox/wavefield/internal/engine/water"
	"github.com/Faultbox/wavefield/internal/logger"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// Scene owns the GL state of the viewer. The background is cleared to a
// blend of the two sky colors.
type Scene struct {
	water *WaterRenderer

	Sky wave.GradientSky
}

// New initializes GL function pointers and builds the water renderer.
// It must run on the thread that owns the current GL context.
func New(g *water.Grid, sky wave.GradientSky) (*Scene, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	logger.Named("renderer").Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	wr, err := NewWaterRenderer(g)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	return &Scene{water: wr, Sky: sky}, nil
}

// Render clears the viewport and draws the water seen from cam.
func (s *Scene) Render(cam *camera.OrbitCamera, width, height int, t float32, p *wave.Params) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	bg := s.Sky.Horizon.Mix(s.Sky.Zenith, 0.5)
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.water.Render(WaterFrame{
		ViewProj: cam.ViewProj(float32(width) / float32(height)),
		Eye:      cam.Position(),
		Time:     t,
		Params:   p,
		Sky:      s.Sky,
	})
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (s *Scene) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Destroy releases all GL resources.
func (s *Scene) Destroy() {
	if s.water != nil {
		s.water.Destroy()
		s.water = nil
	}
}

