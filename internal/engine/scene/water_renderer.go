package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavefield/internal/engine/scene/shaders"
	"github.com/Faultbox/wavefield/internal/engine/shader"
	"github.com/Faultbox/wavefield/internal/engine/water"
	"github.com/Faultbox/wavefield/internal/logger"
	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// WaterFrame is the per-frame state uploaded to the water shader.
type WaterFrame struct {
	ViewProj math.Mat4
	Eye      math.Vec3
	Time     float32
	Params   *wave.Params
	Sky      wave.GradientSky
}

// WaterRenderer draws the grid displaced on the GPU.
type WaterRenderer struct {
	program *shader.Program

	// Mesh
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	model math.Mat4
	grid  *water.Grid
	log   *zap.Logger
}

// NewWaterRenderer compiles the water program and uploads the flat grid.
func NewWaterRenderer(g *water.Grid) (*WaterRenderer, error) {
	wr := &WaterRenderer{
		grid:  g,
		model: math.Translate(g.Origin),
		log:   logger.Named("renderer"),
	}

	program, err := shader.NewProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader, shaders.WaterUniforms)
	if err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	wr.program = program
	if inactive := program.Inactive(); len(inactive) > 0 {
		wr.log.Debug("inactive uniforms", zap.Strings("names", inactive))
	}

	wr.createMesh()
	return wr, nil
}

func (wr *WaterRenderer) createMesh() {
	positions := wr.grid.Positions()
	indices := wr.grid.Indices()
	wr.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &wr.vao)
	gl.BindVertexArray(wr.vao)

	gl.GenBuffers(1, &wr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, wr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &wr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, wr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	wr.log.Info("water mesh uploaded",
		zap.Int("vertices", wr.grid.VertexCount()),
		zap.Int32("indices", wr.indexCount),
	)
}

// Render draws the surface for one frame.
func (wr *WaterRenderer) Render(f WaterFrame) {
	if wr.vao == 0 || f.Params == nil {
		return
	}
	p := f.Params
	u := wr.program.Uniform

	wr.program.Use()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UniformMatrix4fv(u("uModel"), 1, false, wr.model.Ptr())
	gl.UniformMatrix4fv(u("uViewProj"), 1, false, f.ViewProj.Ptr())
	gl.Uniform1f(u("uTime"), f.Time)

	gl.Uniform1f(u("uWavesAmplitude"), p.Amplitude)
	gl.Uniform1f(u("uWavesFrequency"), p.Frequency)
	gl.Uniform1f(u("uWavesPersistence"), p.Persistence)
	gl.Uniform1f(u("uWavesLacunarity"), p.Lacunarity)
	gl.Uniform1i(u("uWavesIterations"), int32(p.Iterations))
	gl.Uniform1f(u("uWavesSpeed"), p.Speed)

	eye := f.Eye.Array()
	gl.Uniform3fv(u("uCameraPosition"), 1, &eye[0])
	uniformRGB(u("uTroughColor"), p.TroughColor)
	uniformRGB(u("uSurfaceColor"), p.SurfaceColor)
	uniformRGB(u("uPeakColor"), p.PeakColor)
	gl.Uniform1f(u("uPeakThreshold"), p.PeakThreshold)
	gl.Uniform1f(u("uPeakTransition"), p.PeakTransition)
	gl.Uniform1f(u("uTroughThreshold"), p.TroughThreshold)
	gl.Uniform1f(u("uTroughTransition"), p.TroughTransition)
	gl.Uniform1f(u("uFresnelScale"), p.FresnelScale)
	gl.Uniform1f(u("uFresnelPower"), p.FresnelPower)
	uniformRGB(u("uSkyHorizon"), f.Sky.Horizon)
	uniformRGB(u("uSkyZenith"), f.Sky.Zenith)
	gl.Uniform1f(u("uOpacity"), p.Opacity)

	gl.BindVertexArray(wr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, wr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

func uniformRGB(loc int32, c math.RGB) {
	v := c.Array()
	gl.Uniform3fv(loc, 1, &v[0])
}

// Destroy releases all resources.
func (wr *WaterRenderer) Destroy() {
	if wr.vao != 0 {
		gl.DeleteVertexArrays(1, &wr.vao)
		wr.vao = 0
	}
	if wr.vbo != 0 {
		gl.DeleteBuffers(1, &wr.vbo)
		wr.vbo = 0
	}
	if wr.ebo != 0 {
		gl.DeleteBuffers(1, &wr.ebo)
		wr.ebo = 0
	}
	if wr.program != nil {
		wr.program.Delete()
		wr.program = nil
	}
}
