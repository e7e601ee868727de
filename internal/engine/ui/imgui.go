// Package ui wraps the ImGui SDL backend and draws the water tuning panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavefield/pkg/math"
)

// Backend owns the SDL window, GL context and ImGui frame loop.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend opens the window and loads GL function pointers, so GL resources
// may be created as soon as it returns.
func NewBackend(title string, width, height int, bg math.RGB) (*Backend, error) {
	be, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}
	b := &Backend{backend: be}

	b.backend.SetBgColor(imgui.NewVec4(bg.R, bg.G, bg.B, 1))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}
	return b, nil
}

// Run calls frame once per frame until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the loop to exit after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the work area of the main viewport.
func Viewport() (pos, size imgui.Vec2) {
	vp := imgui.MainViewport()
	return vp.WorkPos(), vp.WorkSize()
}

// IsKeyPressed reports a key press this frame, ignoring repeats.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// IsShiftDown reports whether either shift key is held.
func IsShiftDown() bool {
	return imgui.IsKeyDown(imgui.KeyLeftShift) || imgui.IsKeyDown(imgui.KeyRightShift)
}

// Image draws a GL texture rendered bottom-up, flipping V so it appears upright.
func Image(texture uint32, width, height float32) {
	ref := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
	imgui.ImageWithBgV(
		*ref,
		imgui.NewVec2(width, height),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0, 0, 0, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}
