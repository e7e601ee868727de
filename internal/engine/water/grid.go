// Package water builds the displaced water surface on the CPU: the planar grid
// the surface is sampled on, per-vertex displacement, and baked image frames.
package water

import "github.com/Faultbox/wavefield/pkg/math"

// Default grid matches the long strip of water in the island scene.
const (
	DefaultWidth      = 110.0
	DefaultDepth      = 600.0
	DefaultResolution = 1024
)

// DefaultOrigin is where the island scene places its water.
var DefaultOrigin = math.Vec3{X: 20, Y: 4, Z: -120}

// Grid is a regular planar grid in the XZ plane, centered on Origin.
// It has Resolution cells along each axis and (Resolution+1)^2 vertices.
type Grid struct {
	Width      float32   // extent along X
	Depth      float32   // extent along Z
	Resolution int       // cells per side
	Origin     math.Vec3 // world position of the grid center
}

// NewGrid creates a grid. Resolutions below 1 are raised to 1.
func NewGrid(width, depth float32, resolution int, origin math.Vec3) *Grid {
	return &Grid{
		Width:      width,
		Depth:      depth,
		Resolution: max(resolution, 1),
		Origin:     origin,
	}
}

// Side returns the number of vertices along one edge.
func (g *Grid) Side() int {
	return g.Resolution + 1
}

// VertexCount returns the total number of vertices.
func (g *Grid) VertexCount() int {
	return g.Side() * g.Side()
}

// Index returns the vertex index of column i (along X) and row j (along Z).
func (g *Grid) Index(i, j int) int {
	return j*g.Side() + i
}

// Local returns the position of vertex (i, j) relative to Origin.
func (g *Grid) Local(i, j int) (x, z float32) {
	r := float32(g.Resolution)
	x = (float32(i)/r - 0.5) * g.Width
	z = (float32(j)/r - 0.5) * g.Depth
	return x, z
}

// WorldXZ returns the world-space horizontal position of vertex (i, j),
// the coordinate the wave field is evaluated at.
func (g *Grid) WorldXZ(i, j int) (x, z float32) {
	x, z = g.Local(i, j)
	return x + g.Origin.X, z + g.Origin.Z
}

// Bounds returns the world-space corners of the undisplaced grid.
func (g *Grid) Bounds() (lo, hi math.Vec3) {
	hw, hd := g.Width/2, g.Depth/2
	lo = math.Vec3{X: g.Origin.X - hw, Y: g.Origin.Y, Z: g.Origin.Z - hd}
	hi = math.Vec3{X: g.Origin.X + hw, Y: g.Origin.Y, Z: g.Origin.Z + hd}
	return lo, hi
}

// Positions returns local vertex positions as a flat xyz array with y = 0,
// ready for GPU upload. The shader adds Origin and the displacement.
func (g *Grid) Positions() []float32 {
	side := g.Side()
	out := make([]float32, 0, g.VertexCount()*3)
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			x, z := g.Local(i, j)
			out = append(out, x, 0, z)
		}
	}
	return out
}

// Indices returns two triangles per cell, wound counter-clockwise when seen
// from above so the front face points up.
func (g *Grid) Indices() []uint32 {
	out := make([]uint32, 0, g.Resolution*g.Resolution*6)
	for j := 0; j < g.Resolution; j++ {
		for i := 0; i < g.Resolution; i++ {
			a := uint32(g.Index(i, j))
			b := uint32(g.Index(i, j+1))
			c := uint32(g.Index(i+1, j))
			d := uint32(g.Index(i+1, j+1))
			out = append(out, a, b, c, c, b, d)
		}
	}
	return out
}
