package wave

import (
	gomath "math"

	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/noise"
)

// normalEpsilon is the finite-difference step as a fraction of the base
// wavelength 1/Frequency.
const normalEpsilon = 0.001

// Field evaluates the water surface. The zero value uses noise.Simplex and
// DefaultSky, which is what the GPU shader computes.
type Field struct {
	Noise noise.Source
	Sky   Sky
}

// Sample is the full result of evaluating one surface point.
type Sample struct {
	Raw    float32 // octave sum before amplitude scaling
	Height float32 // Raw * Amplitude
	Normal math.Vec3
	Color  math.RGBA
}

func (f Field) source() noise.Source {
	if f.Noise == nil {
		return noise.Simplex
	}
	return f.Noise
}

func (f Field) sky() Sky {
	if f.Sky == nil {
		return DefaultSky
	}
	return f.Sky
}

// Raw returns the signed octave sum at (x, z) and time t, before amplitude scaling.
func (f Field) Raw(x, z, t float32, p *Params) float32 {
	return float32(f.raw(f.source(), float64(x), float64(z), float64(t), p))
}

// Height returns the vertical displacement of the surface at (x, z) and time t.
func (f Field) Height(x, z, t float32, p *Params) float32 {
	return float32(f.height(f.source(), float64(x), float64(z), float64(t), p))
}

// Normal returns the unit surface normal at (x, z) and time t.
func (f Field) Normal(x, z, t float32, p *Params) math.Vec3 {
	src := f.source()
	fx, fz, ft := float64(x), float64(z), float64(t)
	return f.normal(src, fx, fz, ft, f.height(src, fx, fz, ft, p), p)
}

// Color returns the shaded RGBA color at (x, z) and time t. viewDir is the unit
// vector from the surface point toward the viewer.
func (f Field) Color(x, z, t float32, viewDir math.Vec3, p *Params) math.RGBA {
	return f.Sample(x, z, t, viewDir, p).Color
}

// Sample evaluates height, normal and color in one pass.
func (f Field) Sample(x, z, t float32, viewDir math.Vec3, p *Params) Sample {
	src := f.source()
	fx, fz, ft := float64(x), float64(z), float64(t)

	raw := f.raw(src, fx, fz, ft, p)
	h := raw * float64(p.Amplitude)
	n := f.normal(src, fx, fz, ft, h, p)
	base := Classify(float32(h), p)

	return Sample{
		Raw:    float32(raw),
		Height: float32(h),
		Normal: n,
		Color:  Shade(base, n, viewDir, p, f.sky()),
	}
}

// raw sums the octaves. Time enters as a phase shift along both axes, so the
// pattern scrolls diagonally at Speed and is frozen when Speed is zero.
func (f Field) raw(src noise.Source, x, z, t float64, p *Params) float64 {
	phase := t * float64(p.Speed)
	amp := 1.0
	freq := float64(p.Frequency)
	persistence := float64(p.Persistence)
	lacunarity := float64(p.Lacunarity)

	var sum float64
	for k := 0; k < p.Iterations; k++ {
		sum += amp * src.Eval2(x*freq+phase, z*freq+phase)
		amp *= persistence
		freq *= lacunarity
	}
	return sum
}

func (f Field) height(src noise.Source, x, z, t float64, p *Params) float64 {
	return f.raw(src, x, z, t, p) * float64(p.Amplitude)
}

// normal differentiates the height field forward along X and Z. h is the
// height already evaluated at (x, z).
func (f Field) normal(src noise.Source, x, z, t, h float64, p *Params) math.Vec3 {
	eps := normalEpsilon / float64(p.Frequency)
	dx := f.height(src, x+eps, z, t, p) - h
	dz := f.height(src, x, z+eps, t, p) - h

	// bitangent (0, dz, eps) x tangent (eps, dx, 0)
	nx := -eps * dx
	ny := eps * eps
	nz := -eps * dz
	l := gomath.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 {
		return math.Up
	}
	return math.Vec3{X: float32(nx / l), Y: float32(ny / l), Z: float32(nz / l)}
}

// Bound returns the largest |Height| the octave sum can reach for p, the
// partial geometric series Amplitude * sum(Persistence^k) over Iterations octaves.
func Bound(p *Params) float32 {
	var sum float64
	amp := 1.0
	for k := 0; k < p.Iterations; k++ {
		sum += amp
		amp *= float64(p.Persistence)
	}
	return float32(gomath.Abs(float64(p.Amplitude)) * sum)
}
