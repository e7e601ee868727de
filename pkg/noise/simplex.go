package noise

import "math"

// Simplex is the default source: 2D simplex noise with the hash and gradient
// construction of the webgl-noise snoise(vec2), so CPU results track the shader.
var Simplex Source = simplex{}

type simplex struct{}

func (simplex) Eval2(x, y float64) float64 {
	return Simplex2(x, y)
}

// Skew and gradient constants of snoise(vec2).
const (
	c0 = 0.211324865405187  // (3 - sqrt(3)) / 6
	c1 = 0.366025403784439  // (sqrt(3) - 1) / 2
	c2 = -0.577350269189626 // -1 + 2*c0
	c3 = 0.024390243902439  // 1 / 41
)

// Simplex2 evaluates 2D simplex noise at (x, y). The result is C1 continuous
// and stays strictly inside (-1, 1). The hash repeats every 289 lattice cells.
func Simplex2(x, y float64) float64 {
	// First corner.
	s := (x + y) * c1
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	t := (i + j) * c0
	x0 := x - i + t
	y0 := y - j + t

	// Other corners.
	var i1, j1 float64
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}
	x1 := x0 + c0 - i1
	y1 := y0 + c0 - j1
	x2 := x0 + c2
	y2 := y0 + c2

	i = mod289(i)
	j = mod289(j)
	p0 := permute(permute(j) + i)
	p1 := permute(permute(j+j1) + i + i1)
	p2 := permute(permute(j+1) + i + 1)

	return 130 * (corner(p0, x0, y0) + corner(p1, x1, y1) + corner(p2, x2, y2))
}

// corner returns the falloff-weighted gradient contribution of one simplex corner.
func corner(p, dx, dy float64) float64 {
	m := math.Max(0.5-(dx*dx+dy*dy), 0)
	m *= m
	m *= m

	// 41 gradients spread over a rotated square, normalized by a Taylor
	// approximation of the inverse square root.
	gx := 2*fract(p*c3) - 1
	h := math.Abs(gx) - 0.5
	a0 := gx - math.Floor(gx+0.5)
	m *= 1.79284291400159 - 0.85373472095314*(a0*a0+h*h)

	return m * (a0*dx + h*dy)
}

func mod289(x float64) float64 {
	return x - math.Floor(x*(1.0/289.0))*289.0
}

func permute(x float64) float64 {
	return mod289((x*34.0 + 1.0) * x)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}
