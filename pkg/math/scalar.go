package math

// Clamp limits x to [lo, hi]. NaN passes through unchanged.
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mix linearly interpolates between a and b using the GLSL form a*(1-w) + b*w,
// which returns a and b exactly at w == 0 and w == 1.
func Mix(a, b, w float32) float32 {
	return a*(1-w) + b*w
}

// Smoothstep performs Hermite interpolation between edge0 and edge1 like GLSL
// smoothstep. Equal edges degenerate to a step at the edge.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
