package wave

import (
	gomath "math"

	"github.com/Faultbox/wavefield/pkg/math"
)

// Classify maps a displaced height to the trough/surface/peak color ramp.
// The trough and peak bands blend independently against the surface color,
// each over a smoothstep of half-width TroughTransition or PeakTransition
// centered on its threshold. Inverted bands (peak below trough) are not
// resolved; the output is whatever the two blends produce.
func Classify(h float32, p *Params) math.RGB {
	troughF := math.Smoothstep(p.TroughThreshold-p.TroughTransition, p.TroughThreshold+p.TroughTransition, h)
	peakF := math.Smoothstep(p.PeakThreshold-p.PeakTransition, p.PeakThreshold+p.PeakTransition, h)
	return p.TroughColor.Mix(p.SurfaceColor, troughF).Mix(p.PeakColor, peakF)
}

// Fresnel returns FresnelScale * (1 - dot(n, v))^FresnelPower with the dot
// product clamped to [0, 1]. n and v are unit vectors. A head-on view is
// always 0, including FresnelPower 0.
func Fresnel(n, v math.Vec3, p *Params) float32 {
	d := math.Clamp(n.Dot(v), 0, 1)
	if d >= 1 {
		return 0
	}
	return float32(float64(p.FresnelScale) * gomath.Pow(float64(1-d), float64(p.FresnelPower)))
}

// Shade blends the classified base color toward the sky reflected about n by
// the fresnel term and applies the constant opacity.
func Shade(base math.RGB, n, viewDir math.Vec3, p *Params, sky Sky) math.RGBA {
	fresnel := Fresnel(n, viewDir, p)
	reflection := sky.Reflect(viewDir.Negate().Reflect(n))
	return base.Mix(reflection, fresnel).WithAlpha(p.Opacity)
}
