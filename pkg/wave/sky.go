package wave

import "github.com/Faultbox/wavefield/pkg/math"

// Sky supplies the color reflected by the surface along a unit direction.
type Sky interface {
	Reflect(dir math.Vec3) math.RGB
}

// SolidSky reflects the same color in every direction.
type SolidSky struct {
	Color math.RGB `yaml:"color"`
}

// Reflect implements Sky.
func (s SolidSky) Reflect(math.Vec3) math.RGB {
	return s.Color
}

// GradientSky blends from Horizon to Zenith by the elevation of the direction.
// Directions below the horizon reflect the horizon color.
type GradientSky struct {
	Horizon math.RGB `yaml:"horizon"`
	Zenith  math.RGB `yaml:"zenith"`
}

// Reflect implements Sky.
func (s GradientSky) Reflect(dir math.Vec3) math.RGB {
	return s.Horizon.Mix(s.Zenith, math.Clamp(dir.Y, 0, 1))
}

// DefaultSky is a bright daylight gradient.
var DefaultSky = GradientSky{
	Horizon: math.MustParseHex("#eef7fb"),
	Zenith:  math.MustParseHex("#9fd3f0"),
}
