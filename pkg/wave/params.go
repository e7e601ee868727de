// Package wave implements the procedural animated-water surface: a fractal
// simplex height field, its finite-difference normal, a three-band height color
// ramp and a fresnel reflection term.
//
// Evaluation is stateless. Every call takes the position, a caller-owned time
// in seconds and a Params snapshot; identical inputs always give identical
// output, so a Field may be shared by any number of goroutines as long as the
// Params they read are not written concurrently.
package wave

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"

	"github.com/Faultbox/wavefield/pkg/math"
)

// Parameter names, as used in YAML and by Set/Get.
const (
	ParamAmplitude        = "amplitude"
	ParamFrequency        = "frequency"
	ParamPersistence      = "persistence"
	ParamLacunarity       = "lacunarity"
	ParamIterations       = "iterations"
	ParamSpeed            = "speed"
	ParamTroughColor      = "trough_color"
	ParamSurfaceColor     = "surface_color"
	ParamPeakColor        = "peak_color"
	ParamPeakThreshold    = "peak_threshold"
	ParamPeakTransition   = "peak_transition"
	ParamTroughThreshold  = "trough_threshold"
	ParamTroughTransition = "trough_transition"
	ParamFresnelScale     = "fresnel_scale"
	ParamFresnelPower     = "fresnel_power"
	ParamOpacity          = "opacity"
)

var (
	// ErrUnknownParam is returned when a parameter name does not exist
	// or does not hold the requested kind of value.
	ErrUnknownParam = errors.New("unknown wave parameter")

	// ErrOutOfDomain marks a parameter outside its documented range.
	ErrOutOfDomain = errors.New("wave parameter out of domain")
)

// Params is the full tunable state of the water surface.
type Params struct {
	Amplitude   float32 `yaml:"amplitude"`   // vertical scale of the displacement
	Frequency   float32 `yaml:"frequency"`   // spatial frequency of the first octave
	Persistence float32 `yaml:"persistence"` // amplitude falloff per octave, (0, 1)
	Lacunarity  float32 `yaml:"lacunarity"`  // frequency growth per octave, > 1
	Iterations  int     `yaml:"iterations"`  // octave count
	Speed       float32 `yaml:"speed"`       // time scroll rate of the noise phase

	TroughColor  math.RGB `yaml:"trough_color"`
	SurfaceColor math.RGB `yaml:"surface_color"`
	PeakColor    math.RGB `yaml:"peak_color"`

	PeakThreshold    float32 `yaml:"peak_threshold"`
	PeakTransition   float32 `yaml:"peak_transition"`
	TroughThreshold  float32 `yaml:"trough_threshold"`
	TroughTransition float32 `yaml:"trough_transition"`

	FresnelScale float32 `yaml:"fresnel_scale"`
	FresnelPower float32 `yaml:"fresnel_power"`
	Opacity      float32 `yaml:"opacity"`
}

// DefaultParams returns the tuned look of the island scene water.
func DefaultParams() Params {
	return Params{
		Amplitude:   0.025,
		Frequency:   1.07,
		Persistence: 0.3,
		Lacunarity:  2.18,
		Iterations:  8,
		Speed:       0.4,

		TroughColor:  math.MustParseHex("#29d9e7"),
		SurfaceColor: math.MustParseHex("#29e7ad"),
		PeakColor:    math.MustParseHex("#29c7e7"),

		PeakThreshold:    0.08,
		PeakTransition:   0.05,
		TroughThreshold:  -0.01,
		TroughTransition: 0.15,

		FresnelScale: 0.8,
		FresnelPower: 0.5,
		Opacity:      0.9,
	}
}

// Names lists every settable parameter in declaration order.
func Names() []string {
	return []string{
		ParamAmplitude, ParamFrequency, ParamPersistence, ParamLacunarity,
		ParamIterations, ParamSpeed,
		ParamTroughColor, ParamSurfaceColor, ParamPeakColor,
		ParamPeakThreshold, ParamPeakTransition, ParamTroughThreshold, ParamTroughTransition,
		ParamFresnelScale, ParamFresnelPower, ParamOpacity,
	}
}

// IsColor reports whether name refers to a color parameter.
func IsColor(name string) bool {
	switch name {
	case ParamTroughColor, ParamSurfaceColor, ParamPeakColor:
		return true
	}
	return false
}

func (p *Params) scalar(name string) *float32 {
	switch name {
	case ParamAmplitude:
		return &p.Amplitude
	case ParamFrequency:
		return &p.Frequency
	case ParamPersistence:
		return &p.Persistence
	case ParamLacunarity:
		return &p.Lacunarity
	case ParamSpeed:
		return &p.Speed
	case ParamPeakThreshold:
		return &p.PeakThreshold
	case ParamPeakTransition:
		return &p.PeakTransition
	case ParamTroughThreshold:
		return &p.TroughThreshold
	case ParamTroughTransition:
		return &p.TroughTransition
	case ParamFresnelScale:
		return &p.FresnelScale
	case ParamFresnelPower:
		return &p.FresnelPower
	case ParamOpacity:
		return &p.Opacity
	}
	return nil
}

func (p *Params) color(name string) *math.RGB {
	switch name {
	case ParamTroughColor:
		return &p.TroughColor
	case ParamSurfaceColor:
		return &p.SurfaceColor
	case ParamPeakColor:
		return &p.PeakColor
	}
	return nil
}

// Get returns the value of a numeric parameter.
func (p *Params) Get(name string) (float64, error) {
	if name == ParamIterations {
		return float64(p.Iterations), nil
	}
	if f := p.scalar(name); f != nil {
		return float64(*f), nil
	}
	return 0, fmt.Errorf("%w: %q is not numeric", ErrUnknownParam, name)
}

// Set assigns a numeric parameter. Iterations is rounded to the nearest integer
// and must fit in 32 bits. Values are stored as given; nothing is clamped.
func (p *Params) Set(name string, value float64) error {
	if name == ParamIterations {
		r := gomath.Round(value)
		if gomath.IsNaN(r) || r < gomath.MinInt32 || r > gomath.MaxInt32 {
			return fmt.Errorf("%w: iterations %v is not a representable count", ErrOutOfDomain, value)
		}
		p.Iterations = int(r)
		return nil
	}
	f := p.scalar(name)
	if f == nil {
		return fmt.Errorf("%w: %q is not numeric", ErrUnknownParam, name)
	}
	*f = float32(value)
	return nil
}

// GetColor returns the value of a color parameter.
func (p *Params) GetColor(name string) (math.RGB, error) {
	c := p.color(name)
	if c == nil {
		return math.RGB{}, fmt.Errorf("%w: %q is not a color", ErrUnknownParam, name)
	}
	return *c, nil
}

// SetColor assigns a color parameter.
func (p *Params) SetColor(name string, value math.RGB) error {
	c := p.color(name)
	if c == nil {
		return fmt.Errorf("%w: %q is not a color", ErrUnknownParam, name)
	}
	*c = value
	return nil
}

// SetString parses value according to the parameter kind: a hex color for
// color parameters, a decimal number otherwise.
func (p *Params) SetString(name, value string) error {
	if IsColor(name) {
		c, err := math.ParseHex(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return p.SetColor(name, c)
	}
	if name != ParamIterations && p.scalar(name) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return p.Set(name, v)
}

// Check reports every parameter outside its documented domain. The result is
// advisory: evaluation never clamps, so out-of-domain values still render.
func (p *Params) Check() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrOutOfDomain, fmt.Sprintf(format, args...)))
	}
	if p.Amplitude < 0 {
		bad("amplitude %v must be >= 0", p.Amplitude)
	}
	if p.Frequency <= 0 {
		bad("frequency %v must be > 0", p.Frequency)
	}
	if p.Persistence <= 0 || p.Persistence >= 1 {
		bad("persistence %v must be in (0, 1)", p.Persistence)
	}
	if p.Lacunarity <= 1 {
		bad("lacunarity %v must be > 1", p.Lacunarity)
	}
	if p.Iterations < 1 {
		bad("iterations %d must be >= 1", p.Iterations)
	}
	if p.Opacity < 0 || p.Opacity > 1 {
		bad("opacity %v must be in [0, 1]", p.Opacity)
	}
	if p.PeakThreshold < p.TroughThreshold {
		bad("peak threshold %v below trough threshold %v", p.PeakThreshold, p.TroughThreshold)
	}
	return errors.Join(errs...)
}
