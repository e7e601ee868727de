package wave

import "math"

// Tunable describes the interactive range of one numeric parameter.
type Tunable struct {
	Name           string
	Min, Max, Step float64
}

// Tunables lists the parameters exposed to tuning controls. Amplitude and
// frequency keep the slider ranges of the island scene controls; frequency
// starts just above zero because the normal step divides by it.
var Tunables = []Tunable{
	{ParamAmplitude, 0, 0.1, 0.0025},
	{ParamFrequency, 0.01, 2, 0.01},
	{ParamPersistence, 0.01, 0.99, 0.01},
	{ParamLacunarity, 1.01, 4, 0.01},
	{ParamIterations, 1, 16, 1},
	{ParamSpeed, 0, 2, 0.05},
	{ParamPeakThreshold, -0.2, 0.2, 0.005},
	{ParamPeakTransition, 0, 0.2, 0.005},
	{ParamTroughThreshold, -0.2, 0.2, 0.005},
	{ParamTroughTransition, 0, 0.2, 0.005},
	{ParamFresnelScale, 0, 1, 0.05},
	{ParamFresnelPower, 0.05, 4, 0.05},
	{ParamOpacity, 0, 1, 0.05},
}

// TunableColors lists the color parameters exposed to color editors, from
// the lowest band to the highest.
var TunableColors = []string{ParamTroughColor, ParamSurfaceColor, ParamPeakColor}

// LookupTunable finds the tunable for a parameter name.
func LookupTunable(name string) (Tunable, bool) {
	for _, t := range Tunables {
		if t.Name == name {
			return t, true
		}
	}
	return Tunable{}, false
}

// Nudge moves the parameter by steps*Step, limited to [Min, Max], and returns
// the new value.
func (t Tunable) Nudge(p *Params, steps int) (float64, error) {
	v, err := p.Get(t.Name)
	if err != nil {
		return 0, err
	}
	v = math.Min(math.Max(v+float64(steps)*t.Step, t.Min), t.Max)
	if err := p.Set(t.Name, v); err != nil {
		return 0, err
	}
	return p.Get(t.Name)
}
