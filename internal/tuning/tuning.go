// Package tuning maps interactive controls onto the wave parameters.
package tuning

import (
	"fmt"

	"github.com/Faultbox/wavefield/pkg/math"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// Tuner cycles through wave.Tunables and nudges the selected one in place.
type Tuner struct {
	params   *wave.Params
	defaults wave.Params
	selected int
}

// New returns a tuner editing p. The current value of p becomes the reset target.
func New(p *wave.Params) *Tuner {
	return &Tuner{params: p, defaults: *p}
}

// Selected returns the tunable under edit.
func (t *Tuner) Selected() wave.Tunable {
	return wave.Tunables[t.selected]
}

// Next selects the following tunable, wrapping around.
func (t *Tuner) Next() {
	t.selected = (t.selected + 1) % len(wave.Tunables)
}

// Prev selects the preceding tunable, wrapping around.
func (t *Tuner) Prev() {
	t.selected = (t.selected + len(wave.Tunables) - 1) % len(wave.Tunables)
}

// Nudge moves the selected parameter by steps and returns its new value.
func (t *Tuner) Nudge(steps int) (float64, error) {
	return t.Selected().Nudge(t.params, steps)
}

// Reset restores every parameter to its value when the tuner was created.
func (t *Tuner) Reset() {
	*t.params = t.defaults
}

// Status describes the selection, e.g. "amplitude = 0.025 (1/13)".
func (t *Tuner) Status() string {
	tu := t.Selected()
	v, err := t.params.Get(tu.Name)
	if err != nil {
		return tu.Name
	}
	return fmt.Sprintf("%s = %.4g (%d/%d)", tu.Name, v, t.selected+1, len(wave.Tunables))
}

// Select makes the named tunable the current selection. It reports false
// for names that are not in wave.Tunables.
func (t *Tuner) Select(name string) bool {
	for i, tu := range wave.Tunables {
		if tu.Name == name {
			t.selected = i
			return true
		}
	}
	return false
}

// Value returns a numeric parameter as a slider value.
func (t *Tuner) Value(name string) (float32, error) {
	v, err := t.params.Get(name)
	return float32(v), err
}

// SetValue assigns a slider value, limited to the tunable's range.
func (t *Tuner) SetValue(name string, v float32) error {
	tu, ok := wave.LookupTunable(name)
	if !ok {
		return fmt.Errorf("%w: %q is not tunable", wave.ErrUnknownParam, name)
	}
	return t.params.Set(name, min(max(float64(v), tu.Min), tu.Max))
}

// Color returns a color parameter as the channel array color editors take.
func (t *Tuner) Color(name string) ([3]float32, error) {
	c, err := t.params.GetColor(name)
	return c.Array(), err
}

// SetColor assigns a color parameter from editor channels, each limited to [0, 1].
func (t *Tuner) SetColor(name string, c [3]float32) error {
	return t.params.SetColor(name, math.RGB{
		R: math.Clamp(c[0], 0, 1),
		G: math.Clamp(c[1], 0, 1),
		B: math.Clamp(c[2], 0, 1),
	})
}

// Steps converts an arrow-key press into a nudge count: one step up or down,
// ten with shift held.
func Steps(up, shift bool) int {
	n := 1
	if shift {
		n = 10
	}
	if !up {
		n = -n
	}
	return n
}
