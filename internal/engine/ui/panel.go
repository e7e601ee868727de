package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/wavefield/internal/tuning"
	"github.com/Faultbox/wavefield/pkg/wave"
)

// Actions records the panel buttons pressed this frame.
type Actions struct {
	TogglePause bool
	Reset       bool
	Save        bool
	Screenshot  bool
}

// Any reports whether any button was pressed.
func (a Actions) Any() bool {
	return a.TogglePause || a.Reset || a.Save || a.Screenshot
}

// PanelState is the read-only status shown above the controls.
type PanelState struct {
	Time    float32
	Paused  bool
	FPS     float64
	Warning string // out-of-domain report, empty when all parameters are in range
}

// DrawTuning draws one slider per wave tunable and one color editor per band
// color into the current window. Grabbing a slider also makes it the arrow-key
// selection.
func DrawTuning(t *tuning.Tuner, st PanelState) (Actions, error) {
	var act Actions

	imgui.Text(fmt.Sprintf("t = %.2fs  %.0f fps", st.Time, st.FPS))
	pause := "Pause"
	if st.Paused {
		pause = "Resume"
	}
	act.TogglePause = imgui.Button(pause)
	imgui.SameLine()
	act.Reset = imgui.Button("Reset")
	imgui.SameLine()
	act.Save = imgui.Button("Save")
	imgui.SameLine()
	act.Screenshot = imgui.Button("Screenshot")

	imgui.Separator()
	imgui.Text("Waves")
	selected := t.Selected().Name
	for _, tu := range wave.Tunables {
		if err := slider(t, tu, tu.Name == selected); err != nil {
			return act, err
		}
	}

	imgui.Separator()
	imgui.Text("Colors")
	for _, name := range wave.TunableColors {
		c, err := t.Color(name)
		if err != nil {
			return act, err
		}
		if imgui.ColorEdit3(name, &c) {
			if err := t.SetColor(name, c); err != nil {
				return act, err
			}
		}
	}

	if st.Warning != "" {
		imgui.Separator()
		imgui.TextWrapped(st.Warning)
	}
	imgui.Separator()
	imgui.TextDisabled("Tab/Shift+Tab select, Up/Down nudge, Space pause, R reset, P screenshot, S save")
	return act, nil
}

func slider(t *tuning.Tuner, tu wave.Tunable, selected bool) error {
	v, err := t.Value(tu.Name)
	if err != nil {
		return err
	}
	// ### keeps the widget ID stable while the selection marker moves.
	label := tu.Name + "###" + tu.Name
	if selected {
		label = "> " + label
	}

	imgui.SetNextItemWidth(-140)
	var changed bool
	if tu.Name == wave.ParamIterations {
		n := int32(v)
		if changed = imgui.SliderIntV(label, &n, int32(tu.Min), int32(tu.Max), "%d", imgui.SliderFlagsNone); changed {
			v = float32(n)
		}
	} else {
		changed = imgui.SliderFloatV(label, &v, float32(tu.Min), float32(tu.Max), "%.4g", imgui.SliderFlagsNone)
	}
	if imgui.IsItemActive() {
		t.Select(tu.Name)
	}
	if !changed {
		return nil
	}
	return t.SetValue(tu.Name, v)
}
