package math

import "testing"

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name      string
		e0, e1, x float32
		want      float32
	}{
		{"below", 0, 1, -1, 0},
		{"above", 0, 1, 2, 1},
		{"lower edge", 0, 1, 0, 0},
		{"upper edge", 0, 1, 1, 1},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"step below", 0.5, 0.5, 0.4, 0},
		{"step at edge", 0.5, 0.5, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smoothstep(tt.e0, tt.e1, tt.x); got != tt.want {
				t.Errorf("Smoothstep(%v, %v, %v) = %v, want %v", tt.e0, tt.e1, tt.x, got, tt.want)
			}
		})
	}
}

func TestMixExactAtEnds(t *testing.T) {
	a, b := float32(0.16078432), float32(0.9058824)
	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(a, b, 0) = %v, want %v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix(a, b, 1) = %v, want %v", got, b)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-2, 0, 1); got != 0 {
		t.Errorf("Clamp(-2) = %v", got)
	}
	if got := Clamp(3, 0, 1); got != 1 {
		t.Errorf("Clamp(3) = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v", got)
	}
}
