package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", z)
	}
}

func TestVec3Reflect(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		n    Vec3
		want Vec3
	}{
		{"straight down", Vec3{0, -1, 0}, Up, Vec3{0, 1, 0}},
		{"grazing", Vec3{1, 0, 0}, Up, Vec3{1, 0, 0}},
		{"diagonal", Vec3{1, -1, 0}, Up, Vec3{1, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Reflect(tt.n); got != tt.want {
				t.Errorf("Reflect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Array(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Array(); got != [3]float32{1, 2, 3} {
		t.Errorf("Array() = %v, want [1 2 3]", got)
	}
}
