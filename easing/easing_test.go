package easing

import "testing"

const tol = 1e-9

func allEquations() map[string]Equation {
	return map[string]Equation{
		"Linear":       Linear,
		"QuadIn":       QuadIn,
		"QuadOut":      QuadOut,
		"QuadInOut":    QuadInOut,
		"CubicIn":      CubicIn,
		"CubicOut":     CubicOut,
		"CubicInOut":   CubicInOut,
		"QuartIn":      QuartIn,
		"QuartOut":     QuartOut,
		"QuartInOut":   QuartInOut,
		"QuintIn":      QuintIn,
		"QuintOut":     QuintOut,
		"QuintInOut":   QuintInOut,
		"SineIn":       SineIn,
		"SineOut":      SineOut,
		"SineInOut":    SineInOut,
		"ExpoIn":       ExpoIn,
		"ExpoOut":      ExpoOut,
		"ExpoInOut":    ExpoInOut,
		"CircIn":       CircIn,
		"CircOut":      CircOut,
		"CircInOut":    CircInOut,
		"BackIn":       BackIn,
		"BackOut":      BackOut,
		"BackInOut":    BackInOut,
		"BounceIn":     BounceIn,
		"BounceOut":    BounceOut,
		"BounceInOut":  BounceInOut,
		"ElasticIn":    ElasticIn,
		"ElasticOut":   ElasticOut,
		"ElasticInOut": ElasticInOut,
	}
}

func TestEndpoints(t *testing.T) {
	for name, eq := range allEquations() {
		t.Run(name, func(t *testing.T) {
			if got := eq(0); abs(got) > tol {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := eq(1); abs(got-1) > tol {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	cases := []struct {
		name          string
		a, b, t, want float64
	}{
		{"zero t", 0, 10, 0, 0},
		{"full t", 0, 10, 1, 10},
		{"midpoint", 0, 10, 0.5, 5},
		{"straddles zero", -5, 5, 0.5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); abs(got-c.want) > tol {
				t.Errorf("Lerp(%v,%v,%v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
