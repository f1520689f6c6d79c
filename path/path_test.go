package path

import "testing"

const tol = 1e-9

func TestLinearEndpoints(t *testing.T) {
	pts := []float64{0, 10, 20, 30}
	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, pts[0]},
		{"end", 1, pts[len(pts)-1]},
		{"midpoint", 0.5, 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Linear(c.t, pts, len(pts)); abs(got-c.want) > tol {
				t.Errorf("Linear(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestCatmullRomEndpoints(t *testing.T) {
	pts := []float64{0, 10, 20, 30}
	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, pts[0]},
		{"end", 1, pts[len(pts)-1]},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CatmullRom(c.t, pts, len(pts)); abs(got-c.want) > tol {
				t.Errorf("CatmullRom(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestSinglePoint(t *testing.T) {
	pts := []float64{7}
	if got := Linear(0.5, pts, 1); got != 7 {
		t.Errorf("Linear single point = %v, want 7", got)
	}
	if got := CatmullRom(0.5, pts, 1); got != 7 {
		t.Errorf("CatmullRom single point = %v, want 7", got)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
