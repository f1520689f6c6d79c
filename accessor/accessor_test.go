package accessor

import "testing"

type point struct{ x, y float64 }

type pointAccessor struct{}

func (pointAccessor) GetValues(target any, typeCode int, out []float64) int {
	p := target.(*point)
	out[0], out[1] = p.x, p.y
	return 2
}

func (pointAccessor) SetValues(target any, typeCode int, values []float64) {
	p := target.(*point)
	p.x, p.y = values[0], values[1]
}

type selfPoint struct{ v float64 }

func (s *selfPoint) GetValues(target any, typeCode int, out []float64) int {
	out[0] = s.v
	return 1
}

func (s *selfPoint) SetValues(target any, typeCode int, values []float64) {
	s.v = values[0]
}

func TestRegisterResolve(t *testing.T) {
	defer Unregister((*point)(nil))
	Register((*point)(nil), pointAccessor{})

	p := &point{}
	acc, ok := Resolve(p)
	if !ok {
		t.Fatal("expected accessor to resolve")
	}
	buf := make([]float64, 2)
	if n := acc.GetValues(p, 0, buf); n != 2 {
		t.Errorf("GetValues returned %d, want 2", n)
	}
	acc.SetValues(p, 0, []float64{3, 4})
	if p.x != 3 || p.y != 4 {
		t.Errorf("SetValues did not apply: %+v", p)
	}
}

func TestSelfAccessorFallback(t *testing.T) {
	s := &selfPoint{}
	acc, ok := Resolve(s)
	if !ok {
		t.Fatal("expected self-accessor fallback to resolve")
	}
	acc.SetValues(s, 0, []float64{9})
	if s.v != 9 {
		t.Errorf("self accessor SetValues did not apply, got %v", s.v)
	}
}

func TestResolveMissing(t *testing.T) {
	if _, ok := Resolve(&struct{ a int }{}); ok {
		t.Error("expected no accessor for unregistered, non-self-accessor type")
	}
}

func TestUnregister(t *testing.T) {
	Register((*point)(nil), pointAccessor{})
	Unregister((*point)(nil))
	if _, ok := Resolve(&point{}); ok {
		t.Error("expected accessor to be gone after Unregister")
	}
}
