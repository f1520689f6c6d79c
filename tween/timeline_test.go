package tween

import "testing"

func TestSequenceCallbackOrderAndFinalValue(t *testing.T) {
	obj := &xy{}
	var events []Trigger
	record := func(trig Trigger, src *BaseTween) { events = append(events, trig) }

	a := To(obj, 0, 0.1).Target(40)
	b := To(obj, 1, 0.1).Target(40)
	seq := SequenceOf(a, b).Callback(record).CallbackTriggers(TriggerAny)

	m := NewManager()
	m.Add(seq)
	m.Update(0.2)

	want := []Trigger{TriggerBegin, TriggerStart, TriggerEnd, TriggerStart, TriggerEnd, TriggerComplete}
	if len(events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(events), events, len(want), want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v (all: %v)", i, events[i], want[i], events)
		}
	}
	if obj.x != 40 || obj.y != 40 {
		t.Errorf("final values x=%v y=%v, want 40,40", obj.x, obj.y)
	}
}

func TestSequenceDurationIsSum(t *testing.T) {
	obj := &xy{}
	a := To(obj, 0, 0.1).Target(1)
	b := To(obj, 1, 0.25).Target(1)
	seq := SequenceOf(a, b)
	seq.Start(nil)
	if got := seq.Duration(); abs(got-0.35) > 1e-9 {
		t.Errorf("sequence duration = %v, want 0.35", got)
	}
}

func TestSequenceRepeatFiresStartEndPerPass(t *testing.T) {
	obj := &xy{}
	var events []Trigger
	record := func(trig Trigger, src *BaseTween) { events = append(events, trig) }

	a := To(obj, 0, 0.1).Target(40)
	b := To(obj, 1, 0.1).Target(40)
	seq := SequenceOf(a, b).Repeat(1, 0).Callback(record).CallbackTriggers(TriggerAny)

	m := NewManager()
	m.Add(seq)
	m.Update(0.4)

	want := []Trigger{
		TriggerBegin,
		TriggerStart, TriggerEnd, TriggerStart, TriggerEnd,
		TriggerStart, TriggerEnd, TriggerStart, TriggerEnd,
		TriggerComplete,
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(events), events, len(want), want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v (all: %v)", i, events[i], want[i], events)
		}
	}
	if obj.x != 40 || obj.y != 40 {
		t.Errorf("final values x=%v y=%v, want 40,40", obj.x, obj.y)
	}
}

func TestSequenceRepeatYoyoReturnsToStart(t *testing.T) {
	obj := &xy{}
	a := To(obj, 0, 0.1).Target(40)
	b := To(obj, 1, 0.1).Target(40)
	seq := SequenceOf(a, b).RepeatYoyo(1, 0)

	m := NewManager()
	m.Add(seq)
	m.Update(0.4)

	if abs(obj.x-0) > 1e-9 || abs(obj.y-0) > 1e-9 {
		t.Errorf("obj after yoyo pass = (%v,%v), want back to start (0,0)", obj.x, obj.y)
	}
}

func TestParallelDurationIsMax(t *testing.T) {
	obj := &xy{}
	a := To(obj, 0, 0.1).Target(1)
	b := To(obj, 1, 0.25).Target(1)
	par := ParallelOf(a, b)
	par.Start(nil)
	if got := par.Duration(); abs(got-0.25) > 1e-9 {
		t.Errorf("parallel duration = %v, want 0.25", got)
	}
}

func TestParallelSingleBeginAndCompleteNotBeforeLongestChild(t *testing.T) {
	obj := &xy{}
	var events []Trigger
	a := To(obj, 0, 0.1).Target(1)
	b := To(obj, 1, 0.12).Target(1)
	par := ParallelOf(a, b).
		Callback(func(trig Trigger, src *BaseTween) { events = append(events, trig) }).
		CallbackTriggers(TriggerAny)

	m := NewManager()
	m.Add(par)

	// Advance past the shorter child but not the longer one: no COMPLETE yet.
	m.Update(0.1)
	for _, e := range events {
		if e == TriggerComplete {
			t.Fatal("COMPLETE fired before the longest child finished")
		}
	}

	m.Update(0.02) // total 0.12, exactly the longer child's duration
	begins, completes := 0, 0
	for _, e := range events {
		if e == TriggerBegin {
			begins++
		}
		if e == TriggerComplete {
			completes++
		}
	}
	if begins != 1 {
		t.Errorf("BEGIN fired %d times, want 1", begins)
	}
	if completes != 1 {
		t.Errorf("COMPLETE fired %d times, want 1", completes)
	}
}

func TestChildKillsParentTimelineFromComplete(t *testing.T) {
	obj0 := &scalar{}
	obj1 := &scalar{}
	a := To(obj0, 0, 0.1).Target(1)
	b := To(obj1, 0, 1.0).Target(1)

	var timelineCurrentAtKill float64
	var timelineDurationAtKill float64
	var bEvents []Trigger

	var par *Timeline
	a.Callback(func(trig Trigger, src *BaseTween) {
		if trig == TriggerComplete {
			timelineCurrentAtKill = par.CurrentTime()
			timelineDurationAtKill = par.Duration()
			par.Kill()
		}
	}).CallbackTriggers(TriggerComplete)
	b.Callback(func(trig Trigger, src *BaseTween) {
		bEvents = append(bEvents, trig)
	}).CallbackTriggers(TriggerAny)

	// Driven standalone (nil manager) rather than through a Manager: a
	// Manager frees a killed root back to its pool at the end of the same
	// Update, which clears the killed flag this test inspects.
	par = ParallelOf(a, b)
	par.Start(nil)
	par.Advance(0.15)

	if !par.IsKilled() {
		t.Fatal("expected parent timeline to be killed")
	}
	if timelineCurrentAtKill >= timelineDurationAtKill {
		t.Errorf("timeline currentTime %v was not < fullDuration %v at moment of kill",
			timelineCurrentAtKill, timelineDurationAtKill)
	}
	// b legitimately starts alongside a (BEGIN/START), but must never reach
	// END/COMPLETE once the timeline that owns it has been killed.
	for _, e := range bEvents {
		if e == TriggerEnd || e == TriggerComplete {
			t.Errorf("killed sibling still fired %v", e)
		}
	}
}

func TestPushSelfPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		} else if err, ok := r.(*Error); !ok || err.Kind != ErrBadNesting {
			t.Fatalf("expected ErrBadNesting, got %v", r)
		}
	}()
	tl := Sequence()
	tl.Push(tl)
}

func TestPushCyclePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		} else if err, ok := r.(*Error); !ok || err.Kind != ErrBadNesting {
			t.Fatalf("expected ErrBadNesting, got %v", r)
		}
	}()
	outer := Sequence()
	inner := outer.BeginSequence()
	inner.End()
	inner.Push(outer)
}

func TestEndWithoutBeginPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		} else if err, ok := r.(*Error); !ok || err.Kind != ErrBadNesting {
			t.Fatalf("expected ErrBadNesting, got %v", r)
		}
	}()
	Sequence().End()
}

func TestPushAlreadyOwnedPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		} else if err, ok := r.(*Error); !ok || err.Kind != ErrBadNesting {
			t.Fatalf("expected ErrBadNesting, got %v", r)
		}
	}()
	obj := &xy{}
	child := To(obj, 0, 1).Target(1)
	Sequence().Push(child)
	Parallel().Push(child)
}

func TestPushAfterStartPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		} else if err, ok := r.(*Error); !ok || err.Kind != ErrMutateAfterStart {
			t.Fatalf("expected ErrMutateAfterStart, got %v", r)
		}
	}()
	obj := &xy{}
	tl := SequenceOf(To(obj, 0, 1).Target(1))
	tl.Start(nil)
	tl.Push(To(obj, 1, 1).Target(1))
}

func TestNestedSequenceBuilder(t *testing.T) {
	obj := &xy{}
	root := Sequence()
	root.BeginParallel().
		Push(To(obj, 0, 0.1).Target(1)).
		Push(To(obj, 1, 0.2).Target(1)).
		End().
		Push(To(obj, 0, 0.05).Target(2))

	root.Start(nil)
	if got := root.Duration(); abs(got-0.25) > 1e-9 {
		t.Errorf("nested sequence duration = %v, want 0.25", got)
	}
	if len(root.Children()) != 2 {
		t.Errorf("root has %d children, want 2 (nested parallel + trailing tween)", len(root.Children()))
	}
}
