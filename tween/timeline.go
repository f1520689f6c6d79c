package tween

// Mode selects how a Timeline's children share the parent's time.
type Mode int

const (
	// ModeSequence plays children back to back: child i's effective delay
	// is the sum of every prior child's FullDuration.
	ModeSequence Mode = iota
	// ModeParallel starts every child at offset 0.
	ModeParallel
)

func (m Mode) String() string {
	if m == ModeParallel {
		return "parallel"
	}
	return "sequence"
}

// Timeline is a composite BaseTween whose body is an ordered list of
// children. Its own duration is derived from its children at build time;
// it never samples an accessor itself.
type Timeline struct {
	BaseTween

	mode     Mode
	children []*BaseTween

	// parentBuilder is the timeline BeginSequence/BeginParallel opened
	// this one from, so End can return to it. nil for a root timeline
	// or once End has been called.
	parentBuilder *Timeline
}

// Sequence starts a root timeline that plays its children back to back.
func Sequence() *Timeline {
	tl := acquireTimeline()
	tl.mode = ModeSequence
	return tl
}

// Parallel starts a root timeline that plays its children concurrently.
func Parallel() *Timeline {
	tl := acquireTimeline()
	tl.mode = ModeParallel
	return tl
}

// SequenceOf builds a sequence timeline from an already-known list of
// children in one call.
func SequenceOf(nodes ...Node) *Timeline {
	tl := Sequence()
	for _, n := range nodes {
		tl.Push(n)
	}
	return tl
}

// ParallelOf builds a parallel timeline from an already-known list of
// children in one call.
func ParallelOf(nodes ...Node) *Timeline {
	tl := Parallel()
	for _, n := range nodes {
		tl.Push(n)
	}
	return tl
}

// Push appends child to this timeline. It panics with BadNesting if child
// is this timeline, already owned, or would create a cycle;
// MutateAfterStart if this timeline or child has already started.
func (tl *Timeline) Push(child Node) *Timeline {
	tl.assertNotStarted("Push")
	b := child.base()
	if b == &tl.BaseTween {
		panicKind(ErrBadNesting, "timeline cannot push itself")
	}
	if b.isStarted {
		panicKind(ErrMutateAfterStart, "cannot push an already-started tween")
	}
	if b.owner != nil {
		panicKind(ErrBadNesting, "child already belongs to another timeline")
	}
	if containsTimeline(b, tl) {
		panicKind(ErrBadNesting, "push would create a cycle")
	}
	b.owner = tl
	tl.children = append(tl.children, b)
	return tl
}

func containsTimeline(node *BaseTween, target *Timeline) bool {
	tl, ok := node.body.(*Timeline)
	if !ok {
		return false
	}
	if tl == target {
		return true
	}
	for _, c := range tl.children {
		if containsTimeline(c, target) {
			return true
		}
	}
	return false
}

// BeginSequence opens a nested sequence timeline as a child of tl and
// returns it; End returns to tl.
func (tl *Timeline) BeginSequence() *Timeline {
	child := Sequence()
	child.parentBuilder = tl
	tl.Push(child)
	return child
}

// BeginParallel opens a nested parallel timeline as a child of tl and
// returns it; End returns to tl.
func (tl *Timeline) BeginParallel() *Timeline {
	child := Parallel()
	child.parentBuilder = tl
	tl.Push(child)
	return child
}

// End closes the nested timeline opened by BeginSequence/BeginParallel and
// returns its parent. Panics BadNesting if tl was not opened that way.
func (tl *Timeline) End() *Timeline {
	if tl.parentBuilder == nil {
		panicKind(ErrBadNesting, "End called without a matching Begin")
	}
	p := tl.parentBuilder
	tl.parentBuilder = nil
	return p
}

// --- fluent builder passthroughs ---------------------------------------

func (tl *Timeline) Delay(d float64) *Timeline {
	tl.setDelay(d)
	return tl
}

func (tl *Timeline) Repeat(count int, delay float64) *Timeline {
	tl.setRepeat(count, delay, false)
	return tl
}

func (tl *Timeline) RepeatYoyo(count int, delay float64) *Timeline {
	tl.setRepeat(count, delay, true)
	return tl
}

func (tl *Timeline) Callback(fn Callback) *Timeline {
	tl.assertNotStarted("Callback")
	tl.callback = fn
	return tl
}

func (tl *Timeline) CallbackTriggers(mask Trigger) *Timeline {
	tl.assertNotStarted("CallbackTriggers")
	tl.callbackTriggers = mask
	return tl
}

func (tl *Timeline) UserData(v any) *Timeline {
	tl.assertNotStarted("UserData")
	tl.userData = v
	return tl
}

// Start builds and, if m is non-nil, adds this timeline to m. With a nil
// manager the timeline is built standalone and must be driven directly
// with Advance.
func (tl *Timeline) Start(m *Manager) *Timeline {
	if m != nil {
		m.Add(tl)
		return tl
	}
	if !tl.built {
		tl.buildBody()
		tl.isStarted = true
	}
	return tl
}

func (tl *Timeline) Pause() *Timeline  { tl.isPaused = true; return tl }
func (tl *Timeline) Resume() *Timeline { tl.isPaused = false; return tl }

func (tl *Timeline) Kill() *Timeline {
	tl.BaseTween.Kill()
	return tl
}

// Children exposes the child list read-only, for introspection and tests.
func (tl *Timeline) Children() []*BaseTween {
	return tl.children
}

func (tl *Timeline) Mode() Mode { return tl.mode }

// --- body interface --------------------------------------------------

// firesOwnEdges is false: a Timeline's own START/END come entirely from
// its children's START/END/BACK_START/BACK_END bubbling through fire (see
// base.go), so a SEQUENCE timeline's callback sees one pair per child
// rather than one pair for the whole aggregate span.
func (tl *Timeline) firesOwnEdges() bool { return false }

func (tl *Timeline) buildBody() {
	if tl.built {
		return
	}
	tl.built = true
	switch tl.mode {
	case ModeSequence:
		var cursor float64
		for _, c := range tl.children {
			c.delay = cursor
			c.body.buildBody()
			// FullDuration already includes the delay just assigned, so it
			// is this child's end time within the sequence.
			cursor = c.FullDuration()
		}
		tl.duration = cursor
	case ModeParallel:
		var longest float64
		for _, c := range tl.children {
			c.delay = 0
			c.body.buildBody()
			if d := c.FullDuration(); d > longest {
				longest = d
			}
		}
		tl.duration = longest
	}
}

func (tl *Timeline) initializeBody() {}

func (tl *Timeline) updateBody(localDelta float64, forward bool) {
	effective := forward
	delta := localDelta
	if tl.isYoyo && tl.iterIndex%2 == 1 {
		effective = !effective
		delta = -delta
	}
	if effective {
		for _, c := range tl.children {
			c.Advance(delta)
			if tl.isKilled {
				return
			}
		}
		return
	}
	for i := len(tl.children) - 1; i >= 0; i-- {
		tl.children[i].Advance(delta)
		if tl.isKilled {
			return
		}
	}
}

// enterIterationBody rewinds every descendant back to a pristine state
// whenever this timeline replays an iteration (a repeat past the first).
// A yoyo-reversed replay resets descendants to their finished state
// instead, so the negated delta updateBody then forwards drives them
// backward through their own reverse traversal.
func (tl *Timeline) enterIterationBody(forward bool) {
	if !tl.enteredBefore {
		return
	}
	reversedNow := tl.isYoyo && tl.iterIndex%2 == 1
	effective := forward != reversedNow
	for _, c := range tl.children {
		resetForReplay(c, effective)
	}
}

func resetForReplay(b *BaseTween, forward bool) {
	b.enteredBefore = false
	if forward {
		b.ph = phasePreDelay
		b.currentTime = 0
		b.isFinished = false
	} else {
		b.ph = phaseTerminal
		b.isFinished = true
	}
	if tl, ok := b.body.(*Timeline); ok {
		for _, c := range tl.children {
			resetForReplay(c, forward)
		}
	}
}

func (tl *Timeline) killBody() {
	for _, c := range tl.children {
		c.Kill()
	}
}

func (tl *Timeline) resetBody() {
	for _, c := range tl.children {
		c.Free()
	}
	tl.children = nil
	tl.parentBuilder = nil
}
