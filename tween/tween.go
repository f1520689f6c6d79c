package tween

import (
	"github.com/lixenwraith/tweenengine/accessor"
	"github.com/lixenwraith/tweenengine/easing"
	"github.com/lixenwraith/tweenengine/path"
)

// Tween is one interpolation of a single attribute group of a single
// target, driven by an easing equation and, when waypoints are present, a
// path evaluator. It is also used, with a nil target, as a target-less
// timer (Call) or pure beacon (Mark) inside a Timeline.
type Tween struct {
	BaseTween

	target    any
	typeCode  int
	castClass any
	acc       accessor.Accessor

	easeFn easing.Equation
	pathFn path.Compute

	isFrom     bool
	isRelative bool

	combinedAttrsCnt int
	startValues      []float64
	targetValues     []float64
	waypoints        [][]float64

	valueBuf []float64
	pointBuf []float64
}

// To animates target's typeCode attribute group toward values declared via
// Target/TargetRelative, over duration seconds.
func To(target any, typeCode int, duration float64) *Tween {
	if duration < 0 {
		panicKind(ErrInvalidDuration, "duration %v is negative", duration)
	}
	t := acquireTween()
	t.target = target
	t.typeCode = typeCode
	t.duration = duration
	return t
}

// From is To, except at initialization the sampled current value becomes
// the target and the declared Target values become the start — the
// attribute jumps to the declared values immediately and eases back to
// wherever it already was.
func From(target any, typeCode int, duration float64) *Tween {
	t := To(target, typeCode, duration)
	t.isFrom = true
	return t
}

// Set is To with duration 0: an immediate write, useful inside a Timeline
// to pin a value at a specific point in the sequence.
func Set(target any, typeCode int) *Tween {
	return To(target, typeCode, 0)
}

// Call creates a target-less, zero-duration Tween whose only purpose is to
// invoke fn (with TriggerAny) when the timeline cursor reaches it.
func Call(fn Callback) *Tween {
	t := acquireTween()
	t.duration = 0
	t.callback = fn
	t.callbackTriggers = TriggerAny
	return t
}

// Mark creates a target-less, zero-duration, callback-less Tween used
// purely as a synchronization point inside a Timeline; attach a callback
// with Callback if the mark itself needs to be observed.
func Mark() *Tween {
	t := acquireTween()
	t.duration = 0
	return t
}

// --- fluent builder ------------------------------------------------------

func (t *Tween) Delay(d float64) *Tween {
	t.setDelay(d)
	return t
}

func (t *Tween) Repeat(count int, delay float64) *Tween {
	t.setRepeat(count, delay, false)
	return t
}

func (t *Tween) RepeatYoyo(count int, delay float64) *Tween {
	t.setRepeat(count, delay, true)
	return t
}

func (t *Tween) Ease(eq easing.Equation) *Tween {
	t.assertNotStarted("Ease")
	t.easeFn = eq
	return t
}

func (t *Tween) Path(p path.Compute) *Tween {
	t.assertNotStarted("Path")
	t.pathFn = p
	return t
}

// Cast forces build to resolve the accessor registered for class rather
// than reflect.TypeOf(target) — useful when target is a wrapper and the
// accessor was registered against the wrapped type.
func (t *Tween) Cast(class any) *Tween {
	if t.isStarted {
		panicKind(ErrCastAfterStart, "Cast called after start")
	}
	t.castClass = class
	return t
}

func (t *Tween) Target(values ...float64) *Tween {
	t.assertNotStarted("Target")
	t.setTargetValues(values, false)
	return t
}

func (t *Tween) TargetRelative(values ...float64) *Tween {
	t.assertNotStarted("TargetRelative")
	t.setTargetValues(values, true)
	return t
}

func (t *Tween) setTargetValues(values []float64, relative bool) {
	limit := CombinedAttrsLimit()
	if len(values) > limit {
		panicKind(ErrCombinedAttrsOverflow, "target declares %d components, limit is %d", len(values), limit)
	}
	t.combinedAttrsCnt = len(values)
	t.targetValues = append(t.targetValues[:0], values...)
	t.isRelative = relative
}

func (t *Tween) Waypoint(values ...float64) *Tween {
	t.assertNotStarted("Waypoint")
	if len(t.waypoints) >= WaypointsLimit() {
		panicKind(ErrWaypointsOverflow, "waypoint count exceeds limit %d", WaypointsLimit())
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	t.waypoints = append(t.waypoints, cp)
	return t
}

func (t *Tween) Callback(fn Callback) *Tween {
	t.assertNotStarted("Callback")
	t.callback = fn
	return t
}

func (t *Tween) CallbackTriggers(mask Trigger) *Tween {
	t.assertNotStarted("CallbackTriggers")
	t.callbackTriggers = mask
	return t
}

func (t *Tween) UserData(v any) *Tween {
	t.assertNotStarted("UserData")
	t.userData = v
	return t
}

// Start builds and, if m is non-nil, adds this Tween to m. With a nil
// manager the Tween is built standalone and must be driven directly with
// Advance.
func (t *Tween) Start(m *Manager) *Tween {
	if m != nil {
		m.Add(t)
		return t
	}
	if !t.built {
		t.buildBody()
		t.isStarted = true
	}
	return t
}

func (t *Tween) Pause() *Tween  { t.isPaused = true; return t }
func (t *Tween) Resume() *Tween { t.isPaused = false; return t }

func (t *Tween) Kill() *Tween {
	t.BaseTween.Kill()
	return t
}

// --- body interface --------------------------------------------------

func (t *Tween) firesOwnEdges() bool { return true }

func (t *Tween) buildBody() {
	if t.built {
		return
	}
	t.built = true
	if t.target == nil {
		return
	}

	var acc accessor.Accessor
	var ok bool
	if t.castClass != nil {
		acc, ok = accessor.ResolveClass(t.castClass)
	} else {
		acc, ok = accessor.Resolve(t.target)
	}
	if !ok {
		panicKind(ErrNoAccessor, "no accessor registered for target of type %T", t.target)
	}
	t.acc = acc

	limit := CombinedAttrsLimit()
	probe := make([]float64, limit+1)
	n := acc.GetValues(t.target, t.typeCode, probe)
	if n > limit {
		panicKind(ErrCombinedAttrsOverflow, "accessor reports %d components for type %d, limit is %d", n, t.typeCode, limit)
	}
	if t.combinedAttrsCnt == 0 {
		t.combinedAttrsCnt = n
	} else if t.combinedAttrsCnt != n {
		panicKind(ErrCombinedAttrsOverflow, "target declares %d components but accessor reports %d for type %d", t.combinedAttrsCnt, n, t.typeCode)
	}
	t.startValues = make([]float64, t.combinedAttrsCnt)
	t.valueBuf = make([]float64, t.combinedAttrsCnt)
}

func (t *Tween) initializeBody() {
	if t.target == nil {
		return
	}
	t.acc.GetValues(t.target, t.typeCode, t.startValues)
	if t.isRelative {
		for i := range t.targetValues {
			t.targetValues[i] += t.startValues[i]
		}
		for _, wp := range t.waypoints {
			for i := range wp {
				if i < len(t.startValues) {
					wp[i] += t.startValues[i]
				}
			}
		}
	}
	if t.isFrom {
		t.startValues, t.targetValues = t.targetValues, t.startValues
	}
}

func (t *Tween) enterIterationBody(forward bool) {}

func (t *Tween) updateBody(localDelta float64, forward bool) {
	if t.target == nil || t.combinedAttrsCnt == 0 {
		return
	}

	reversed := t.isYoyo && t.iterIndex%2 == 1

	var u float64
	if t.duration <= epsilon {
		if forward != reversed {
			u = 1
		} else {
			u = 0
		}
	} else {
		u = t.currentTime / t.duration
		if u < 0 {
			u = 0
		} else if u > 1 {
			u = 1
		}
		if reversed {
			u = 1 - u
		}
	}

	progress := u
	if t.easeFn != nil {
		progress = t.easeFn(u)
	}

	n := t.combinedAttrsCnt
	if t.pathFn != nil && len(t.waypoints) > 0 {
		need := 2 + len(t.waypoints)
		if cap(t.pointBuf) < need {
			t.pointBuf = make([]float64, need)
		}
		pts := t.pointBuf[:need]
		for i := 0; i < n; i++ {
			pts[0] = t.startValues[i]
			for w := range t.waypoints {
				pts[1+w] = t.waypoints[w][i]
			}
			pts[need-1] = t.targetValues[i]
			t.valueBuf[i] = t.pathFn(progress, pts, need)
		}
	} else {
		for i := 0; i < n; i++ {
			t.valueBuf[i] = t.startValues[i] + progress*(t.targetValues[i]-t.startValues[i])
		}
	}
	t.acc.SetValues(t.target, t.typeCode, t.valueBuf)
}

func (t *Tween) killBody() {}

func (t *Tween) resetBody() {
	t.target = nil
	t.typeCode = 0
	t.castClass = nil
	t.acc = nil
	t.easeFn = nil
	t.pathFn = nil
	t.isFrom = false
	t.isRelative = false
	t.combinedAttrsCnt = 0
	t.startValues = nil
	t.targetValues = nil
	t.waypoints = nil
	t.valueBuf = nil
	t.pointBuf = nil
}
