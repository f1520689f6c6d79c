package tween

import (
	"fmt"
	"sync"
)

// Manager owns a flat, insertion-ordered list of root BaseTweens (leaves or
// timelines detached from any parent) and drives them from a single
// external clock via Update. It never touches a node owned by a Timeline;
// those are advanced by their parent's own updateBody.
type Manager struct {
	mu       sync.Mutex
	roots    []*BaseTween
	isPaused bool
}

// NewManager returns an empty, ready-to-use Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add builds n if it hasn't been built yet, marks it started, and appends
// it to the root list. Panics BadNesting if n already belongs to a
// Timeline.
func (m *Manager) Add(n Node) *Manager {
	b := n.base()
	if b.owner != nil {
		panicKind(ErrBadNesting, "tween already belongs to a timeline")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !b.built {
		b.body.buildBody()
	}
	b.isStarted = true
	m.roots = append(m.roots, b)
	return m
}

// Update advances every non-paused, non-killed root by delta, in insertion
// order, then reclaims anything that finished or was killed during this
// pass back to its pool. A no-op while the manager itself is paused.
func (m *Manager) Update(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isPaused {
		return
	}
	for _, b := range m.roots {
		if b.isPaused || b.isKilled {
			continue
		}
		b.Advance(delta)
	}
	m.sweep()
}

// sweep compacts m.roots in place, preserving insertion order among the
// survivors (a stable filter rather than the source's literal swap-remove,
// so the ordering guarantee in Update's doc comment still holds after
// reclamation).
func (m *Manager) sweep() {
	kept := m.roots[:0]
	for _, b := range m.roots {
		if b.isKilled || b.isFinished {
			b.Free()
			continue
		}
		kept = append(kept, b)
	}
	m.roots = kept
}

// KillAll kills every root (and, transitively, every Timeline's children).
func (m *Manager) KillAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.roots {
		b.Kill()
	}
}

// KillTarget kills every Tween (root or nested in a Timeline) whose target
// is target. A nil typeCode matches any type code on that target.
func (m *Manager) KillTarget(target any, typeCode *int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.roots {
		killTargetIn(b, target, typeCode)
	}
}

func killTargetIn(b *BaseTween, target any, typeCode *int) {
	switch v := b.body.(type) {
	case *Tween:
		if v.target == target && (typeCode == nil || v.typeCode == *typeCode) {
			b.Kill()
		}
	case *Timeline:
		for _, c := range v.children {
			killTargetIn(c, target, typeCode)
		}
	}
}

// ContainsTarget reports whether any live Tween (root or nested) animates
// target. A nil typeCode matches any type code on that target.
func (m *Manager) ContainsTarget(target any, typeCode *int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.roots {
		if containsTargetIn(b, target, typeCode) {
			return true
		}
	}
	return false
}

func containsTargetIn(b *BaseTween, target any, typeCode *int) bool {
	switch v := b.body.(type) {
	case *Tween:
		return v.target == target && (typeCode == nil || v.typeCode == *typeCode)
	case *Timeline:
		for _, c := range v.children {
			if containsTargetIn(c, target, typeCode) {
				return true
			}
		}
	}
	return false
}

// Pause stops Update from advancing any root until Resume.
func (m *Manager) Pause() {
	m.mu.Lock()
	m.isPaused = true
	m.mu.Unlock()
}

// Resume undoes Pause.
func (m *Manager) Resume() {
	m.mu.Lock()
	m.isPaused = false
	m.mu.Unlock()
}

// Len returns the number of roots currently owned by the manager.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.roots)
}

// RunningTweensCount counts every leaf Tween reachable from a root,
// including ones nested inside Timelines.
func (m *Manager) RunningTweensCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.roots {
		n += countTweens(b)
	}
	return n
}

func countTweens(b *BaseTween) int {
	switch v := b.body.(type) {
	case *Tween:
		return 1
	case *Timeline:
		n := 0
		for _, c := range v.children {
			n += countTweens(c)
		}
		return n
	}
	return 0
}

// RunningTimelinesCount counts every Timeline reachable from a root,
// including nested ones.
func (m *Manager) RunningTimelinesCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, b := range m.roots {
		n += countTimelines(b)
	}
	return n
}

func countTimelines(b *BaseTween) int {
	tl, ok := b.body.(*Timeline)
	if !ok {
		return 0
	}
	n := 1
	for _, c := range tl.children {
		n += countTimelines(c)
	}
	return n
}

func (m *Manager) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("Manager{roots=%d, paused=%v}", len(m.roots), m.isPaused)
}
