// Package accessor is the capability table that lets tween.Tween read and
// write named attribute groups of arbitrary user-owned targets without the
// core knowing anything about their concrete types.
//
// A target class registers an Accessor once, process-wide; lookup at build
// time is an exact type match, falling back to "the target itself is an
// Accessor" (a self-accessor). The source's superclass walk is intentionally
// not implemented here, per the disabled `_findTargetClass` in the original
// (see DESIGN.md, Open Question c).
package accessor

import (
	"reflect"
	"sync"
)

// Accessor exposes a target's named attribute group as a flat array of
// scalar components.
type Accessor interface {
	// GetValues writes the current n components of typeCode's attribute
	// group for target into out and returns n.
	GetValues(target any, typeCode int, out []float64) int
	// SetValues writes values back into typeCode's attribute group for
	// target. len(values) is exactly the n previously returned.
	SetValues(target any, typeCode int, values []float64)
}

var (
	mu       sync.RWMutex
	registry = make(map[reflect.Type]Accessor)
)

// Register associates class (any non-nil value or a nil pointer of the
// target type, e.g. (*Foo)(nil)) with acc. Later registrations for the same
// runtime type overwrite earlier ones.
func Register(class any, acc Accessor) {
	mu.Lock()
	defer mu.Unlock()
	registry[reflect.TypeOf(class)] = acc
}

// Unregister removes any accessor registered for class's type. Present for
// tests that need a clean registry between cases.
func Unregister(class any) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, reflect.TypeOf(class))
}

// Resolve looks up the accessor for target: first an exact registered type
// match, then "target itself implements Accessor". Returns nil, false if
// neither applies.
func Resolve(target any) (Accessor, bool) {
	mu.RLock()
	acc, ok := registry[reflect.TypeOf(target)]
	mu.RUnlock()
	if ok {
		return acc, true
	}
	if self, ok := target.(Accessor); ok {
		return self, true
	}
	return nil, false
}

// ResolveClass looks up the accessor registered for class's own type,
// ignoring any actual target instance. Used by Tween.Cast, where the
// caller wants build() to treat the target as a different registered class
// than reflect.TypeOf(target) would resolve to.
func ResolveClass(class any) (Accessor, bool) {
	mu.RLock()
	acc, ok := registry[reflect.TypeOf(class)]
	mu.RUnlock()
	return acc, ok
}
