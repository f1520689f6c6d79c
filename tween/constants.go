package tween

import "sync"

// Infinity is the sentinel repeatCount value meaning "repeat forever".
const Infinity = -1

// Trigger is a bitmask of callback edges a BaseTween can fire.
type Trigger uint16

const (
	TriggerBegin Trigger = 1 << iota
	TriggerStart
	TriggerEnd
	TriggerComplete
	TriggerBackStart
	TriggerBackEnd
	TriggerBackComplete

	TriggerAny = TriggerBegin | TriggerStart | TriggerEnd | TriggerComplete |
		TriggerBackStart | TriggerBackEnd | TriggerBackComplete
)

// Callback receives the trigger that fired and the BaseTween that fired it
// (embedded in either a *Tween or a *Timeline; use Owner() to recover the
// concrete leaf or composite).
type Callback func(trigger Trigger, source *BaseTween)

const epsilon = 1e-9

var limits struct {
	mu             sync.RWMutex
	combinedAttrs  int
	waypoints      int
}

func init() {
	limits.combinedAttrs = 3
	limits.waypoints = 0
}

// CombinedAttrsLimit returns the process-wide cap on a Tween's component
// count, defaulting to 3.
func CombinedAttrsLimit() int {
	limits.mu.RLock()
	defer limits.mu.RUnlock()
	return limits.combinedAttrs
}

// SetCombinedAttrsLimit raises or lowers the process-wide component-count
// cap. Applications animating vectors wider than 3 components must call
// this before building any Tween with that many components.
func SetCombinedAttrsLimit(n int) {
	limits.mu.Lock()
	defer limits.mu.Unlock()
	limits.combinedAttrs = n
}

// WaypointsLimit returns the process-wide cap on waypoints per Tween,
// defaulting to 0 (no waypoints).
func WaypointsLimit() int {
	limits.mu.RLock()
	defer limits.mu.RUnlock()
	return limits.waypoints
}

// SetWaypointsLimit raises or lowers the process-wide waypoint-count cap.
func SetWaypointsLimit(n int) {
	limits.mu.Lock()
	defer limits.mu.Unlock()
	limits.waypoints = n
}
