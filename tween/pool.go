package tween

import "sync"

// Process-wide pools for the two BaseTween variants, avoiding per-frame
// allocation in real-time driver loops. New objects wire body back to
// themselves once, at construction; Free never touches that link, only the
// caller-visible fields.
var (
	tweenPool = sync.Pool{New: func() any {
		t := &Tween{}
		t.body = t
		return t
	}}
	timelinePool = sync.Pool{New: func() any {
		tl := &Timeline{}
		tl.body = tl
		return tl
	}}
)

func acquireTween() *Tween {
	return tweenPool.Get().(*Tween)
}

func putTween(t *Tween) {
	tweenPool.Put(t)
}

func acquireTimeline() *Timeline {
	return timelinePool.Get().(*Timeline)
}

func putTimeline(tl *Timeline) {
	timelinePool.Put(tl)
}

// EnsurePoolCapacity pre-warms both pools with n freshly allocated, unused
// instances so the first n concurrent tweens and n concurrent timelines
// don't pay an allocation. It is a soft minimum: sync.Pool may still
// discard entries under memory pressure.
func EnsurePoolCapacity(n int) {
	tweens := make([]*Tween, 0, n)
	timelines := make([]*Timeline, 0, n)
	for i := 0; i < n; i++ {
		tweens = append(tweens, acquireTween())
		timelines = append(timelines, acquireTimeline())
	}
	for _, t := range tweens {
		putTween(t)
	}
	for _, tl := range timelines {
		putTimeline(tl)
	}
}
