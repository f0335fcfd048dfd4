package strata

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// --- Subscriber registry ---

type scrollHandler struct {
	id uint32
	fn func()
}

// notifier is the shared subscriber registry and offset store embedded by the
// concrete sources. Notification order is registration order.
type notifier struct {
	offset   float64
	handlers []scrollHandler
	nextID   uint32
}

// Offset returns the current absolute scroll position.
func (n *notifier) Offset() float64 {
	return n.offset
}

// Subscribe registers a callback fired on every scroll notification.
func (n *notifier) Subscribe(fn func()) SubscriptionHandle {
	n.nextID++
	n.handlers = append(n.handlers, scrollHandler{id: n.nextID, fn: fn})
	return &scrollHandle{id: n.nextID, owner: n}
}

// notify invokes all subscribers in registration order. A panicking
// subscriber aborts the remainder of the cycle and propagates to the caller.
//
// The handler list is snapshotted first so a subscriber may remove itself
// (or release its Timeline) mid-notification: removals shift the live slice,
// and a cloned slice keeps the iteration stable. Subscribers added during a
// cycle first fire on the next one.
func (n *notifier) notify() {
	handlers := make([]scrollHandler, len(n.handlers))
	copy(handlers, n.handlers)
	for i := range handlers {
		handlers[i].fn()
	}
}

// scrollHandle removes one registered callback from its notifier.
type scrollHandle struct {
	id    uint32
	owner *notifier
}

// Remove unregisters the callback. Safe to call more than once.
func (h *scrollHandle) Remove() {
	if h.owner == nil {
		return
	}
	s := h.owner.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = scrollHandler{}
			h.owner.handlers = s[:len(s)-1]
			break
		}
	}
	h.owner = nil
}

// --- ManualSource ---

// ManualSource is a ScrollSource whose position is set programmatically.
// It is the deterministic driver for tests, scroll scripts, and hosts that
// compute scroll position themselves.
type ManualSource struct {
	notifier
}

// NewManualSource creates a ManualSource at offset 0.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// SetOffset moves the scroll position to v and notifies subscribers.
// Setting the current offset again is a no-op (no notification).
func (m *ManualSource) SetOffset(v float64) {
	if v == m.offset {
		return
	}
	m.offset = v
	m.notify()
}

// ScrollBy moves the scroll position by delta and notifies subscribers.
// A zero delta is a no-op.
func (m *ManualSource) ScrollBy(delta float64) {
	m.SetOffset(m.offset + delta)
}

// Notify fires subscribers without changing the offset. Useful for
// re-dispatching after sections' consumers change state out of band.
func (m *ManualSource) Notify() {
	m.notify()
}

// --- WheelSource ---

const defaultWheelSpeed = 40

// WheelSource derives the scroll position from the mouse wheel via
// [ebiten.Wheel]. Pump it once per frame from the host game's Update; each
// pump reads the wheel delta, scales it by Speed, clamps to [Min, Max] when
// BoundsEnabled, and notifies subscribers at most once if the offset moved.
//
// Wheel-down scrolls forward (increasing offset), matching page scrolling.
type WheelSource struct {
	notifier

	// Speed is the offset change per wheel notch.
	Speed float64

	// BoundsEnabled clamps the offset to [Min, Max].
	BoundsEnabled bool
	Min, Max      float64
}

// NewWheelSource creates a WheelSource with the default speed and no bounds.
func NewWheelSource() *WheelSource {
	return &WheelSource{Speed: defaultWheelSpeed}
}

// SetBounds enables clamping of the offset to [lo, hi] and applies it to
// the current offset immediately.
func (w *WheelSource) SetBounds(lo, hi float64) {
	w.BoundsEnabled = true
	w.Min, w.Max = lo, hi
	w.applyDelta(0)
}

// Update reads this frame's wheel delta and advances the offset.
// Call once per frame from the host game loop.
func (w *WheelSource) Update() {
	_, dy := ebiten.Wheel()
	w.applyDelta(-dy * w.Speed)
}

// applyDelta moves the offset, clamps it, and notifies if it changed.
func (w *WheelSource) applyDelta(delta float64) {
	next := w.offset + delta
	if w.BoundsEnabled {
		next = math.Max(w.Min, math.Min(next, w.Max))
	}
	if next == w.offset {
		return
	}
	w.offset = next
	w.notify()
}

// --- SmoothSource ---

// SmoothSource animates the scroll position toward targets with gween
// easing, notifying subscribers on every frame the position moves. Pump it
// with Update(dt) once per frame.
type SmoothSource struct {
	notifier

	tween *gween.Tween
}

// NewSmoothSource creates a SmoothSource at offset 0.
func NewSmoothSource() *SmoothSource {
	return &SmoothSource{}
}

// ScrollTo animates from the current offset to target over duration seconds.
// A new call replaces any animation in flight.
func (s *SmoothSource) ScrollTo(target float64, duration float32, easeFn ease.TweenFunc) {
	s.tween = gween.New(float32(s.offset), float32(target), duration, easeFn)
}

// SetOffset jumps to v immediately, cancelling any animation in flight,
// and notifies subscribers if the offset changed.
func (s *SmoothSource) SetOffset(v float64) {
	s.tween = nil
	if v == s.offset {
		return
	}
	s.offset = v
	s.notify()
}

// Animating reports whether a scroll animation is in flight.
func (s *SmoothSource) Animating() bool {
	return s.tween != nil
}

// Update advances the active animation by dt seconds. Call once per frame
// from the host game loop; a no-op while no animation is in flight.
func (s *SmoothSource) Update(dt float32) {
	if s.tween == nil {
		return
	}
	val, done := s.tween.Update(dt)
	if done {
		s.tween = nil
	}
	next := float64(val)
	if next != s.offset {
		s.offset = next
		s.notify()
	}
}
