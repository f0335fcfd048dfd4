package strata

// Controller receives a section's relative scroll offset and its duration on
// every scroll notification. The relative offset is the current scroll
// position minus the section's resolved anchor; it is delivered raw, so it
// may be negative (the viewport has not reached the section) or beyond the
// duration (the viewport has passed it). Deciding what to do with
// out-of-window offsets is the controller's job, not the Timeline's.
type Controller func(relativeOffset, duration float64)

// Section is one region on a scroll timeline.
//
// MountPoint is relative to the end of the previous section in the list
// (or to scroll position 0 for the first section) and may be negative so a
// section can start before the previous one visually ends. Duration is the
// scroll extent the section spans; it is passed through to the controller
// unvalidated. Neither field is interpreted beyond the layout fold: zero or
// negative durations and arbitrary mount points are accepted as-is.
type Section struct {
	MountPoint float64
	Duration   float64
	Controller Controller

	// anchor is MountPoint resolved into absolute scroll coordinates.
	// Written once during the layout fold, read-only afterward.
	anchor float64
}

// ScrollSource is the host capability a Timeline is driven by: a way to be
// told "the scroll position changed" and a way to read the current position.
// The notification carries no payload; the Timeline reads Offset at dispatch
// time, not from the event.
type ScrollSource interface {
	// Subscribe registers a zero-argument callback invoked on every scroll
	// change. The returned handle removes the subscription.
	Subscribe(fn func()) SubscriptionHandle
	// Offset returns the current absolute scroll position.
	Offset() float64
}

// SubscriptionHandle allows removing a registered scroll callback.
type SubscriptionHandle interface {
	Remove()
}

// Timeline owns an ordered list of sections, resolves their mount points into
// absolute anchors once at construction, and fans the current scroll offset
// out to every section's controller on each notification from its source.
//
// Sections are laid out by a left-to-right fold: each section's anchor is the
// previous section's anchor plus its duration plus this section's mount
// point, starting from 0. Order in the input slice is therefore significant.
//
// A Timeline performs no filtering, batching, or throttling: every controller
// is invoked once per notification, in construction order, synchronously on
// the notifier's execution context. A panicking controller aborts the
// remainder of that cycle and propagates; wrap controllers with [Guarded] to
// opt into per-section isolation.
type Timeline struct {
	sections []Section
	source   ScrollSource
	sub      SubscriptionHandle
}

// NewTimeline resolves the sections' anchors and subscribes to the source.
// The slice is copied; later mutation of the caller's slice has no effect.
//
// An empty (or nil) section list yields a permanently inert Timeline: no
// layout pass runs, nothing is subscribed, and Release is a no-op. Section
// contents are not validated; use [ValidateSections] for a strict check.
func NewTimeline(source ScrollSource, sections []Section) *Timeline {
	t := &Timeline{source: source}
	if len(sections) == 0 {
		return t
	}

	t.sections = make([]Section, len(sections))
	copy(t.sections, sections)

	runningEnd := 0.0
	for i := range t.sections {
		s := &t.sections[i]
		s.anchor = runningEnd + s.MountPoint
		runningEnd = s.anchor + s.Duration
	}

	t.sub = source.Subscribe(t.dispatch)
	return t
}

// dispatch reads the current offset once and delivers each section's relative
// offset in construction order. Runs on the source's notification context.
func (t *Timeline) dispatch() {
	y := t.source.Offset()
	for i := range t.sections {
		s := &t.sections[i]
		s.Controller(y-s.anchor, s.Duration)
	}
}

// Release removes the Timeline's subscription from its source. After Release
// no further dispatches occur. Safe to call more than once; a no-op on an
// inert (empty) Timeline.
func (t *Timeline) Release() {
	if t.sub != nil {
		t.sub.Remove()
		t.sub = nil
	}
}

// Len returns the number of sections on the timeline.
func (t *Timeline) Len() int {
	return len(t.sections)
}

// Anchor returns section i's resolved absolute mount point.
// Panics if i is out of range, matching slice indexing.
func (t *Timeline) Anchor(i int) float64 {
	return t.sections[i].anchor
}
