package strata

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Progress normalizes a relative offset against a duration, clamped to
// [0, 1]. Returns 0 when duration is zero or negative, or when either input
// is NaN, so degenerate sections produce a stable "not started" value.
func Progress(offset, duration float64) float64 {
	if duration <= 0 || math.IsNaN(offset) || math.IsNaN(duration) {
		return 0
	}
	p := offset / duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Eased builds a Controller that maps the section's clamped progress through
// a gween easing function and hands the eased 0..1 value to apply. Typical
// use is reveal animations:
//
//	strata.Eased(ease.OutQuad, func(v float64) { panel.Alpha = v })
func Eased(fn ease.TweenFunc, apply func(eased float64)) Controller {
	return func(offset, duration float64) {
		p := Progress(offset, duration)
		apply(float64(fn(float32(p), 0, 1, 1)))
	}
}

// Parallax builds a Controller that applies the raw relative offset scaled
// by factor. The value is unclamped: layers keep drifting before and after
// their section, which is what gives parallax its depth.
func Parallax(factor float64, apply func(shift float64)) Controller {
	return func(offset, _ float64) {
		apply(offset * factor)
	}
}

// Windowed forwards to c only while the offset lies inside [0, duration).
// The Timeline itself never filters; wrap a controller with Windowed when it
// should only run while its section is on screen.
func Windowed(c Controller) Controller {
	return func(offset, duration float64) {
		if offset >= 0 && offset < duration {
			c(offset, duration)
		}
	}
}

// Guarded isolates a panicking controller: the panic is recovered, passed to
// onPanic (which may be nil to swallow it), and the dispatch cycle continues
// with the remaining sections. The Timeline's default is fail-fast
// propagation; Guarded is the explicit opt-in boundary for hosts that need
// one bad section not to take down the rest.
func Guarded(c Controller, onPanic func(recovered any)) Controller {
	return func(offset, duration float64) {
		defer func() {
			if r := recover(); r != nil && onPanic != nil {
				onPanic(r)
			}
		}()
		c(offset, duration)
	}
}
