// Package strata is a scroll-position timeline for driving parallax, reveal,
// and other scroll-linked effects in [Ebitengine] games and anything else
// with a scroll offset.
//
// A timeline is an ordered list of sections. Each section has a mount point
// (an offset relative to the end of the previous section), a duration (the
// scroll extent it spans), and a controller callback. At construction the
// mount points are folded into absolute anchors; on every scroll change each
// controller receives how far the viewport has progressed past its section's
// anchor, alongside the section's duration. What the controller does with
// that offset (move a layer, fade a panel, nothing at all) is entirely up
// to it.
//
// # Quick start
//
//	src := strata.NewWheelSource()
//	tl := strata.NewTimeline(src, []strata.Section{
//		{Duration: 500, Controller: strata.Parallax(0.3, moveSky)},
//		{Duration: 800, Controller: strata.Eased(ease.OutQuad, fadeTitle)},
//	})
//	defer tl.Release()
//
// then pump src.Update() once per frame from your game loop.
//
// # Scroll sources
//
// A Timeline is driven by a [ScrollSource]: anything that can report the
// current offset and say when it changed. Three are built in:
// [WheelSource] (mouse wheel via [ebiten.Wheel]), [SmoothSource] (animated
// scrolling with [gween] easing), and [ManualSource] (programmatic, the
// deterministic choice for tests and [ScrollScript] playback). Implement the
// interface to bind any other host.
//
// # Controllers
//
// Controllers receive the raw relative offset on every notification, with no
// active-window filtering: negative and past-the-end offsets included.
// [Progress], [Eased], [Parallax], [Windowed], and [Guarded] cover the
// common shaping policies as opt-in wrappers.
//
// [Ebitengine]: https://ebitengine.org
// [ebiten.Wheel]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#Wheel
// [gween]: https://github.com/tanema/gween
package strata
