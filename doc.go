// Package sticky computes stacking sticky headers for vertically scrolling
// terminal views.
//
// Headers inside a scroll view report their frame, measured in the view's
// coordinate space, to a shared Provider. Every header then reads the full
// registry of frames and decides with Compute whether it is pinned to the top
// edge and how far to offset it. When the next header's top edge reaches the
// bottom of the pinned header, the pinned header is pushed up and out instead
// of being overlapped.
//
// Most users only need ScrollView:
//
//	view := sticky.NewScrollView(80, 24, sticky.WithStickyHeaders())
//	for i := 0; i < 50; i++ {
//	    view.AddHeader(fmt.Sprintf("Heading %d", i))
//	    view.AddText(loremIpsum, sticky.WithPadding(1))
//	}
//	buf := sticky.NewBuffer(80, 24)
//	view.ScrollBy(12)
//	view.Render(buf)
//
// Hosts with their own layout can drive Reporter, Provider and Header directly.
package sticky
