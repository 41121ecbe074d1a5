package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Scroll lays body out inside rect, clipped, and offset by the record's
// scroll position. The content height measured this frame is only used
// from the next frame on, so the thumb trails content changes by one
// frame.
func (c *Context) Scroll(id string, rect rl.Rectangle, body func()) {
	rec := c.Record(id)
	c.skip()

	overflow := max(rec.ScrollExtent-rect.Height, 0)
	start := rl.Vector2{X: rect.X, Y: rect.Y - overflow*rec.ScrollShift}

	c.SetClip(&rect)
	c.Draw.BeginClip(rect)
	c.point = start

	body()

	if thumb, ok := ScrollThumb(rect, rec); ok {
		c.Draw.Rect(thumb, PrimarySide)
	}
	rec.ScrollExtent = c.point.Y - start.Y

	c.Draw.EndClip()
	c.SetClip(nil)

	if rl.CheckCollisionPointRec(c.frame.Mouse, rect) {
		rec.ScrollShift = clamp01(rec.ScrollShift - c.frame.Wheel*wheelSpeed)
	}

	c.point = rl.Vector2{X: rect.X, Y: rect.Y + rect.Height + scrollGap}
}

// ScrollThumb returns the scrollbar thumb for a region, sized from the
// record's stored content extent. It reports false when everything
// fits.
func ScrollThumb(rect rl.Rectangle, rec *Record) (rl.Rectangle, bool) {
	if rec.ScrollExtent <= rect.Height {
		return rl.Rectangle{}, false
	}
	height := rect.Height * rect.Height / rec.ScrollExtent
	return rl.Rectangle{
		X:      rect.X + rect.Width - thumbWidth,
		Y:      rect.Y + (rect.Height-height)*rec.ScrollShift,
		Width:  thumbWidth,
		Height: height,
	}, true
}
