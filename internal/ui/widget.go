package ui

import (
	"strconv"

	"github.com/sockentrocken/mallet/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBackspace = input.KeyboardKey(rl.KeyBackspace)

// card draws the raised, rounded body shared by most widgets.
func (c *Context) card(rect rl.Rectangle, rec *Record, color rl.Color) rl.Rectangle {
	shape := rec.Shape(rect)
	c.Draw.Gradient(rl.Rectangle{X: rect.X, Y: rect.Y + rect.Height, Width: rect.Width, Height: shadowDepth}, shadowTop, shadowEnd)
	c.Draw.RoundRect(shape, cardRound, rec.Tint(color))
	return shape
}

func (c *Context) text(text string, at rl.Vector2, color rl.Color) {
	if text != "" {
		c.Draw.Text(text, at, TextSize, color)
	}
}

// ButtonShape draws a button of the given size at the cursor. A disabled
// button is dimmed and never clicks.
func (c *Context) ButtonShape(id string, size rl.Vector2, enabled bool) (State, *Record) {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: size.X, Height: size.Y}
	rec := c.Record(id)
	state := c.Resolve(rect)
	if !enabled {
		state.Click = false
	}
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus && enabled)

	if c.visible(rect) {
		color := PrimaryMain
		if !enabled {
			color = rl.Color{R: color.R / 2, G: color.G / 2, B: color.B / 2, A: color.A}
		}
		shape := c.card(rect, rec, color)
		c.text(Label(id), rl.Vector2{X: shape.X + buttonTextShift.X, Y: shape.Y + buttonTextShift.Y}, TextLight)
	}

	c.advance(size.Y, buttonGap)
	return state, rec
}

// Button is a standard-size button; it reports a click.
func (c *Context) Button(id string) bool {
	state, _ := c.ButtonShape(id, ButtonShape, true)
	return state.Click
}

// ButtonActive is a button that can be disabled.
func (c *Context) ButtonActive(id string, enabled bool) bool {
	state, _ := c.ButtonShape(id, ButtonShape, enabled)
	return state.Click
}

// ImageButton draws a square button filled with a texture.
func (c *Context) ImageButton(id, texture string, size float32) bool {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: size, Height: size}
	rec := c.Record(id)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus)

	if c.visible(rect) {
		shape := c.card(rect, rec, TextLight)
		c.Draw.Texture(texture, shape, rec.Tint(rl.White))
	}

	c.advance(size, buttonGap)
	return state.Click
}

// Toggle flips *value on click and reports whether it changed.
func (c *Context) Toggle(id string, value *bool) bool {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: ToggleShape.X, Height: ToggleShape.Y}
	rec := c.Record(id)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus)

	if state.Click {
		*value = !*value
	}

	if c.visible(rect) {
		shape := c.card(rect, rec, TextLight)
		if *value {
			inner := rl.Rectangle{X: shape.X + 4, Y: shape.Y + 4, Width: shape.Width - 8, Height: shape.Height - 8}
			c.Draw.RoundRect(inner, cardRound, PrimaryMain)
		}
		c.text(Label(id), rl.Vector2{X: rect.X + rect.Width + toggleGap, Y: rect.Y}, TextDark)
	}

	c.advance(ToggleShape.Y, toggleGap)
	return state.Click
}

// Slider maps the cursor position onto [low, high] while it holds
// capture. It reports whether *value changed.
func (c *Context) Slider(id string, value *float32, low, high float32) bool {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: SliderShape.X, Height: SliderShape.Y}
	rec := c.Record(id)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus)

	old := *value
	if state.Focus && high > low {
		t := clamp01((c.frame.Mouse.X - rect.X) / rect.Width)
		*value = low + t*(high-low)
	}

	if c.visible(rect) {
		track := rl.Rectangle{X: rect.X, Y: rect.Y + (rect.Height-sliderTrack)/2, Width: rect.Width, Height: sliderTrack}
		c.Draw.Rect(track, rec.Tint(TextDark))
		if high > low {
			t := clamp01((*value - low) / (high - low))
			knob := rec.Shape(rl.Rectangle{X: rect.X + t*(rect.Width-ToggleShape.X), Y: rect.Y, Width: ToggleShape.X, Height: rect.Height})
			c.Draw.RoundRect(knob, cardRound, rec.Tint(PrimaryMain))
		}
		c.text(Label(id), rl.Vector2{X: rect.X + rect.Width + sliderGap, Y: rect.Y}, TextDark)
	}

	c.advance(SliderShape.Y, sliderGap)
	return *value != old
}

// field resolves the box of a text entry.
func (c *Context) field(id string) (State, *Record, rl.Rectangle) {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: RecordShape.X, Height: RecordShape.Y}
	rec := c.Record(id)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus)
	return state, rec, rect
}

func (c *Context) drawField(id, shown string, rec *Record, rect rl.Rectangle, caret bool) {
	if !c.visible(rect) {
		return
	}
	shape := c.card(rect, rec, TextLight)
	c.text(shown, rl.Vector2{X: shape.X + 4, Y: shape.Y}, TextDark)
	if caret {
		width := c.Font.MeasureText(shown, TextSize).X
		c.Draw.Rect(rl.Rectangle{
			X:      shape.X + 4 + width + 2,
			Y:      shape.Y + (shape.Height-recordCaret.Y)/2,
			Width:  recordCaret.X,
			Height: recordCaret.Y,
		}, TextDark)
	}
	c.text(Label(id), rl.Vector2{X: rect.X + rect.Width + recordGap, Y: rect.Y}, TextDark)
}

// edit applies this frame's typed characters and backspace to s.
func (c *Context) edit(s string) string {
	for _, r := range c.frame.Chars {
		s += string(r)
	}
	if c.frame.Pressed(keyBackspace) && s != "" {
		runes := []rune(s)
		s = string(runes[:len(runes)-1])
	}
	return s
}

// TextField edits *value while hovered. It reports whether *value
// changed.
func (c *Context) TextField(id string, value *string) bool {
	state, rec, rect := c.field(id)
	old := *value
	if state.Hover {
		*value = c.edit(*value)
	}
	c.drawField(id, *value, rec, rect, state.Hover)
	c.advance(RecordShape.Y, recordGap)
	return *value != old
}

// NumberField edits *value as text while hovered. Text that does not
// parse leaves *value unchanged until it does.
func (c *Context) NumberField(id string, value *float32) bool {
	state, rec, rect := c.field(id)
	old := *value

	shown := strconv.FormatFloat(float64(*value), 'g', -1, 32)
	if state.Hover {
		if !rec.editing {
			rec.text = shown
			rec.editing = true
		}
		rec.text = c.edit(rec.text)
		if parsed, err := strconv.ParseFloat(rec.text, 32); err == nil {
			*value = float32(parsed)
		}
		shown = rec.text
	} else {
		rec.editing = false
	}

	c.drawField(id, shown, rec, rect, state.Hover)
	c.advance(RecordShape.Y, recordGap)
	return *value != old
}

// Text draws a line of text at the cursor.
func (c *Context) Text(text string, color rl.Color) {
	size := c.Font.MeasureText(text, TextSize)
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: size.X, Height: size.Y}
	if c.visible(rect) {
		c.text(text, c.point, color)
	}
	c.advance(size.Y, textGap)
}

// Drop is a drawer: a small button that opens and closes body.
func (c *Context) Drop(id string, body func()) bool {
	rect := rl.Rectangle{X: c.point.X, Y: c.point.Y, Width: DropShape.X, Height: DropShape.Y}
	rec := c.Record(id)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover, state.Focus)

	if state.Click {
		rec.Active = !rec.Active
	}

	if c.visible(rect) {
		shape := c.card(rect, rec, PrimarySide)
		mark := "+"
		if rec.Active {
			mark = "-"
		}
		c.text(mark, rl.Vector2{X: shape.X + 7, Y: shape.Y}, TextLight)
		c.text(Label(id), rl.Vector2{X: rect.X + rect.Width + toggleGap, Y: rect.Y}, TextDark)
	}

	c.advance(DropShape.Y, toggleGap)
	if rec.Active {
		body()
	}
	return rec.Active
}

// Tool draws a toolbar icon button at p. It reports a click or a press of
// its binding. The tooltip shows the name and binding while hovered.
func (c *Context) Tool(p rl.Vector2, name, icon string, binding input.Binding, active bool) bool {
	rect := rl.Rectangle{X: p.X, Y: p.Y, Width: ToolShape.X, Height: ToolShape.Y}
	rec := c.Record(name)
	state := c.Resolve(rect)
	rec.Animate(c.frame.FrameTime, state.Hover || active, state.Focus)

	color := PrimaryMain
	if active {
		color = PrimarySide
	}
	shape := c.card(rect, rec, color)
	c.Draw.Texture(icon, shape, TextLight)

	if state.Hover {
		c.ToolTip(c.frame.Mouse, name+" ("+binding.String()+")")
	}

	return state.Click || binding.Pressed(c.frame)
}

// ToolTip queues a text card near p, kept inside the screen. Tooltips
// are drawn after everything else.
func (c *Context) ToolTip(p rl.Vector2, text string) {
	size := c.Font.MeasureText(text, TextSize)
	rect := rl.Rectangle{X: p.X + 16, Y: p.Y + 16, Width: size.X + 16, Height: size.Y + 8}
	rect = clampRect(rect, c.frame.Screen)

	c.overlay = append(c.overlay,
		Command{Kind: CmdRoundRect, Rect: rect, Size: cardRound, Color: TextDark},
		Command{Kind: CmdText, Rect: rl.Rectangle{X: rect.X + 8, Y: rect.Y + 4}, Text: text, Size: TextSize, Color: TextLight},
	)
}

// clampRect moves r so it fits inside a screen of the given size.
func clampRect(r rl.Rectangle, screen rl.Vector2) rl.Rectangle {
	if screen.X <= 0 || screen.Y <= 0 {
		return r
	}
	if r.X+r.Width > screen.X {
		r.X = screen.X - r.Width
	}
	if r.Y+r.Height > screen.Y {
		r.Y = screen.Y - r.Height
	}
	r.X = max(r.X, 0)
	r.Y = max(r.Y, 0)
	return r
}
