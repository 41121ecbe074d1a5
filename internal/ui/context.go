// Package ui is an immediate-mode widget layer drawn through raylib.
// Widgets are re-declared every frame; their animation state lives in a
// Store keyed by widget identity, and exclusive mouse capture is tracked
// by the order in which widgets are resolved.
package ui

import (
	"log"
	"strings"

	"github.com/sockentrocken/mallet/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Measurer reports the pixel size of a string at a font size.
type Measurer interface {
	MeasureText(text string, size float32) rl.Vector2
}

// State is the outcome of resolving one widget rectangle.
type State struct {
	Hover bool
	Focus bool
	Click bool
}

type Context struct {
	Store *Store
	Draw  *DrawList
	Font  Measurer

	// Primary is the button that presses widgets.
	Primary input.Key

	// Debug logs identities that are claimed twice in one frame.
	Debug bool

	frame   *input.Frame
	point   rl.Vector2
	clip    *rl.Rectangle
	overlay []Command

	count    int  // widgets resolved this frame; the next capture token
	captured int  // token holding capture
	capture  bool // whether captured is valid
	reissued bool // captured token was resolved again this frame

	seen map[string]bool
}

func NewContext(font Measurer) *Context {
	return &Context{
		Store:   NewStore(),
		Draw:    &DrawList{},
		Font:    font,
		Primary: input.MouseLeft,
		frame:   input.NewFrame(),
		seen:    make(map[string]bool),
	}
}

// BeginFrame starts a frame with the given input snapshot. A capture
// whose owner was not resolved during the previous frame is dropped.
func (c *Context) BeginFrame(f *input.Frame) {
	if c.capture && !c.reissued {
		c.capture = false
	}
	c.reissued = false
	c.frame = f
	c.count = 0
	c.point = rl.Vector2{}
	c.clip = nil
	c.overlay = c.overlay[:0]
	c.Draw.Reset()
	clear(c.seen)
}

// EndFrame appends deferred overlays (tooltips) and returns the frame's
// draw list.
func (c *Context) EndFrame() *DrawList {
	c.Draw.Commands = append(c.Draw.Commands, c.overlay...)
	c.overlay = c.overlay[:0]
	return c.Draw
}

func (c *Context) Frame() *input.Frame { return c.frame }

// Point moves the layout cursor.
func (c *Context) Point(p rl.Vector2) { c.point = p }

func (c *Context) Cursor() rl.Vector2 { return c.point }

// Clip returns the active clip rectangle, or nil.
func (c *Context) Clip() *rl.Rectangle { return c.clip }

// SetClip replaces the clip rectangle; nil removes it.
func (c *Context) SetClip(r *rl.Rectangle) {
	if r == nil {
		c.clip = nil
		return
	}
	clip := *r
	c.clip = &clip
}

// Count is the number of tokens handed out this frame.
func (c *Context) Count() int { return c.count }

// Captured returns the token holding capture, if any.
func (c *Context) Captured() (int, bool) { return c.captured, c.capture }

// Record returns the record of id and marks the identity as used this
// frame.
func (c *Context) Record(id string) *Record {
	if c.seen[id] && c.Debug {
		log.Printf("ui: widget identity %q used twice in one frame", id)
	}
	c.seen[id] = true
	return c.Store.Get(id)
}

// Resolve computes hover, focus and click for rect and hands out the
// next capture token.
func (c *Context) Resolve(rect rl.Rectangle) State {
	token := c.count
	c.count++

	f := c.frame
	hover := rl.CheckCollisionPointRec(f.Mouse, rect)
	if c.clip != nil {
		hover = hover && rl.CheckCollisionRecs(*c.clip, rect) && rl.CheckCollisionPointRec(f.Mouse, *c.clip)
	}

	if hover && !c.capture && f.Pressed(c.Primary) {
		c.capture = true
		c.captured = token
	}

	state := State{Hover: hover}
	if c.capture && c.captured == token {
		c.reissued = true
		state.Focus = true
		if f.Released(c.Primary) {
			state.Click = hover
			c.capture = false
		}
	}
	return state
}

// skip consumes a token without resolving anything.
func (c *Context) skip() { c.count++ }

// visible reports whether rect is inside the clip region.
func (c *Context) visible(rect rl.Rectangle) bool {
	return c.clip == nil || rl.CheckCollisionRecs(*c.clip, rect)
}

func (c *Context) advance(height, gap float32) {
	c.point.Y += height + gap
}

// Label returns the displayed part of an identity: everything before
// "##". "##Name" hides the label entirely.
func Label(id string) string {
	label, _, _ := strings.Cut(id, "##")
	return label
}
