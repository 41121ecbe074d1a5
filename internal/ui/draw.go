package ui

import rl "github.com/gen2brain/raylib-go/raylib"

type CommandKind int

const (
	CmdRect CommandKind = iota
	CmdRoundRect
	CmdGradient
	CmdText
	CmdTexture
	CmdClipBegin
	CmdClipEnd
)

// Command is one draw intent. Which fields matter depends on Kind.
type Command struct {
	Kind    CommandKind
	Rect    rl.Rectangle
	Color   rl.Color
	Color2  rl.Color // gradient bottom
	Text    string
	Size    float32 // text size or corner roundness
	Texture string
}

// DrawList collects the intents of one frame in paint order.
type DrawList struct {
	Commands []Command
}

func (d *DrawList) Reset() { d.Commands = d.Commands[:0] }

func (d *DrawList) Rect(r rl.Rectangle, c rl.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdRect, Rect: r, Color: c})
}

func (d *DrawList) RoundRect(r rl.Rectangle, roundness float32, c rl.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdRoundRect, Rect: r, Size: roundness, Color: c})
}

func (d *DrawList) Gradient(r rl.Rectangle, top, bottom rl.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdGradient, Rect: r, Color: top, Color2: bottom})
}

func (d *DrawList) Text(text string, at rl.Vector2, size float32, c rl.Color) {
	d.Commands = append(d.Commands, Command{
		Kind:  CmdText,
		Rect:  rl.Rectangle{X: at.X, Y: at.Y},
		Text:  text,
		Size:  size,
		Color: c,
	})
}

// Texture draws the named texture stretched over r.
func (d *DrawList) Texture(name string, r rl.Rectangle, tint rl.Color) {
	d.Commands = append(d.Commands, Command{Kind: CmdTexture, Rect: r, Texture: name, Color: tint})
}

func (d *DrawList) BeginClip(r rl.Rectangle) {
	d.Commands = append(d.Commands, Command{Kind: CmdClipBegin, Rect: r})
}

func (d *DrawList) EndClip() {
	d.Commands = append(d.Commands, Command{Kind: CmdClipEnd})
}
