// Package render executes the draw intents of the ui and editor packages
// with raylib.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sockentrocken/mallet/internal/assets"
	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Font  *assets.Font
	Cache *assets.Cache

	targets [4]rl.RenderTexture2D
	sizes   [4]rl.Vector2
}

func New(font *assets.Font, cache *assets.Cache) *Renderer {
	return &Renderer{Font: font, Cache: cache}
}

// UI draws a widget draw list in order.
func (r *Renderer) UI(list *ui.DrawList) {
	for _, c := range list.Commands {
		switch c.Kind {
		case ui.CmdRect:
			rl.DrawRectangleRec(c.Rect, c.Color)
		case ui.CmdRoundRect:
			rl.DrawRectangleRounded(c.Rect, c.Size, ui.RoundSegments, c.Color)
		case ui.CmdGradient:
			rl.DrawRectangleGradientV(int32(c.Rect.X), int32(c.Rect.Y), int32(c.Rect.Width), int32(c.Rect.Height), c.Color, c.Color2)
		case ui.CmdText:
			rl.DrawTextEx(r.Font.Font, c.Text, rl.Vector2{X: c.Rect.X, Y: c.Rect.Y}, c.Size, ui.TextSpacing, c.Color)
		case ui.CmdTexture:
			r.texture(c)
		case ui.CmdClipBegin:
			rl.BeginScissorMode(int32(c.Rect.X), int32(c.Rect.Y), int32(c.Rect.Width), int32(c.Rect.Height))
		case ui.CmdClipEnd:
			rl.EndScissorMode()
		}
	}
}

// texture stretches a cached texture over the command rectangle. An
// icon that never loaded is replaced by its initial.
func (r *Renderer) texture(c ui.Command) {
	if t, ok := r.Cache.Get(c.Texture); ok {
		src := rl.Rectangle{Width: float32(t.Width), Height: float32(t.Height)}
		rl.DrawTexturePro(t, src, c.Rect, rl.Vector2{}, 0, c.Color)
		return
	}

	label := Initial(c.Texture)
	size := r.Font.MeasureText(label, ui.TextSize)
	at := rl.Vector2{
		X: c.Rect.X + (c.Rect.Width-size.X)/2,
		Y: c.Rect.Y + (c.Rect.Height-size.Y)/2,
	}
	rl.DrawTextEx(r.Font.Font, label, at, ui.TextSize, ui.TextSpacing, c.Color)
}

// Initial is the upper-case first letter of the last path element of a
// texture name.
func Initial(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
