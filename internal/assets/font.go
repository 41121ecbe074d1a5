package assets

import (
	"log"

	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Font is the UI font. It measures text for the widget layout.
type Font struct {
	rl.Font
	loaded bool
}

// LoadFont loads a TTF at a resolution suited to the UI text size, or
// falls back to raylib's built-in font.
func LoadFont(path string) *Font {
	if path != "" {
		f := rl.LoadFontEx(path, int32(ui.TextSize*2), nil)
		if f.Texture.ID > 0 {
			rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
			log.Printf("assets: loaded font %s", path)
			return &Font{Font: f, loaded: true}
		}
		log.Printf("assets: failed to load font %s, using default", path)
	}
	return &Font{Font: rl.GetFontDefault()}
}

func (f *Font) MeasureText(text string, size float32) rl.Vector2 {
	return rl.MeasureTextEx(f.Font, text, size, ui.TextSpacing)
}

func (f *Font) Unload() {
	if f.loaded {
		rl.UnloadFont(f.Font)
		f.loaded = false
	}
}
