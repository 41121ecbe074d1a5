package app

import (
	"errors"

	"github.com/sockentrocken/mallet/internal/config"
	"github.com/sockentrocken/mallet/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextLight = rl.NewColor(255, 255, 255, 255)
	colorBorder    = rl.NewColor(50, 50, 65, 255)
)

var (
	menuButton = rl.Vector2{X: 240, Y: 40}
	menuGap    = float32(12)
)

// initStyle themes raygui for the menu and failure screens.
func initStyle(font rl.Font) {
	if font.Texture.ID > 0 {
		gui.SetFont(font)
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextLight))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

// column returns the rectangle of row i of a centered button column.
func column(i int) rl.Rectangle {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	return rl.Rectangle{
		X:      (w - menuButton.X) / 2,
		Y:      h/3 + float32(i)*(menuButton.Y+menuGap),
		Width:  menuButton.X,
		Height: menuButton.Y,
	}
}

// menu draws the main menu, then the game list once the user chose
// between a new and an existing map.
func (a *App) menu() {
	gui.Label(column(-1), "Mallet")

	if !a.choosing {
		if gui.Button(column(0), "New Map") {
			a.choosing, a.loadMap = true, false
		}
		if gui.Button(column(1), "Load Map") {
			a.choosing, a.loadMap = true, true
		}
		if gui.Button(column(2), "Exit") {
			a.State = Closure
		}
		return
	}

	if len(a.games) == 0 {
		gui.Label(column(0), "No games in "+config.FileName)
	}
	for i, g := range a.games {
		if gui.Button(column(i), g.Name) {
			if err := a.Open(g, a.loadMap); err != nil {
				if errors.Is(err, editor.ErrCancelled) {
					return
				}
				a.Fail(err)
			}
			return
		}
	}
	if gui.Button(column(max(len(a.games), 1)), "Back") {
		a.choosing = false
	}
}

func (a *App) failed() {
	w := float32(rl.GetScreenWidth())
	gui.Panel(rl.Rectangle{X: 32, Y: 32, Width: w - 64, Height: column(0).Y - 48}, "Error")
	gui.Label(rl.Rectangle{X: 48, Y: 72, Width: w - 96, Height: 32}, a.failure)

	if gui.Button(column(0), "Return") {
		a.Return()
	}
	if gui.Button(column(1), "Exit") {
		a.State = Closure
	}
}
