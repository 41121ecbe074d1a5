// Package app owns the window and moves between the main menu, the
// editor and the failure screen.
package app

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/sockentrocken/mallet/internal/assets"
	"github.com/sockentrocken/mallet/internal/config"
	"github.com/sockentrocken/mallet/internal/editor"
	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/render"
	"github.com/sockentrocken/mallet/internal/scene"
	"github.com/sockentrocken/mallet/internal/script"
	"github.com/sockentrocken/mallet/internal/ui"
	"github.com/sockentrocken/mallet/internal/watch"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const watchDebounce = 250 * time.Millisecond

type State int

const (
	Initial State = iota
	Success
	Failure
	Closure
)

func (s State) String() string {
	switch s {
	case Initial:
		return "Initial"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Closure:
		return "Closure"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type App struct {
	Config   config.Mallet
	UserPath string

	// Loader starts a game's scripts; Dialogs picks scene files.
	Loader  editor.HostLoader
	Dialogs editor.Dialogs

	State State

	games    []config.Game
	choosing bool
	loadMap  bool
	failure  string

	Editor  *editor.Editor
	watcher *watch.Watcher

	ui     *ui.Context
	font   *assets.Font
	cache  *assets.Cache
	render *render.Renderer
}

func New(cfg config.Mallet, userPath string) *App {
	return &App{
		Config:   cfg,
		UserPath: userPath,
		Loader:   luaLoader,
		Dialogs:  FileDialogs{},
	}
}

func luaLoader(dir string) (script.Host, error) {
	return script.NewLuaHost(dir)
}

// Run opens the window and blocks until the user quits.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.Window.Width, a.Config.Window.Height, "Mallet")
	defer rl.CloseWindow()
	rl.SetExitKey(0)

	a.font = assets.LoadFont(a.Config.Font)
	defer a.font.Unload()
	initStyle(a.font.Font)

	a.cache = assets.NewCache()
	defer a.cache.Unload()
	a.cache.LoadIcons(a.Config.Icons, editor.Icons())

	a.ui = ui.NewContext(a.font)
	a.ui.Debug = a.Config.DebugUI
	a.render = render.New(a.font, a.cache)
	defer a.render.Unload()

	a.refreshGames()

	for a.State != Closure {
		if rl.WindowShouldClose() {
			a.State = Closure
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorBgDark)
		switch a.State {
		case Initial:
			a.menu()
		case Success:
			a.edit()
		case Failure:
			a.failed()
		}
		rl.EndDrawing()
	}

	a.closeEditor()
	return nil
}

// refreshGames rereads every game's info.yaml. Broken games are left out
// of the list and logged.
func (a *App) refreshGames() {
	games, err := a.Config.LoadGames()
	if err != nil {
		log.Printf("app: %v", err)
	}
	a.games = games
}

// Open starts the editor on game g. With loadMap set, the user first
// picks a scene file to start from.
func (a *App) Open(g config.Game, loadMap bool) error {
	bindings, err := input.Load(a.UserPath)
	if err != nil {
		log.Printf("app: %v", err)
	}

	e := editor.New(bindings, a.Config.Options())
	e.GameDir = g.Path
	e.BindingsPath = a.UserPath
	e.Loader = a.Loader
	e.Dialogs = a.Dialogs
	if a.cache != nil {
		e.Cache = a.cache
	}

	if loadMap && a.Dialogs != nil {
		path, err := a.Dialogs.OpenScene()
		if err != nil {
			return fmt.Errorf("choosing map: %w", err)
		}
		w, err := scene.Load(path)
		if err != nil {
			return err
		}
		e.World = w
	}

	if err := e.Reload(); err != nil {
		e.Close()
		return err
	}
	e.RestoreSession(a.sessionPath(g))

	if w, err := watch.New(g.Path, watchDebounce); err != nil {
		log.Printf("app: watching %s: %v", g.Path, err)
	} else {
		a.watcher = w
	}

	a.Editor = e
	a.State = Success
	log.Printf("app: editing %s", g.Name)
	return nil
}

// Fail switches to the failure screen.
func (a *App) Fail(err error) {
	log.Printf("app: %v", err)
	a.closeEditor()
	a.failure = err.Error()
	a.State = Failure
}

// Return leaves the editor or failure screen for the main menu.
func (a *App) Return() {
	a.closeEditor()
	a.failure = ""
	a.choosing = false
	a.refreshGames()
	a.State = Initial
}

func (a *App) closeEditor() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.Editor == nil {
		return
	}
	if err := a.Editor.SaveSession(a.sessionPath(config.Game{Path: a.Editor.GameDir})); err != nil {
		log.Printf("app: %v", err)
	}
	a.Editor.Close()
	a.Editor = nil
}

func (a *App) sessionPath(g config.Game) string {
	return filepath.Join(g.Path, editor.SessionFile)
}

// Frame runs one editor frame against f and returns what to draw.
func (a *App) Frame(f *input.Frame) (*ui.DrawList, *editor.SceneList) {
	e := a.Editor
	if a.watcher != nil && a.watcher.Changed() {
		log.Printf("app: %s changed", a.watcher.Last())
		e.ScriptsChanged()
	}

	a.ui.BeginFrame(f)
	e.Update(f)
	e.DrawUI(a.ui)
	list := a.ui.EndFrame()

	if e.Quit {
		a.Return()
	}
	return list, e.Scene()
}

func (a *App) edit() {
	e := a.Editor
	list, sceneList := a.Frame(input.Poll())
	if a.State != Success {
		return
	}
	a.render.Views(e, sceneList)
	a.render.UI(list)
}
