package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sockentrocken/mallet/internal/config"
	"github.com/sockentrocken/mallet/internal/editor"
	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/scene"
	"github.com/sockentrocken/mallet/internal/script"
	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeFont struct{}

func (fakeFont) MeasureText(text string, size float32) rl.Vector2 {
	return rl.Vector2{X: float32(len(text)) * size / 2, Y: size}
}

type cancelDialogs struct{}

func (cancelDialogs) OpenScene() (string, error) { return "", editor.ErrCancelled }
func (cancelDialogs) SaveScene() (string, error) { return "", editor.ErrCancelled }

func newTestApp(t *testing.T) (*App, config.Game) {
	t.Helper()
	dir := t.TempDir()
	a := New(config.Default(), filepath.Join(dir, "user.yaml"))
	a.Dialogs = nil
	a.Loader = func(string) (script.Host, error) {
		return &script.Static{Templates: []scene.Template{{Name: "light"}}}, nil
	}
	return a, config.Game{Name: "test", Path: dir}
}

func TestOpenAndReturn(t *testing.T) {
	a, g := newTestApp(t)

	if err := a.Open(g, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if a.State != Success {
		t.Errorf("Expected state Success, got %v", a.State)
	}
	if len(a.Editor.Catalog) != 1 {
		t.Errorf("Expected 1 catalog entry, got %d", len(a.Editor.Catalog))
	}

	a.Return()
	if a.State != Initial {
		t.Errorf("Expected state Initial, got %v", a.State)
	}
	if a.Editor != nil {
		t.Error("Expected the editor to be closed")
	}
	if _, err := os.Stat(filepath.Join(g.Path, editor.SessionFile)); err != nil {
		t.Errorf("Expected a session file, got %v", err)
	}
}

func TestOpenLoadMapCancelled(t *testing.T) {
	a, g := newTestApp(t)
	a.Dialogs = cancelDialogs{}

	err := a.Open(g, true)
	if !errors.Is(err, editor.ErrCancelled) {
		t.Errorf("Expected ErrCancelled, got %v", err)
	}
	if a.State != Initial || a.Editor != nil {
		t.Errorf("Expected to stay in the menu, got %v", a.State)
	}
}

func TestOpenScriptFailure(t *testing.T) {
	a, g := newTestApp(t)
	a.Loader = func(string) (script.Host, error) {
		return nil, errors.New("main.lua:3: syntax error")
	}

	err := a.Open(g, false)
	if err == nil {
		t.Fatal("Expected an error from a broken script")
	}
	a.Fail(err)
	if a.State != Failure {
		t.Errorf("Expected state Failure, got %v", a.State)
	}
	if a.failure == "" {
		t.Error("Expected a failure message")
	}

	a.Return()
	if a.State != Initial || a.failure != "" {
		t.Errorf("Expected a clean menu state, got %v %q", a.State, a.failure)
	}
}

func TestFrameQuit(t *testing.T) {
	a, g := newTestApp(t)
	if err := a.Open(g, false); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	a.ui = ui.NewContext(fakeFont{})

	f := input.NewFrame()
	f.Screen = rl.Vector2{X: 1200, Y: 856}
	list, sceneList := a.Frame(f)
	if list == nil || sceneList == nil {
		t.Fatal("Expected draw lists")
	}
	if a.State != Success {
		t.Errorf("Expected state Success, got %v", a.State)
	}

	a.Editor.Quit = true
	a.Frame(f)
	if a.State != Initial {
		t.Errorf("Expected quitting to return to the menu, got %v", a.State)
	}
}

func TestStateString(t *testing.T) {
	if Closure.String() != "Closure" {
		t.Errorf("Expected Closure, got %s", Closure)
	}
	if State(9).String() != "State(9)" {
		t.Errorf("Expected State(9), got %s", State(9))
	}
}
