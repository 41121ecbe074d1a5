package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	lua "github.com/yuin/gopher-lua"
)

func writeGame(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}

const gameMain = `
local light = require "light"

mallet.map_texture("data/brick.qoi")

mallet.map_entity({
    name = "light",
    info = "A point light.",
    shape = { min = { x = -0.25, y = -0.25, z = -0.25 }, max = { x = 0.25, y = 0.25, z = 0.25 } },
    data = {
        radius = { info = "Light radius.", kind = 8 },
        shadow = { info = "Casts shadows.", kind = true },
        label  = { info = "Editor label.", kind = "lamp" },
    },
}, light.draw)

mallet.map_entity({ name = "spawn" })
`

const gameLight = `
local light = {}

function light.draw(entity)
    drawn_x = entity.position.x
    drawn_radius = entity.data.radius
end

return light
`

func TestLuaHostMapsContent(t *testing.T) {
	dir := writeGame(t, map[string]string{"main.lua": gameMain, "light.lua": gameLight})

	h, err := NewLuaHost(dir)
	if err != nil {
		t.Fatalf("NewLuaHost failed: %v", err)
	}
	defer h.Close()

	textures := h.TexturePaths()
	if len(textures) != 1 || textures[0] != filepath.Join(dir, "data", "brick.qoi") {
		t.Errorf("Expected texture path resolved against game dir, got %v", textures)
	}

	templates := h.EntityTemplates()
	if len(templates) != 2 {
		t.Fatalf("Expected 2 templates, got %d", len(templates))
	}

	light := templates[0]
	if light.Name != "light" || light.Info != "A point light." {
		t.Errorf("Unexpected template header %q / %q", light.Name, light.Info)
	}
	if light.Call != "light" {
		t.Errorf("Expected draw call registered under template name, got %q", light.Call)
	}
	if light.Shape.Max.X != 0.25 || light.Shape.Min.Y != -0.25 {
		t.Errorf("Unexpected shape %+v", light.Shape)
	}
	if got := light.Data["radius"].Kind(); got != scene.FieldNumber {
		t.Errorf("Expected radius to be a number field, got %v", got)
	}
	if got := light.Data["shadow"].Kind(); got != scene.FieldBool {
		t.Errorf("Expected shadow to be a bool field, got %v", got)
	}
	if got := light.Data["label"].Value; got != "lamp" {
		t.Errorf("Expected label default lamp, got %v", got)
	}

	spawn := templates[1]
	if spawn.Call != "" {
		t.Errorf("Expected no draw call for spawn, got %q", spawn.Call)
	}
	if spawn.Shape != defaultShape {
		t.Errorf("Expected default shape for spawn, got %+v", spawn.Shape)
	}
}

func TestLuaHostDrawCallsScript(t *testing.T) {
	dir := writeGame(t, map[string]string{"main.lua": gameMain, "light.lua": gameLight})

	h, err := NewLuaHost(dir)
	if err != nil {
		t.Fatalf("NewLuaHost failed: %v", err)
	}
	defer h.Close()

	e := scene.NewEntity(h.EntityTemplates()[0])
	e.Position = rl.Vector3{X: 3}

	if err := h.Draw("light", &e); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if got := h.L.GetGlobal("drawn_x"); got != lua.LNumber(3) {
		t.Errorf("Expected script to see position.x 3, got %v", got)
	}
	if got := h.L.GetGlobal("drawn_radius"); got != lua.LNumber(8) {
		t.Errorf("Expected script to see radius 8, got %v", got)
	}

	if err := h.Draw("spawn", &e); !errors.Is(err, ErrNoCallback) {
		t.Errorf("Expected ErrNoCallback for unregistered call, got %v", err)
	}
}

func TestLuaHostErrors(t *testing.T) {
	tests := []struct {
		name string
		main string
		want string
	}{
		{"syntax", "mallet.map_entity({", "main.lua"},
		{"no name", "mallet.map_entity({ info = 'x' })", "needs a name"},
		{"bad kind", "mallet.map_entity({ name = 'a', data = { f = { kind = {} } } })", "unsupported kind"},
		{"bad shape", "mallet.map_entity({ name = 'a', shape = { min = {} } })", "min and max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeGame(t, map[string]string{"main.lua": tt.main})
			_, err := NewLuaHost(dir)
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLuaHostMissingMain(t *testing.T) {
	if _, err := NewLuaHost(t.TempDir()); err == nil {
		t.Error("Expected an error for a game without main.lua")
	}
}

func TestStaticHost(t *testing.T) {
	s := &Static{Textures: []string{"a.qoi"}}
	var h Host = s
	if len(h.TexturePaths()) != 1 {
		t.Errorf("Expected 1 texture, got %d", len(h.TexturePaths()))
	}
	if err := h.Draw("x", nil); !errors.Is(err, ErrNoCallback) {
		t.Errorf("Expected ErrNoCallback, got %v", err)
	}
}

func TestFailedLoadUnloadsModels(t *testing.T) {
	loaded, unloaded := 0, 0
	loadModel = func(string) rl.Model {
		loaded++
		return rl.Model{MeshCount: 1}
	}
	unloadModel = func(rl.Model) { unloaded++ }
	defer func() {
		loadModel = rl.LoadModel
		unloadModel = rl.UnloadModel
	}()

	dir := writeGame(t, map[string]string{"main.lua": `
local lamp = mallet.model("lamp.obj")
mallet.map_entity({ name = "lamp" })
error("broken after loading")
`})

	if _, err := NewLuaHost(dir); err == nil {
		t.Fatal("Expected the script error to be returned")
	}
	if loaded != 1 {
		t.Fatalf("Expected 1 model loaded, got %d", loaded)
	}
	if unloaded != 1 {
		t.Errorf("Expected the loaded model to be unloaded, got %d", unloaded)
	}
}
