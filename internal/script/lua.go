package script

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	lua "github.com/yuin/gopher-lua"
)

const modelType = "mallet.model"

// LuaHost runs a game's main.lua. Scripts register content through the
// global "mallet" table:
//
//	mallet.map_entity(meta, draw)  -- draw is optional
//	mallet.map_texture(path)
//	mallet.model(path)             -- returns a model with :draw(pos, rot, scale)
type LuaHost struct {
	L   *lua.LState
	dir string

	templates []scene.Template
	textures  []string
	calls     map[string]*lua.LFunction
	models    []*rl.Model
}

// Model loading goes through these so hosts can run without a GPU.
var (
	loadModel   = rl.LoadModel
	unloadModel = rl.UnloadModel
)

// NewLuaHost loads main.lua from dir. Modules in dir can be required by
// name.
func NewLuaHost(dir string) (*LuaHost, error) {
	h := &LuaHost{
		L:     lua.NewState(),
		dir:   dir,
		calls: make(map[string]*lua.LFunction),
	}
	h.register()

	if pkg, ok := h.L.GetGlobal("package").(*lua.LTable); ok {
		path := lua.LVAsString(pkg.RawGetString("path"))
		pkg.RawSetString("path", lua.LString(path+";"+filepath.Join(dir, "?.lua")))
	}

	if err := h.L.DoString(`require "main"`); err != nil {
		h.Close()
		return nil, fmt.Errorf("running %s: %w", filepath.Join(dir, "main.lua"), err)
	}

	log.Printf("script: %s mapped %d entities, %d textures", dir, len(h.templates), len(h.textures))
	return h, nil
}

func (h *LuaHost) EntityTemplates() []scene.Template { return h.templates }
func (h *LuaHost) TexturePaths() []string            { return h.textures }

func (h *LuaHost) Draw(call string, e *scene.Entity) error {
	fn, ok := h.calls[call]
	if !ok {
		return fmt.Errorf("%q: %w", call, ErrNoCallback)
	}
	return h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, h.entityTable(e))
}

func (h *LuaHost) Close() {
	for _, m := range h.models {
		unloadModel(*m)
	}
	h.models = nil
	h.L.Close()
}

func (h *LuaHost) register() {
	mallet := h.L.NewTable()
	h.L.SetFuncs(mallet, map[string]lua.LGFunction{
		"map_entity":  h.mapEntity,
		"map_texture": h.mapTexture,
		"model":       h.luaModel,
	})
	h.L.SetGlobal("mallet", mallet)

	mt := h.L.NewTypeMetatable(modelType)
	h.L.SetField(mt, "__index", h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"draw": drawModel,
	}))
}

func (h *LuaHost) mapEntity(L *lua.LState) int {
	meta := L.CheckTable(1)
	call := L.OptFunction(2, nil)

	t, err := templateFromTable(meta)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	if call != nil {
		t.Call = t.Name
		h.calls[t.Name] = call
	}
	h.templates = append(h.templates, t)
	return 0
}

func (h *LuaHost) mapTexture(L *lua.LState) int {
	h.textures = append(h.textures, h.resolve(L.CheckString(1)))
	return 0
}

func (h *LuaHost) luaModel(L *lua.LState) int {
	path := h.resolve(L.CheckString(1))
	model := loadModel(path)
	if model.MeshCount == 0 {
		L.RaiseError("cannot load model %s", path)
		return 0
	}
	m := &model
	h.models = append(h.models, m)

	ud := L.NewUserData()
	ud.Value = m
	L.SetMetatable(ud, L.GetTypeMetatable(modelType))
	L.Push(ud)
	return 1
}

// drawModel is model:draw(position, rotation, scale); rotation is in
// degrees.
func drawModel(L *lua.LState) int {
	ud := L.CheckUserData(1)
	m, ok := ud.Value.(*rl.Model)
	if !ok {
		L.ArgError(1, "model expected")
		return 0
	}
	position := vectorFromTable(L.CheckTable(2), rl.Vector3{})
	rotation := vectorFromTable(L.CheckTable(3), rl.Vector3{})
	scale := vectorFromTable(L.CheckTable(4), rl.Vector3{X: 1, Y: 1, Z: 1})

	m.Transform = rl.MatrixMultiply(
		rl.MatrixScale(scale.X, scale.Y, scale.Z),
		rl.MatrixRotateXYZ(rl.Vector3Scale(rotation, rl.Deg2rad)),
	)
	rl.DrawModel(*m, position, 1, rl.White)
	return 0
}

func (h *LuaHost) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(h.dir, path)
}

func (h *LuaHost) entityTable(e *scene.Entity) *lua.LTable {
	t := h.L.NewTable()
	t.RawSetString("name", lua.LString(e.Meta.Name))
	t.RawSetString("position", h.vectorTable(e.Position))
	t.RawSetString("rotation", h.vectorTable(e.Rotation))
	t.RawSetString("scale", h.vectorTable(e.Scale))

	data := h.L.NewTable()
	for name, f := range e.Meta.Data {
		switch v := f.Value.(type) {
		case bool:
			data.RawSetString(name, lua.LBool(v))
		case float64:
			data.RawSetString(name, lua.LNumber(v))
		case string:
			data.RawSetString(name, lua.LString(v))
		}
	}
	t.RawSetString("data", data)
	return t
}

func (h *LuaHost) vectorTable(v rl.Vector3) *lua.LTable {
	t := h.L.NewTable()
	t.RawSetString("x", lua.LNumber(v.X))
	t.RawSetString("y", lua.LNumber(v.Y))
	t.RawSetString("z", lua.LNumber(v.Z))
	return t
}
