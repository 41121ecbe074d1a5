package script

import (
	"fmt"

	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	lua "github.com/yuin/gopher-lua"
)

// defaultShape is used when a script maps an entity without a shape.
var defaultShape = rl.BoundingBox{
	Min: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5},
	Max: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
}

// templateFromTable reads an entity description:
//
//	{
//	    name = "light",
//	    info = "A point light.",
//	    shape = { min = { x = -0.5, y = -0.5, z = -0.5 }, max = { ... } },
//	    data = { radius = { info = "Light radius.", kind = 8.0 } },
//	}
func templateFromTable(meta *lua.LTable) (scene.Template, error) {
	name, ok := meta.RawGetString("name").(lua.LString)
	if !ok || name == "" {
		return scene.Template{}, fmt.Errorf("entity needs a name")
	}

	t := scene.Template{
		Name:  string(name),
		Info:  lua.LVAsString(meta.RawGetString("info")),
		Data:  map[string]scene.Field{},
		Shape: defaultShape,
	}

	if shape, ok := meta.RawGetString("shape").(*lua.LTable); ok {
		lo, okMin := shape.RawGetString("min").(*lua.LTable)
		hi, okMax := shape.RawGetString("max").(*lua.LTable)
		if !okMin || !okMax {
			return scene.Template{}, fmt.Errorf("entity %q: shape needs min and max", name)
		}
		t.Shape = rl.BoundingBox{
			Min: vectorFromTable(lo, rl.Vector3{}),
			Max: vectorFromTable(hi, rl.Vector3{}),
		}
	}

	if data, ok := meta.RawGetString("data").(*lua.LTable); ok {
		var err error
		data.ForEach(func(k, v lua.LValue) {
			if err != nil {
				return
			}
			entry, ok := v.(*lua.LTable)
			if !ok {
				err = fmt.Errorf("entity %q: field %s must be a table", name, k)
				return
			}
			value, ok := fieldValue(entry.RawGetString("kind"))
			if !ok {
				err = fmt.Errorf("entity %q: field %s has unsupported kind %s", name, k, entry.RawGetString("kind").Type())
				return
			}
			t.Data[k.String()] = scene.Field{
				Info:  lua.LVAsString(entry.RawGetString("info")),
				Value: value,
			}
		})
		if err != nil {
			return scene.Template{}, err
		}
	}

	return t, nil
}

func fieldValue(v lua.LValue) (any, bool) {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v), true
	case lua.LNumber:
		return float64(v), true
	case lua.LString:
		return string(v), true
	}
	return nil, false
}

// vectorFromTable reads {x=, y=, z=}; missing components come from def.
func vectorFromTable(t *lua.LTable, def rl.Vector3) rl.Vector3 {
	get := func(key string, fallback float32) float32 {
		if n, ok := t.RawGetString(key).(lua.LNumber); ok {
			return float32(n)
		}
		return fallback
	}
	return rl.Vector3{X: get("x", def.X), Y: get("y", def.Y), Z: get("z", def.Z)}
}
