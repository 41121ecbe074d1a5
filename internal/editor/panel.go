package editor

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/scene"
	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	toolPitch   float32 = 44
	toolTop     float32 = 12
	panelInset  float32 = 8
	textureSize float32 = 64
	texturePick float32 = 72
)

// IconName is the texture name of a toolbar icon.
func IconName(name string) string {
	return "icon/" + strings.ToLower(name)
}

// Icons lists every toolbar icon.
func Icons() []string {
	var out []string
	for _, m := range Modes {
		out = append(out, IconName(m.String()))
	}
	for _, name := range []string{"User", "Reload", "Import", "Export", "Exit"} {
		out = append(out, IconName(name))
	}
	return out
}

// DrawUI declares the toolbar, the side panel and the status line.
func (e *Editor) DrawUI(c *ui.Context) {
	screen := c.Frame().Screen

	c.Draw.Rect(rl.Rectangle{Width: screen.X, Height: ToolbarHeight}, ui.Panel)
	c.Draw.Rect(rl.Rectangle{X: screen.X - PanelWidth, Y: ToolbarHeight, Width: PanelWidth, Height: screen.Y - ToolbarHeight}, ui.Panel)

	e.toolbar(c, screen)

	area := rl.Rectangle{
		X:      screen.X - PanelWidth + panelInset,
		Y:      ToolbarHeight + panelInset,
		Width:  PanelWidth - panelInset*2,
		Height: screen.Y - ToolbarHeight - panelInset*2,
	}
	switch e.Panel {
	case PanelEntity:
		e.entityPanel(c, area)
	case PanelTexture:
		e.texturePanel(c, area)
	case PanelUser:
		e.userPanel(c, area)
	}

	if msg, alpha := e.Msg(); msg != "" {
		color := ui.TextDark
		color.A = uint8(alpha * 255)
		c.Draw.Text(msg, rl.Vector2{X: 8, Y: screen.Y - ui.TextSize - 8}, ui.TextSize, color)
	}
}

func (e *Editor) toolbar(c *ui.Context, screen rl.Vector2) {
	b := &e.Bindings
	modes := []input.Binding{b.Position, b.Rotation, b.Scale, b.Vertex, b.Edge, b.Face}

	// The key pressed to finish a rebind must not also fire a tool.
	hotkey := func(binding input.Binding) input.Binding {
		if e.rebind != nil || e.rebound {
			return input.Binding{}
		}
		return binding
	}

	for i, m := range Modes {
		p := rl.Vector2{X: panelInset + toolPitch*float32(i), Y: toolTop}
		if c.Tool(p, m.String(), IconName(m.String()), hotkey(modes[i]), e.Mode == m) {
			e.Mode = m
		}
	}

	actions := []struct {
		name    string
		binding input.Binding
		run     func()
	}{
		{"User", b.User, func() { e.Panel = PanelUser }},
		{"Reload", b.Reload, func() {
			if err := e.Reload(); err != nil {
				log.Printf("editor: %v", err)
			}
		}},
		{"Import", b.Import, e.Import},
		{"Export", b.Export, e.Export},
		{"Exit", b.Exit, func() { e.Quit = true }},
	}
	for i, a := range actions {
		p := rl.Vector2{X: screen.X - toolPitch*float32(len(actions)-i), Y: toolTop}
		if c.Tool(p, a.name, IconName(a.name), hotkey(a.binding), e.Panel == PanelUser && a.name == "User") {
			a.run()
		}
	}
}

func (e *Editor) entityPanel(c *ui.Context, area rl.Rectangle) {
	half := area.Height/2 - panelInset
	c.Point(rl.Vector2{X: area.X, Y: area.Y})

	if i := e.World.FocusedEntity(); i >= 0 {
		ent := &e.World.Entity[i]
		c.Scroll("##Entity Data", rl.Rectangle{X: area.X, Y: area.Y, Width: area.Width, Height: half}, func() {
			e.inspector(c, ent)
		})
	} else {
		c.Text("No entity selected.", ui.TextDark)
		c.Point(rl.Vector2{X: area.X, Y: area.Y + half + panelInset})
	}

	c.TextField("Search##Entity Search", &e.entitySearch)

	top := c.Cursor().Y
	list := rl.Rectangle{X: area.X, Y: top, Width: area.Width, Height: area.Y + area.Height - top}
	c.Scroll("##Entity Scroll", list, func() {
		for _, t := range e.Catalog {
			if !matches(t.Name, e.entitySearch) {
				continue
			}
			if c.Button(t.Name + "##catalog") {
				e.AddEntity(t)
			}
		}
	})
}

func (e *Editor) inspector(c *ui.Context, ent *scene.Entity) {
	c.Text(ent.Meta.Name, ui.TextDark)
	if ent.Meta.Info != "" {
		c.Text(ent.Meta.Info, ui.TextDark)
	}

	vector := func(name string, v *rl.Vector3) {
		c.Drop(name+"##entity", func() {
			c.NumberField("X##"+name, &v.X)
			c.NumberField("Y##"+name, &v.Y)
			c.NumberField("Z##"+name, &v.Z)
		})
	}
	vector("Position", &ent.Position)
	vector("Rotation", &ent.Rotation)
	vector("Scale", &ent.Scale)

	for _, name := range ent.Meta.FieldNames() {
		f := ent.Meta.Data[name]
		id := name + "##field"
		switch v := f.Value.(type) {
		case bool:
			if c.Toggle(id, &v) {
				f.Value = v
			}
		case float64:
			n := float32(v)
			if c.NumberField(id, &n) {
				f.Value = float64(n)
			}
		case string:
			if c.TextField(id, &v) {
				f.Value = v
			}
		default:
			c.Text(fmt.Sprintf("%s: %v", name, v), ui.TextDark)
		}
		ent.Meta.Data[name] = f
	}
}

func (e *Editor) texturePanel(c *ui.Context, area rl.Rectangle) {
	c.Point(rl.Vector2{X: area.X, Y: area.Y})
	c.TextField("Search##Texture Search", &e.textureSearch)

	top := c.Cursor().Y
	list := rl.Rectangle{X: area.X, Y: top, Width: area.Width, Height: area.Y + area.Height - top}
	columns := max(int(area.Width/texturePick), 1)

	c.Scroll("##Texture Scroll", list, func() {
		start := c.Cursor()
		shown := 0
		for _, path := range e.Textures {
			name := filepath.Base(path)
			if !matches(name, e.textureSearch) {
				continue
			}
			col, row := shown%columns, shown/columns
			c.Point(rl.Vector2{X: start.X + float32(col)*texturePick, Y: start.Y + float32(row)*texturePick})
			if c.ImageButton(name+"##texture", path, textureSize) {
				e.ApplyTexture(path)
			}
			shown++
		}
		rows := (shown + columns - 1) / columns
		c.Point(rl.Vector2{X: start.X, Y: start.Y + float32(rows)*texturePick})
	})
}

// userPanel lists every binding. Clicking one waits for the next key or
// button and stores it, then saves the bindings file.
func (e *Editor) userPanel(c *ui.Context, area rl.Rectangle) {
	c.Point(rl.Vector2{X: area.X, Y: area.Y})
	c.Scroll("##User Scroll", area, func() {
		c.Slider("Mouse X##speed", &e.Bindings.MouseSpeed[0], 0.1, 4)
		c.Slider("Mouse Y##speed", &e.Bindings.MouseSpeed[1], 0.1, 4)

		for _, a := range e.Bindings.Actions() {
			label := a.Name + ": " + a.Binding.String()
			if e.rebind == a.Binding {
				label = a.Name + ": ..."
			}
			if c.Button(label + "##" + a.Name) {
				e.rebind = a.Binding
				e.rebindName = a.Name
			}
		}

		if c.Button("Back##user") {
			e.Panel = PanelEntity
			e.saveBindings()
		}
	})
}

// Rebinding reports the action waiting for a key, if any.
func (e *Editor) Rebinding() (string, bool) { return e.rebindName, e.rebind != nil }

// captureRebind stores the first key or button pressed this frame into
// the binding being edited.
func (e *Editor) captureRebind(f *input.Frame) {
	k, ok := f.AnyPressed()
	if !ok {
		return
	}
	e.rebind.Button = k
	e.rebind.Modifier = input.Key{}
	e.setMsg(e.rebindName + " set to " + k.String())
	e.rebind = nil
	e.rebindName = ""
	e.rebound = true
	e.saveBindings()
}

func (e *Editor) saveBindings() {
	if e.BindingsPath == "" {
		return
	}
	if err := e.Bindings.Save(e.BindingsPath); err != nil {
		log.Printf("editor: saving bindings: %v", err)
		e.setMsg("Could not save bindings")
	}
}

func matches(name, search string) bool {
	return search == "" || strings.Contains(strings.ToLower(name), strings.ToLower(search))
}
