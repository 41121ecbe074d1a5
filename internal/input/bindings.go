package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Binding is a button plus an optional modifier that must be held.
type Binding struct {
	Modifier Key `yaml:"modifier,omitempty"`
	Button   Key `yaml:"button"`
}

func Bind(button Key) Binding { return Binding{Button: button} }

func BindWith(modifier, button Key) Binding {
	return Binding{Modifier: modifier, Button: button}
}

func (b Binding) modifierHeld(f *Frame) bool {
	return b.Modifier.IsZero() || f.Down(b.Modifier)
}

func (b Binding) Pressed(f *Frame) bool  { return b.modifierHeld(f) && f.Pressed(b.Button) }
func (b Binding) Down(f *Frame) bool     { return b.modifierHeld(f) && f.Down(b.Button) }
func (b Binding) Released(f *Frame) bool { return b.modifierHeld(f) && f.Released(b.Button) }

func (b Binding) String() string {
	if b.Modifier.IsZero() {
		return b.Button.String()
	}
	return b.Modifier.String() + " + " + b.Button.String()
}

// Bindings is the user's mapping from editor actions to keys.
type Bindings struct {
	MouseSpeed [2]float32 `yaml:"mouse_speed"`

	MoveXA Binding `yaml:"move_x_a"`
	MoveXB Binding `yaml:"move_x_b"`
	MoveYA Binding `yaml:"move_y_a"`
	MoveYB Binding `yaml:"move_y_b"`

	Interact Binding `yaml:"interact"`
	Look     Binding `yaml:"look"`
	Extend   Binding `yaml:"extend"`

	Texture Binding `yaml:"texture"`
	Entity  Binding `yaml:"entity"`

	Position Binding `yaml:"position"`
	Rotation Binding `yaml:"rotation"`
	Scale    Binding `yaml:"scale"`
	Vertex   Binding `yaml:"vertex"`
	Edge     Binding `yaml:"edge"`
	Face     Binding `yaml:"face"`

	Brush  Binding `yaml:"brush"`
	Delete Binding `yaml:"delete"`
	Undo   Binding `yaml:"undo"`
	Frame  Binding `yaml:"frame"`

	User   Binding `yaml:"user"`
	Reload Binding `yaml:"reload"`
	Import Binding `yaml:"import"`
	Export Binding `yaml:"export"`
	Exit   Binding `yaml:"exit"`
}

func Default() Bindings {
	key := func(name string) Key { return keyByName[name] }
	ctrl := key("L. Control")

	return Bindings{
		MouseSpeed: [2]float32{1, 1},

		MoveXA: Bind(key("W")),
		MoveXB: Bind(key("S")),
		MoveYA: Bind(key("A")),
		MoveYB: Bind(key("D")),

		Interact: Bind(MouseLeft),
		Look:     Bind(MouseRight),
		Extend:   Bind(key("L. Shift")),

		Texture: Bind(key("7")),
		Entity:  Bind(key("8")),

		Position: Bind(key("1")),
		Rotation: Bind(key("2")),
		Scale:    Bind(key("3")),
		Vertex:   Bind(key("4")),
		Edge:     Bind(key("5")),
		Face:     Bind(key("6")),

		Brush:  BindWith(ctrl, key("N")),
		Delete: Bind(key("Delete")),
		Undo:   BindWith(ctrl, key("U")),
		Frame:  Bind(key("F")),

		User:   BindWith(ctrl, key("Z")),
		Reload: BindWith(ctrl, key("X")),
		Import: BindWith(ctrl, key("C")),
		Export: BindWith(ctrl, key("V")),
		Exit:   BindWith(ctrl, key("B")),
	}
}

// Action is a named, rebindable entry of Bindings.
type Action struct {
	Name    string
	Binding *Binding
}

// Actions lists every binding in display order.
func (b *Bindings) Actions() []Action {
	return []Action{
		{"Move X (A)", &b.MoveXA},
		{"Move X (B)", &b.MoveXB},
		{"Move Y (A)", &b.MoveYA},
		{"Move Y (B)", &b.MoveYB},
		{"Interact", &b.Interact},
		{"Look", &b.Look},
		{"Extend Selection", &b.Extend},
		{"Texture Panel", &b.Texture},
		{"Entity Panel", &b.Entity},
		{"Position", &b.Position},
		{"Rotation", &b.Rotation},
		{"Scale", &b.Scale},
		{"Vertex", &b.Vertex},
		{"Edge", &b.Edge},
		{"Face", &b.Face},
		{"Add Brush", &b.Brush},
		{"Delete", &b.Delete},
		{"Undo", &b.Undo},
		{"Frame Selection", &b.Frame},
		{"User", &b.User},
		{"Reload", &b.Reload},
		{"Import", &b.Import},
		{"Export", &b.Export},
		{"Exit", &b.Exit},
	}
}

// Load reads bindings from a YAML file. A missing file yields the
// defaults with no error; a malformed one yields the defaults and the
// parse error so the caller can tell the user.
func Load(path string) (Bindings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}

	b := Default()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}

// Save writes the bindings as YAML.
func (b Bindings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(4)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return enc.Close()
}
