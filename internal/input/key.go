// Package input snapshots the keyboard and mouse once per frame and maps
// logical editor actions onto physical keys.
package input

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

type Device uint8

const (
	Keyboard Device = iota
	Mouse
)

// Key is one physical keyboard key or mouse button. The zero value is
// "no key".
type Key struct {
	Device Device
	Code   int32
}

func KeyboardKey(code int32) Key { return Key{Device: Keyboard, Code: code} }
func MouseButton(code int32) Key { return Key{Device: Mouse, Code: code} }

var (
	MouseLeft   = MouseButton(int32(rl.MouseButtonLeft))
	MouseRight  = MouseButton(int32(rl.MouseButtonRight))
	MouseMiddle = MouseButton(int32(rl.MouseButtonMiddle))
)

func (k Key) IsZero() bool { return k == Key{} }

func (k Key) String() string {
	if name, ok := keyName[k]; ok {
		return name
	}
	if k.IsZero() {
		return "None"
	}
	return fmt.Sprintf("Key %d", k.Code)
}

// ParseKey looks a key up by its display name.
func ParseKey(name string) (Key, error) {
	if k, ok := keyByName[name]; ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("unknown key %q", name)
}

func (k Key) MarshalYAML() (any, error) {
	return k.String(), nil
}

func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKey(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

type namedKey struct {
	key  Key
	name string
}

// keyTable is every key the editor polls and can bind, in display order.
var keyTable = []namedKey{
	{MouseLeft, "Mouse Left"},
	{MouseRight, "Mouse Right"},
	{MouseMiddle, "Mouse Middle"},
	{MouseButton(int32(rl.MouseButtonSide)), "Mouse Side"},
	{MouseButton(int32(rl.MouseButtonExtra)), "Mouse Extra"},
	{MouseButton(int32(rl.MouseButtonForward)), "Mouse Forward"},
	{MouseButton(int32(rl.MouseButtonBack)), "Mouse Back"},

	{KeyboardKey(rl.KeyApostrophe), "'"},
	{KeyboardKey(rl.KeyComma), ","},
	{KeyboardKey(rl.KeyMinus), "-"},
	{KeyboardKey(rl.KeyPeriod), "."},
	{KeyboardKey(rl.KeySlash), "/"},
	{KeyboardKey(rl.KeyZero), "0"},
	{KeyboardKey(rl.KeyOne), "1"},
	{KeyboardKey(rl.KeyTwo), "2"},
	{KeyboardKey(rl.KeyThree), "3"},
	{KeyboardKey(rl.KeyFour), "4"},
	{KeyboardKey(rl.KeyFive), "5"},
	{KeyboardKey(rl.KeySix), "6"},
	{KeyboardKey(rl.KeySeven), "7"},
	{KeyboardKey(rl.KeyEight), "8"},
	{KeyboardKey(rl.KeyNine), "9"},
	{KeyboardKey(rl.KeySemicolon), ";"},
	{KeyboardKey(rl.KeyEqual), "="},
	{KeyboardKey(rl.KeyA), "A"},
	{KeyboardKey(rl.KeyB), "B"},
	{KeyboardKey(rl.KeyC), "C"},
	{KeyboardKey(rl.KeyD), "D"},
	{KeyboardKey(rl.KeyE), "E"},
	{KeyboardKey(rl.KeyF), "F"},
	{KeyboardKey(rl.KeyG), "G"},
	{KeyboardKey(rl.KeyH), "H"},
	{KeyboardKey(rl.KeyI), "I"},
	{KeyboardKey(rl.KeyJ), "J"},
	{KeyboardKey(rl.KeyK), "K"},
	{KeyboardKey(rl.KeyL), "L"},
	{KeyboardKey(rl.KeyM), "M"},
	{KeyboardKey(rl.KeyN), "N"},
	{KeyboardKey(rl.KeyO), "O"},
	{KeyboardKey(rl.KeyP), "P"},
	{KeyboardKey(rl.KeyQ), "Q"},
	{KeyboardKey(rl.KeyR), "R"},
	{KeyboardKey(rl.KeyS), "S"},
	{KeyboardKey(rl.KeyT), "T"},
	{KeyboardKey(rl.KeyU), "U"},
	{KeyboardKey(rl.KeyV), "V"},
	{KeyboardKey(rl.KeyW), "W"},
	{KeyboardKey(rl.KeyX), "X"},
	{KeyboardKey(rl.KeyY), "Y"},
	{KeyboardKey(rl.KeyZ), "Z"},
	{KeyboardKey(rl.KeyLeftBracket), "["},
	{KeyboardKey(rl.KeyBackSlash), "\\"},
	{KeyboardKey(rl.KeyRightBracket), "]"},
	{KeyboardKey(rl.KeyGrave), "`"},
	{KeyboardKey(rl.KeySpace), "Space"},
	{KeyboardKey(rl.KeyEscape), "Escape"},
	{KeyboardKey(rl.KeyEnter), "Enter"},
	{KeyboardKey(rl.KeyTab), "Tab"},
	{KeyboardKey(rl.KeyBackspace), "Backspace"},
	{KeyboardKey(rl.KeyInsert), "Insert"},
	{KeyboardKey(rl.KeyDelete), "Delete"},
	{KeyboardKey(rl.KeyRight), "Right"},
	{KeyboardKey(rl.KeyLeft), "Left"},
	{KeyboardKey(rl.KeyDown), "Down"},
	{KeyboardKey(rl.KeyUp), "Up"},
	{KeyboardKey(rl.KeyPageUp), "Page Up"},
	{KeyboardKey(rl.KeyPageDown), "Page Down"},
	{KeyboardKey(rl.KeyHome), "Home"},
	{KeyboardKey(rl.KeyEnd), "End"},
	{KeyboardKey(rl.KeyCapsLock), "Caps Lock"},
	{KeyboardKey(rl.KeyScrollLock), "Scroll Lock"},
	{KeyboardKey(rl.KeyNumLock), "Num Lock"},
	{KeyboardKey(rl.KeyPrintScreen), "Print Screen"},
	{KeyboardKey(rl.KeyPause), "Pause"},
	{KeyboardKey(rl.KeyF1), "F1"},
	{KeyboardKey(rl.KeyF2), "F2"},
	{KeyboardKey(rl.KeyF3), "F3"},
	{KeyboardKey(rl.KeyF4), "F4"},
	{KeyboardKey(rl.KeyF5), "F5"},
	{KeyboardKey(rl.KeyF6), "F6"},
	{KeyboardKey(rl.KeyF7), "F7"},
	{KeyboardKey(rl.KeyF8), "F8"},
	{KeyboardKey(rl.KeyF9), "F9"},
	{KeyboardKey(rl.KeyF10), "F10"},
	{KeyboardKey(rl.KeyF11), "F11"},
	{KeyboardKey(rl.KeyF12), "F12"},
	{KeyboardKey(rl.KeyLeftShift), "L. Shift"},
	{KeyboardKey(rl.KeyLeftControl), "L. Control"},
	{KeyboardKey(rl.KeyLeftAlt), "L. Alt"},
	{KeyboardKey(rl.KeyLeftSuper), "L. Super"},
	{KeyboardKey(rl.KeyRightShift), "R. Shift"},
	{KeyboardKey(rl.KeyRightControl), "R. Control"},
	{KeyboardKey(rl.KeyRightAlt), "R. Alt"},
	{KeyboardKey(rl.KeyRightSuper), "R. Super"},
}

var (
	keyName   = map[Key]string{}
	keyByName = map[string]Key{"None": {}}
)

func init() {
	for _, nk := range keyTable {
		keyName[nk.key] = nk.name
		keyByName[nk.name] = nk.key
	}
}
