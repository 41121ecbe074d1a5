package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frame is one consistent snapshot of the input devices. Everything that
// reacts to input during a frame reads the same Frame.
type Frame struct {
	Mouse      rl.Vector2
	MouseDelta rl.Vector2
	Wheel      float32
	FrameTime  float32
	Screen     rl.Vector2
	Chars      []rune

	pressed  map[Key]bool
	down     map[Key]bool
	released map[Key]bool
}

func NewFrame() *Frame {
	return &Frame{
		pressed:  map[Key]bool{},
		down:     map[Key]bool{},
		released: map[Key]bool{},
	}
}

// Pressed reports a fresh press this frame. Keyboard keys also report
// OS key repeat.
func (f *Frame) Pressed(k Key) bool  { return f.pressed[k] }
func (f *Frame) Down(k Key) bool     { return f.down[k] }
func (f *Frame) Released(k Key) bool { return f.released[k] }

// Press marks k as pressed and held.
func (f *Frame) Press(k Key) *Frame {
	f.pressed[k] = true
	f.down[k] = true
	return f
}

// Hold marks k as held without a fresh press.
func (f *Frame) Hold(k Key) *Frame {
	f.down[k] = true
	return f
}

// Release marks k as released this frame.
func (f *Frame) Release(k Key) *Frame {
	f.released[k] = true
	delete(f.down, k)
	return f
}

// AnyPressed returns the first key in display order pressed this frame.
func (f *Frame) AnyPressed() (Key, bool) {
	for _, nk := range keyTable {
		if f.pressed[nk.key] {
			return nk.key, true
		}
	}
	return Key{}, false
}

// Poll reads the current device state from raylib.
func Poll() *Frame {
	f := NewFrame()
	f.Mouse = rl.GetMousePosition()
	f.MouseDelta = rl.GetMouseDelta()
	f.Wheel = rl.GetMouseWheelMove()
	f.FrameTime = rl.GetFrameTime()
	f.Screen = rl.Vector2{X: float32(rl.GetScreenWidth()), Y: float32(rl.GetScreenHeight())}

	for _, nk := range keyTable {
		k := nk.key
		switch k.Device {
		case Keyboard:
			if rl.IsKeyPressed(k.Code) || rl.IsKeyPressedRepeat(k.Code) {
				f.pressed[k] = true
			}
			if rl.IsKeyDown(k.Code) {
				f.down[k] = true
			}
			if rl.IsKeyReleased(k.Code) {
				f.released[k] = true
			}
		case Mouse:
			button := rl.MouseButton(k.Code)
			if rl.IsMouseButtonPressed(button) {
				f.pressed[k] = true
			}
			if rl.IsMouseButtonDown(button) {
				f.down[k] = true
			}
			if rl.IsMouseButtonReleased(button) {
				f.released[k] = true
			}
		}
	}

	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		f.Chars = append(f.Chars, rune(c))
	}
	return f
}
