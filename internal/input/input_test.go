package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseKey(t *testing.T) {
	for _, nk := range keyTable {
		k, err := ParseKey(nk.name)
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", nk.name, err)
		}
		if k != nk.key {
			t.Errorf("ParseKey(%q): expected %v, got %v", nk.name, nk.key, k)
		}
		if k.String() != nk.name {
			t.Errorf("Expected name %q, got %q", nk.name, k.String())
		}
	}

	if _, err := ParseKey("Hyper"); err == nil {
		t.Error("Expected error for unknown key name")
	}
}

func TestBindingModifier(t *testing.T) {
	b := Default()

	plain := NewFrame().Press(keyByName["Z"])
	if b.User.Pressed(plain) {
		t.Error("Expected L. Control + Z not to fire without the modifier")
	}

	withCtrl := NewFrame().Hold(keyByName["L. Control"]).Press(keyByName["Z"])
	if !b.User.Pressed(withCtrl) {
		t.Error("Expected L. Control + Z to fire with the modifier held")
	}

	if !b.Interact.Pressed(NewFrame().Press(MouseLeft)) {
		t.Error("Expected Mouse Left to fire interact")
	}

	if got := b.User.String(); got != "L. Control + Z" {
		t.Errorf("Expected \"L. Control + Z\", got %q", got)
	}
}

func TestFrameRelease(t *testing.T) {
	f := NewFrame().Press(MouseLeft)
	f.Release(MouseLeft)
	if f.Down(MouseLeft) {
		t.Error("Expected released key not to be down")
	}
	if !f.Released(MouseLeft) {
		t.Error("Expected key to report release")
	}
}

func TestBindingsSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")

	b := Default()
	b.MoveXA = Bind(keyByName["Up"])
	b.Reload = BindWith(keyByName["L. Alt"], keyByName["R"])
	b.MouseSpeed = [2]float32{2, 0.5}

	if err := b.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != b {
		t.Errorf("Expected %+v, got %+v", b, got)
	}
}

func TestBindingsLoadMissing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Errorf("Expected no error for a missing file, got %v", err)
	}
	if got != Default() {
		t.Error("Expected defaults for a missing file")
	}
}

func TestBindingsLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	if err := os.WriteFile(path, []byte("move_x_a:\n    button: Hyper\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err == nil {
		t.Error("Expected an error for an unknown key name")
	}
	if got != Default() {
		t.Error("Expected defaults after a malformed file")
	}
}
