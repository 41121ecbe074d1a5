package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SessionFile remembers the editor layout between runs.
const SessionFile = ".mallet_session.json"

type viewSession struct {
	Position rl.Vector3 `json:"position"`
	Target   rl.Vector3 `json:"target"`
	Up       rl.Vector3 `json:"up"`
	Fovy     float32    `json:"fovy"`
}

// Session is the part of the editor state that survives a restart.
type Session struct {
	Mode  int            `json:"mode"`
	Panel int            `json:"panel"`
	Views [4]viewSession `json:"views"`
}

func (e *Editor) Session() Session {
	s := Session{Mode: int(e.Mode), Panel: int(e.Panel)}
	for i, v := range e.Views {
		s.Views[i] = viewSession{
			Position: v.Camera.Position,
			Target:   v.Camera.Target,
			Up:       v.Camera.Up,
			Fovy:     v.Camera.Fovy,
		}
	}
	return s
}

// Restore applies s. Values out of range are ignored.
func (e *Editor) Restore(s Session) {
	if s.Mode >= 0 && s.Mode < len(Modes) {
		e.Mode = Mode(s.Mode)
	}
	if s.Panel >= int(PanelEntity) && s.Panel <= int(PanelUser) {
		e.Panel = Panel(s.Panel)
	}
	for i, v := range s.Views {
		if v.Fovy <= 0 || rl.Vector3Length(v.Up) == 0 || v.Position == v.Target {
			continue
		}
		c := &e.Views[i].Camera
		c.Position = v.Position
		c.Target = v.Target
		c.Up = v.Up
		c.Fovy = v.Fovy
	}
	e.Views[0].syncAngles()
}

// SaveSession writes the session file.
func (e *Editor) SaveSession(path string) error {
	data, err := json.MarshalIndent(e.Session(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// RestoreSession loads the session file if there is one. A corrupt file
// is reported and removed.
func (e *Editor) RestoreSession(path string) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("editor: reading session: %v", err)
		return
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("editor: failed to parse session: %v", err)
		os.Remove(path)
		return
	}
	e.Restore(s)
}
