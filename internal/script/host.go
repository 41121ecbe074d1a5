// Package script hosts the game scripts that describe placeable entities,
// the textures a game ships with, and how entities draw themselves.
package script

import (
	"errors"

	"github.com/sockentrocken/mallet/internal/scene"
)

// ErrNoCallback is returned by Draw for a call name the host never
// registered.
var ErrNoCallback = errors.New("no draw callback")

// Host is everything the editor needs from a game's scripts.
type Host interface {
	// EntityTemplates lists the placeable entity types.
	EntityTemplates() []scene.Template
	// TexturePaths lists textures to preload, as file paths.
	TexturePaths() []string
	// Draw runs the draw callback named call for e. It is only called
	// inside a 3D drawing pass.
	Draw(call string, e *scene.Entity) error
	Close()
}

// Static is a Host with a fixed catalog and no callbacks.
type Static struct {
	Templates []scene.Template
	Textures  []string
}

func (s *Static) EntityTemplates() []scene.Template { return s.Templates }
func (s *Static) TexturePaths() []string            { return s.Textures }
func (s *Static) Close()                            {}

func (s *Static) Draw(call string, e *scene.Entity) error {
	return ErrNoCallback
}
