package editor

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/scene"
	"github.com/sockentrocken/mallet/internal/script"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrCancelled is returned by Dialogs when the user closes a picker.
var ErrCancelled = errors.New("cancelled")

const msgTime float32 = 3

// Panel is the content of the side panel.
type Panel int

const (
	PanelEntity Panel = iota
	PanelTexture
	PanelUser
)

// Options are the user-tunable editing rules.
type Options struct {
	Grid float32
	Miss MissPolicy
}

func DefaultOptions() Options {
	return Options{Grid: DefaultGrid, Miss: MissKeepSelection}
}

// TextureCache holds the textures a game's scripts asked for.
type TextureCache interface {
	Clear()
	Load(paths []string) error
}

// HostLoader starts the scripts of the game in dir.
type HostLoader func(dir string) (script.Host, error)

// Dialogs picks scene files for import and export.
type Dialogs interface {
	OpenScene() (string, error)
	SaveScene() (string, error)
}

type Editor struct {
	World    *scene.World
	Mode     Mode
	Views    [4]View
	Bindings input.Bindings
	Options  Options
	Panel    Panel

	// Catalog and Textures are repopulated on every reload.
	Catalog  []scene.Template
	Textures []string

	GameDir      string
	BindingsPath string
	Loader       HostLoader
	Cache        TextureCache
	Dialogs      Dialogs

	// Quit is set once the user asks to leave the editor.
	Quit bool

	host     script.Host
	drag     *Drag
	dragView int
	pending  Hit

	undoStack []UndoState

	msg      string
	msgAlpha float32
	msgFade  *gween.Tween

	entitySearch  string
	textureSearch string
	rebind        *input.Binding
	rebindName    string
	rebound       bool // a rebind finished this frame

	scriptsChanged bool
	failedCalls    map[string]bool
}

func New(bindings input.Bindings, opts Options) *Editor {
	return &Editor{
		World:     scene.New(),
		Views:     DefaultViews(),
		Bindings:  bindings,
		Options:   opts,
		undoStack: make([]UndoState, 0, maxUndoStack),
	}
}

// Close releases the script host.
func (e *Editor) Close() {
	if e.host != nil {
		e.host.Close()
		e.host = nil
	}
}

// Host is the running script host, or nil before the first reload.
func (e *Editor) Host() script.Host { return e.host }

// Reload restarts the game scripts. The old host and everything it
// provided is dropped before the new host runs, so nothing from the old
// catalog survives a failed reload.
func (e *Editor) Reload() error {
	e.Close()
	if e.Cache != nil {
		e.Cache.Clear()
	}
	e.Catalog = nil
	e.Textures = nil
	e.scriptsChanged = false
	clear(e.failedCalls)

	if e.Loader == nil {
		return nil
	}

	host, err := e.Loader(e.GameDir)
	if err != nil {
		e.setMsg("Script error, see log")
		return fmt.Errorf("loading scripts from %s: %w", e.GameDir, err)
	}
	e.host = host

	for _, t := range host.EntityTemplates() {
		e.Catalog = append(e.Catalog, t.Clone())
	}
	e.Textures = append(e.Textures, host.TexturePaths()...)

	if e.Cache != nil {
		if err := e.Cache.Load(e.Textures); err != nil {
			e.setMsg("Texture error, see log")
			return fmt.Errorf("loading textures: %w", err)
		}
	}

	log.Printf("editor: reloaded %s (%d entities, %d textures)", e.GameDir, len(e.Catalog), len(e.Textures))
	e.setMsg("Reloaded")
	return nil
}

// ScriptsChanged flags the game directory as modified on disk.
func (e *Editor) ScriptsChanged() {
	if !e.scriptsChanged {
		e.scriptsChanged = true
		e.setMsg("Scripts changed, press Reload")
	}
}

// Update runs one frame of editing against f.
func (e *Editor) Update(f *input.Frame) {
	e.updateMsg(f.FrameTime)
	Layout(&e.Views, f.Screen)
	e.rebound = false

	if e.rebind != nil {
		e.captureRebind(f)
		return
	}

	for i := range e.Views {
		e.Views[i].Update(f.FrameTime)
	}

	view := e.hovered(f.Mouse)
	if e.drag != nil {
		view = e.dragView
	}

	if view >= 0 {
		v := &e.Views[view]
		if e.Bindings.Look.Down(f) {
			v.Look(f, &e.Bindings)
		}

		e.interact(f, view)

		if mv := MoveVector(f, &e.Bindings, v.Camera); mv != (rl.Vector3{}) && !e.Mode.Handles() && e.World.HasFocus() {
			e.pushUndo(e.Mode.String())
			ApplyMove(e.World, e.Mode, mv)
		}
	}

	e.actions(f)
}

// cancelDrag abandons a handle drag before the world changes under it.
// The vertices keep their current position.
func (e *Editor) cancelDrag() {
	e.drag = nil
	e.pending = Hit{}
}

// hovered returns the view under p, or -1.
func (e *Editor) hovered(p rl.Vector2) int {
	for i := range e.Views {
		if e.Views[i].Contains(p) {
			return i
		}
	}
	return -1
}

// interact resolves clicks and handle drags in a view. A press on a
// handle starts a drag; if the handle never moves, the release counts as
// a click on it. Any other press selects immediately.
func (e *Editor) interact(f *input.Frame, view int) {
	v := &e.Views[view]
	ray, err := v.Ray(f.Mouse)
	if err != nil {
		return
	}

	switch {
	case e.drag != nil && e.Bindings.Interact.Released(f):
		if !e.drag.End(e.World) {
			e.dropUndo()
			Select(e.World, e.pending, true, e.Bindings.Extend.Down(f), e.Options.Miss)
		}
		e.drag = nil

	case e.drag != nil:
		e.drag.Update(e.World, ray)

	case e.Bindings.Interact.Pressed(f):
		hit, ok := Pick(ray, e.World, e.Mode)
		if ok && e.Mode.Handles() && hit.Kind.Handle() {
			if d, ok := BeginDrag(e.World, hit, ray, v.Camera, e.Options.Grid); ok {
				e.pushUndo(hit.Kind.String())
				e.drag = d
				e.dragView = view
				e.pending = hit
				return
			}
		}
		Select(e.World, hit, ok, e.Bindings.Extend.Down(f), e.Options.Miss)
	}
}

// actions handles the editing hotkeys that are not toolbar buttons.
func (e *Editor) actions(f *input.Frame) {
	b := &e.Bindings

	switch {
	case b.Undo.Pressed(f):
		e.undo()
	case b.Brush.Pressed(f):
		e.AddBrush()
	case b.Delete.Pressed(f):
		e.DeleteFocused()
	case b.Frame.Pressed(f):
		e.FrameSelection()
	case b.Texture.Pressed(f):
		e.Panel = PanelTexture
	case b.Entity.Pressed(f):
		e.Panel = PanelEntity
	}
}

// AddBrush places a new brush at the grid point nearest the perspective
// view's target and selects it.
func (e *Editor) AddBrush() {
	e.cancelDrag()
	e.pushUndo("add brush")
	at := geom.SnapVector(e.Views[0].Camera.Target, e.Options.Grid)
	e.World.SelectAll(false)
	i := e.World.AddBrush(at)
	e.World.Brush[i].Focus = true
}

// AddEntity places an instance of the template at the perspective view's
// target and selects it.
func (e *Editor) AddEntity(t scene.Template) {
	e.cancelDrag()
	e.pushUndo("add entity")
	at := geom.SnapVector(e.Views[0].Camera.Target, e.Options.Grid)
	e.World.SelectAll(false)
	i := e.World.AddEntity(t, at)
	e.World.Entity[i].Focus = true
}

func (e *Editor) DeleteFocused() {
	if !e.World.HasFocus() {
		return
	}
	e.cancelDrag()
	e.pushUndo("delete")
	if n := e.World.DeleteFocused(); n > 0 {
		e.setMsg(fmt.Sprintf("Deleted %d", n))
	}
}

// ApplyTexture sets every face of every focused brush to texture.
func (e *Editor) ApplyTexture(texture string) {
	e.pushUndo("texture")
	for i := range e.World.Brush {
		if e.World.Brush[i].Focus {
			e.World.Brush[i].SetTexture(texture)
		}
	}
}

// FrameSelection moves the perspective view onto the selection.
func (e *Editor) FrameSelection() {
	if c, ok := e.World.FocusCenter(); ok {
		e.Views[0].Frame(c)
	}
}

// Import replaces the world with a scene file picked by the user.
func (e *Editor) Import() {
	if e.Dialogs == nil {
		return
	}
	path, err := e.Dialogs.OpenScene()
	if err != nil {
		e.dialogError("Import", err)
		return
	}
	w, err := scene.Load(path)
	if err != nil {
		log.Printf("editor: import %s: %v", path, err)
		e.setMsg("Import failed: " + err.Error())
		return
	}
	e.cancelDrag()
	e.pushUndo("import")
	e.World = w
	e.setMsg("Imported " + filepath.Base(path))
}

// Export writes the world to a file picked by the user.
func (e *Editor) Export() {
	if e.Dialogs == nil {
		return
	}
	path, err := e.Dialogs.SaveScene()
	if err != nil {
		e.dialogError("Export", err)
		return
	}
	if err := scene.Save(path, e.World); err != nil {
		log.Printf("editor: export %s: %v", path, err)
		e.setMsg("Export failed: " + err.Error())
		return
	}
	e.setMsg("Exported " + filepath.Base(path))
}

func (e *Editor) dialogError(action string, err error) {
	if errors.Is(err, ErrCancelled) {
		return
	}
	log.Printf("editor: %s dialog: %v", action, err)
	e.setMsg(action + " failed: " + err.Error())
}

// Msg returns the status line and its opacity.
func (e *Editor) Msg() (string, float32) { return e.msg, e.msgAlpha }

func (e *Editor) setMsg(msg string) {
	e.msg = msg
	e.msgAlpha = 1
	e.msgFade = gween.New(1, 0, msgTime, ease.InQuad)
}

func (e *Editor) updateMsg(dt float32) {
	if e.msgFade == nil {
		return
	}
	alpha, done := e.msgFade.Update(dt)
	e.msgAlpha = alpha
	if done {
		e.msg = ""
		e.msgFade = nil
	}
}
