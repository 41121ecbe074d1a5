package editor

import (
	"log"

	"github.com/sockentrocken/mallet/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SceneKind int

const (
	SceneQuad SceneKind = iota
	SceneBox
	SceneCube
	SceneEntity
	SceneGrid
	SceneRay
)

// SceneCommand is one 3D draw intent. Which fields are used depends on
// Kind.
type SceneCommand struct {
	Kind    SceneKind
	Points  [4]rl.Vector3
	UV      [4]rl.Vector2
	Texture string
	Color   rl.Color
	Box     rl.BoundingBox
	Center  rl.Vector3
	Size    float32
	Ray     rl.Ray
	Entity  int
}

// SceneLabel is text pinned to a world point.
type SceneLabel struct {
	Text  string
	Point rl.Vector3
}

// SceneList is what every viewport draws for one frame.
type SceneList struct {
	Commands []SceneCommand
	Labels   []SceneLabel
}

var (
	brushTint   = rl.NewColor(255, 255, 255, 255)
	focusTint   = rl.NewColor(255, 160, 160, 255)
	handleOn    = rl.Green
	handleOff   = rl.Red
	entityColor = rl.NewColor(68, 138, 255, 255)
	gridSlices  = float32(1000)
)

// Scene builds the draw intents for the world. Entity commands carry the
// entity index so a renderer can run its script draw callback.
func (e *Editor) Scene() *SceneList {
	l := &SceneList{}
	w := e.World

	l.Commands = append(l.Commands,
		SceneCommand{Kind: SceneGrid, Size: gridSlices},
		SceneCommand{Kind: SceneRay, Ray: rl.Ray{Direction: rl.Vector3{X: 1}}, Color: rl.Red},
		SceneCommand{Kind: SceneRay, Ray: rl.Ray{Direction: rl.Vector3{Y: 1}}, Color: rl.Green},
		SceneCommand{Kind: SceneRay, Ray: rl.Ray{Direction: rl.Vector3{Z: 1}}, Color: rl.Blue},
	)

	for i := range w.Brush {
		b := &w.Brush[i]
		tint := brushTint
		if b.Focus {
			tint = focusTint
		}
		for f := range b.Face {
			l.Commands = append(l.Commands, SceneCommand{
				Kind:    SceneQuad,
				Points:  b.Corners(f),
				UV:      b.UV(f),
				Texture: b.Face[f].Texture,
				Color:   tint,
			})
		}
		if b.Focus {
			l.Commands = append(l.Commands, handleIntents(b, e.Mode)...)
		}
	}

	for i := range w.Entity {
		ent := &w.Entity[i]
		color := entityColor
		if ent.Focus {
			color = focusTint
		}
		l.Commands = append(l.Commands,
			SceneCommand{Kind: SceneEntity, Entity: i, Box: ent.Box(), Color: color},
			SceneCommand{Kind: SceneBox, Box: ent.Box(), Color: color},
		)
		l.Labels = append(l.Labels, SceneLabel{
			Text:  ent.Meta.Name,
			Point: rl.Vector3Add(ent.Position, rl.Vector3{Y: ent.Meta.Shape.Max.Y + 0.5}),
		})
	}

	return l
}

func handleIntents(b *scene.Brush, mode Mode) []SceneCommand {
	var out []SceneCommand
	for _, h := range handles(b, mode) {
		on := true
		for _, p := range handlePoints(Target{Kind: h.kind, Index: h.index}) {
			on = on && b.Vertex[p].Focus
		}
		color := handleOff
		if on {
			color = handleOn
		}
		out = append(out, SceneCommand{
			Kind:   SceneCube,
			Center: h.point,
			Size:   HandleDraw,
			Color:  color,
		})
	}
	return out
}

// DrawEntity runs the script draw callback of entity i. It reports false
// when the entity has none, so the caller can draw a stand-in. A callback
// that fails is not called again until the next reload.
func (e *Editor) DrawEntity(i int) bool {
	if e.host == nil || i < 0 || i >= len(e.World.Entity) {
		return false
	}
	ent := &e.World.Entity[i]
	call := ent.Meta.Call
	if call == "" || e.failedCalls[call] {
		return false
	}
	if err := e.host.Draw(call, ent); err != nil {
		if e.failedCalls == nil {
			e.failedCalls = map[string]bool{}
		}
		e.failedCalls[call] = true
		log.Printf("editor: drawing %s: %v", ent.Meta.Name, err)
		e.setMsg("Script error, see log")
		return false
	}
	return true
}
