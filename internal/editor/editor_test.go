package editor

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sockentrocken/mallet/internal/input"
	"github.com/sockentrocken/mallet/internal/scene"
	"github.com/sockentrocken/mallet/internal/script"
	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func nearVec(a, b rl.Vector3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func towardNegZ(x, y, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: y, Z: z}, Direction: rl.Vector3{Z: -1}}
}

func twoBrushes() *scene.World {
	w := scene.New()
	w.Brush = append(w.Brush, scene.NewBrush())
	return w
}

func TestPickTieGoesToFirstBrush(t *testing.T) {
	w := twoBrushes()

	hit, ok := Pick(towardNegZ(0.3, 0.2, 6), w, ModePosition)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Kind != TargetBrush || hit.Brush != 0 || hit.Index != 0 {
		t.Errorf("Expected brush 0 face 0, got %v brush %d face %d", hit.Kind, hit.Brush, hit.Index)
	}
	if !near(hit.Distance, 5) {
		t.Errorf("Expected distance 5, got %f", hit.Distance)
	}

	w.Brush[1].Translate(rl.Vector3{Z: 0.5})
	hit, _ = Pick(towardNegZ(0.3, 0.2, 6), w, ModePosition)
	if hit.Brush != 1 {
		t.Errorf("Expected the nearer brush 1 to win, got %d", hit.Brush)
	}
}

func TestPickMiss(t *testing.T) {
	w := scene.New()
	if _, ok := Pick(towardNegZ(5, 5, 6), w, ModePosition); ok {
		t.Error("Expected a miss")
	}
}

func TestPickEntity(t *testing.T) {
	w := scene.New()
	meta := scene.Template{Name: "light", Shape: rl.BoundingBox{
		Min: rl.Vector3{X: -0.5, Y: -0.5, Z: -0.5},
		Max: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5},
	}}
	w.AddEntity(meta, rl.Vector3{Z: 3})

	hit, ok := Pick(towardNegZ(0.3, 0.2, 6), w, ModePosition)
	if !ok || hit.Kind != TargetEntity || hit.Entity != 0 {
		t.Fatalf("Expected entity 0, got %+v (ok=%v)", hit, ok)
	}
	if !near(hit.Distance, 2.5) {
		t.Errorf("Expected distance 2.5, got %f", hit.Distance)
	}
}

func TestPickFocusedBrushOffersHandles(t *testing.T) {
	tests := []struct {
		mode  Mode
		ray   rl.Ray
		kind  TargetKind
		index int
	}{
		{ModeVertex, towardNegZ(1, 1, 6), TargetVertex, 2},
		{ModePosition, towardNegZ(1, 1, 6), TargetVertex, 2},
		{ModeEdge, towardNegZ(1, 0, 6), TargetEdge, 1},
		{ModeFace, towardNegZ(0, 0, 6), TargetFace, 0},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			w := scene.New()
			w.Brush[0].Focus = true

			hit, ok := Pick(tt.ray, w, tt.mode)
			if !ok {
				t.Fatal("Expected a hit")
			}
			if hit.Kind != tt.kind || hit.Index != tt.index {
				t.Errorf("Expected %v %d, got %v %d", tt.kind, tt.index, hit.Kind, hit.Index)
			}
			if !near(hit.Distance, 4.5) {
				t.Errorf("Expected distance 4.5, got %f", hit.Distance)
			}
		})
	}
}

func TestSelectMissPolicy(t *testing.T) {
	tests := []struct {
		name   string
		extend bool
		policy MissPolicy
		kept   bool
	}{
		{"plain miss clears", false, MissKeepSelection, false},
		{"plain miss clears regardless", false, MissClearSelection, false},
		{"extend miss keeps", true, MissKeepSelection, true},
		{"extend miss clears", true, MissClearSelection, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := scene.New()
			w.Brush[0].Focus = true
			Select(w, Hit{}, false, tt.extend, tt.policy)
			if w.Brush[0].Focus != tt.kept {
				t.Errorf("Expected focus %v, got %v", tt.kept, w.Brush[0].Focus)
			}
		})
	}
}

func TestSelectReplacesOrExtends(t *testing.T) {
	w := twoBrushes()
	w.Brush[1].Focus = true

	Select(w, Hit{Target: Target{Kind: TargetBrush, Brush: 0}}, true, false, MissKeepSelection)
	if !w.Brush[0].Focus || w.Brush[1].Focus {
		t.Errorf("Expected only brush 0 focused, got %v %v", w.Brush[0].Focus, w.Brush[1].Focus)
	}

	Select(w, Hit{Target: Target{Kind: TargetBrush, Brush: 1}}, true, true, MissKeepSelection)
	if !w.Brush[0].Focus || !w.Brush[1].Focus {
		t.Errorf("Expected both brushes focused, got %v %v", w.Brush[0].Focus, w.Brush[1].Focus)
	}
}

func TestSelectSecondClickDeselects(t *testing.T) {
	w := scene.New()
	w.AddEntity(scene.Template{Name: "a"}, rl.Vector3{})
	hit := Hit{Target: Target{Kind: TargetEntity, Entity: 0}}

	Select(w, hit, true, false, MissKeepSelection)
	if !w.Entity[0].Focus {
		t.Fatal("Expected entity focused after first click")
	}
	Select(w, hit, true, false, MissKeepSelection)
	if w.Entity[0].Focus {
		t.Error("Expected entity deselected after second click")
	}
}

func TestSelectHandleTogglesVertices(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	hit := Hit{Target: Target{Kind: TargetEdge, Brush: 0, Index: 1}}

	Select(w, hit, true, false, MissKeepSelection)
	got := w.Brush[0].FocusedVertices()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected vertices [1 2] focused, got %v", got)
	}
	if !w.Brush[0].Focus {
		t.Error("Expected brush to stay focused")
	}

	Select(w, hit, true, true, MissKeepSelection)
	if got := w.Brush[0].FocusedVertices(); len(got) != 0 {
		t.Errorf("Expected vertices cleared by second click, got %v", got)
	}
}

func TestParseMissPolicy(t *testing.T) {
	if p, err := ParseMissPolicy("clear"); err != nil || p != MissClearSelection {
		t.Errorf("Expected clear, got %v (%v)", p, err)
	}
	if p, err := ParseMissPolicy(""); err != nil || p != MissKeepSelection {
		t.Errorf("Expected keep by default, got %v (%v)", p, err)
	}
	if _, err := ParseMissPolicy("maybe"); err == nil {
		t.Error("Expected an error for an unknown policy")
	}
}

func TestApplyMoveZeroVectorDoesNothing(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	before := w.Clone()

	for _, m := range Modes {
		if ApplyMove(w, m, rl.Vector3{}) {
			t.Errorf("Expected no change for %v", m)
		}
	}
	for i := range w.Brush[0].Vertex {
		if w.Brush[0].Vertex[i].Point != before.Brush[0].Vertex[i].Point {
			t.Errorf("Expected vertex %d unchanged", i)
		}
	}
}

func TestApplyMovePosition(t *testing.T) {
	w := twoBrushes()
	w.Brush[0].Focus = true
	w.AddEntity(scene.Template{Name: "a"}, rl.Vector3{})
	w.Entity[0].Focus = true

	if !ApplyMove(w, ModePosition, rl.Vector3{X: 1}) {
		t.Fatal("Expected a move")
	}
	if c := w.Brush[0].Center(); !nearVec(c, rl.Vector3{X: 1}) {
		t.Errorf("Expected focused brush centered at x=1, got %v", c)
	}
	if c := w.Brush[1].Center(); !nearVec(c, rl.Vector3{}) {
		t.Errorf("Expected unfocused brush unchanged, got %v", c)
	}
	if p := w.Entity[0].Position; p != (rl.Vector3{X: 1}) {
		t.Errorf("Expected entity at x=1, got %v", p)
	}
}

func TestApplyMoveRotation(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	w.AddEntity(scene.Template{Name: "a"}, rl.Vector3{})
	w.Entity[0].Focus = true
	before := w.Brush[0].Vertex[0].Point

	ApplyMove(w, ModeRotation, rl.Vector3{Y: 9})

	if r := w.Entity[0].Rotation; r != (rl.Vector3{Y: 90}) {
		t.Errorf("Expected entity rotation (0, 90, 0), got %v", r)
	}
	after := w.Brush[0].Vertex[0].Point
	if nearVec(before, after) {
		t.Error("Expected vertex 0 to move")
	}
	if !near(rl.Vector3Length(after), rl.Vector3Length(before)) {
		t.Errorf("Expected rotation about the origin to keep distance, got %f", rl.Vector3Length(after))
	}
	if w.Entity[0].Position != (rl.Vector3{}) {
		t.Error("Expected entity position untouched by rotation")
	}
}

func TestApplyMoveScale(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	w.AddEntity(scene.Template{Name: "a"}, rl.Vector3{})
	w.Entity[0].Focus = true

	ApplyMove(w, ModeScale, rl.Vector3{X: 1})

	if b := w.Brush[0].Bound(); !near(b.Max.X, 1.1) || !near(b.Max.Y, 1) {
		t.Errorf("Expected brush stretched to x=1.1, got %v", b.Max)
	}
	if s := w.Entity[0].Scale; !nearVec(s, rl.Vector3{X: 1.1, Y: 1, Z: 1}) {
		t.Errorf("Expected entity scale (1.1, 1, 1), got %v", s)
	}
}

func TestApplyMoveHandleModesIgnoreKeys(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	for _, m := range []Mode{ModeVertex, ModeEdge, ModeFace} {
		if ApplyMove(w, m, rl.Vector3{X: 1}) {
			t.Errorf("Expected %v to ignore movement keys", m)
		}
	}
}

func TestMovement(t *testing.T) {
	front := rl.Camera3D{
		Position:   rl.Vector3{Z: 512},
		Up:         rl.Vector3{Y: 1},
		Fovy:       15,
		Projection: rl.CameraOrthographic,
	}
	if v := Movement(1, 0, front); !nearVec(v, rl.Vector3{X: 1}) {
		t.Errorf("Expected ortho lateral step along +X, got %v", v)
	}
	if v := Movement(0, 1, front); !nearVec(v, rl.Vector3{Y: 1}) {
		t.Errorf("Expected ortho vertical step along +Y, got %v", v)
	}

	persp := rl.Camera3D{
		Position:   rl.Vector3{X: 4, Y: 4, Z: 4},
		Up:         rl.Vector3{Y: 1},
		Fovy:       90,
		Projection: rl.CameraPerspective,
	}
	if v := Movement(1, 0, persp); v != (rl.Vector3{X: 1}) {
		t.Errorf("Expected perspective lateral step (1, 0, 0), got %v", v)
	}
	if v := Movement(0, 1, persp); v != (rl.Vector3{Z: -1}) {
		t.Errorf("Expected perspective forward step (0, 0, -1), got %v", v)
	}
	if v := Movement(0, 0, persp); v != (rl.Vector3{}) {
		t.Errorf("Expected zero vector, got %v", v)
	}
}

func TestMoveVectorIgnoredWhileLooking(t *testing.T) {
	b := input.Default()
	cam := DefaultViews()[3].Camera

	f := input.NewFrame().Press(b.MoveXA.Button)
	if v := MoveVector(f, &b, cam); !nearVec(v, rl.Vector3{Y: 1}) {
		t.Errorf("Expected upward step, got %v", v)
	}

	f = input.NewFrame().Press(b.MoveXA.Button).Hold(b.Look.Button)
	if v := MoveVector(f, &b, cam); v != (rl.Vector3{}) {
		t.Errorf("Expected no step while looking, got %v", v)
	}
}

func dragCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Z: 10},
		Up:         rl.Vector3{Y: 1},
		Fovy:       90,
		Projection: rl.CameraPerspective,
	}
}

func TestDragSnapsToGrid(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true
	w.Brush[0].Vertex[2].Point = rl.Vector3{X: 0.33, Y: 1, Z: -0.6}

	press := towardNegZ(0.33, 1, 5)
	hit := Hit{Target: Target{Kind: TargetVertex, Brush: 0, Index: 2}, Distance: 5.6}
	d, ok := BeginDrag(w, hit, press, dragCamera(), DefaultGrid)
	if !ok {
		t.Fatal("Expected a drag to start")
	}

	d.Update(w, towardNegZ(0.43, 1, 5))
	if !d.End(w) {
		t.Error("Expected the drag to count as moved")
	}

	if got := w.Brush[0].Vertex[2].Point; got != (rl.Vector3{X: 0, Y: 1, Z: -1}) {
		t.Errorf("Expected vertex snapped to (0, 1, -1), got %v", got)
	}
}

func TestDragMovesEdge(t *testing.T) {
	w := scene.New()
	w.Brush[0].Focus = true

	hit := Hit{Target: Target{Kind: TargetEdge, Brush: 0, Index: 1}, Distance: 5}
	d, _ := BeginDrag(w, hit, towardNegZ(1, 0, 6), dragCamera(), DefaultGrid)
	d.Update(w, towardNegZ(1, 2, 6))
	d.End(w)

	b := &w.Brush[0]
	if got := b.Vertex[1].Point; got != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected vertex 1 at (1, 1, 1), got %v", got)
	}
	if got := b.Vertex[2].Point; got != (rl.Vector3{X: 1, Y: 3, Z: 1}) {
		t.Errorf("Expected vertex 2 at (1, 3, 1), got %v", got)
	}
	if got := b.Vertex[0].Point; got != (rl.Vector3{X: -1, Y: -1, Z: 1}) {
		t.Errorf("Expected vertex 0 untouched, got %v", got)
	}
}

func TestDragWithoutTravelIsAClick(t *testing.T) {
	w := scene.New()
	off := rl.Vector3{X: 0.33, Y: 1, Z: -0.6}
	w.Brush[0].Vertex[2].Point = off

	hit := Hit{Target: Target{Kind: TargetVertex, Brush: 0, Index: 2}, Distance: 5.6}
	d, _ := BeginDrag(w, hit, towardNegZ(0.33, 1, 5), dragCamera(), DefaultGrid)
	d.Update(w, towardNegZ(0.33, 1, 5))
	if got := w.Brush[0].Vertex[2].Point; got != off {
		t.Errorf("Expected the vertex to stay at %v during the click, got %v", off, got)
	}
	if d.End(w) {
		t.Error("Expected no travel")
	}
	if got := w.Brush[0].Vertex[2].Point; got != off {
		t.Errorf("Expected the clicked vertex to stay at %v, got %v", off, got)
	}

	if _, ok := BeginDrag(w, Hit{Target: Target{Kind: TargetBrush}}, towardNegZ(0, 0, 6), dragCamera(), 1); ok {
		t.Error("Expected whole brush targets to refuse dragging")
	}
}

func TestUndo(t *testing.T) {
	e := New(input.Default(), DefaultOptions())

	e.AddBrush()
	if len(e.World.Brush) != 2 {
		t.Fatalf("Expected 2 brushes, got %d", len(e.World.Brush))
	}
	e.undo()
	if len(e.World.Brush) != 1 {
		t.Errorf("Expected undo to remove the added brush, got %d", len(e.World.Brush))
	}

	for range maxUndoStack + 10 {
		e.pushUndo("test")
	}
	if e.UndoDepth() != maxUndoStack {
		t.Errorf("Expected undo stack capped at %d, got %d", maxUndoStack, e.UndoDepth())
	}
}

func TestDeleteFocused(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.DeleteFocused()
	if e.UndoDepth() != 0 {
		t.Error("Expected nothing recorded when nothing is focused")
	}

	e.World.Brush[0].Focus = true
	e.DeleteFocused()
	if len(e.World.Brush) != 0 {
		t.Errorf("Expected brush deleted, got %d", len(e.World.Brush))
	}
	e.undo()
	if len(e.World.Brush) != 1 {
		t.Errorf("Expected brush restored, got %d", len(e.World.Brush))
	}
}

const testScreen = 1200

func editorFrame(x, y float32) *input.Frame {
	f := input.NewFrame()
	f.Mouse = rl.Vector2{X: x, Y: y}
	f.Screen = rl.Vector2{X: testScreen, Y: 856}
	f.FrameTime = 1.0 / 60
	return f
}

func TestUpdateSelectsMovesAndUndoes(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	b := &e.Bindings

	// The front view is the lower right quarter of the viewport area.
	e.Update(editorFrame(610, 666).Press(b.Interact.Button))
	e.Update(editorFrame(610, 666).Release(b.Interact.Button))
	if !e.World.Brush[0].Focus {
		t.Fatal("Expected the brush under the cursor to be selected")
	}
	if e.UndoDepth() != 0 {
		t.Errorf("Expected selection not to record undo, got %d", e.UndoDepth())
	}

	e.Update(editorFrame(610, 666).Press(b.MoveYB.Button))
	if c := e.World.Brush[0].Center(); !nearVec(c, rl.Vector3{X: 1}) {
		t.Errorf("Expected brush moved to x=1, got %v", c)
	}

	e.Update(editorFrame(610, 666).Hold(b.Undo.Modifier).Press(b.Undo.Button))
	if c := e.World.Brush[0].Center(); !nearVec(c, rl.Vector3{}) {
		t.Errorf("Expected undo to restore the brush, got %v", c)
	}

	e.Update(editorFrame(1100, 5).Press(b.Interact.Button))
	if !e.World.Brush[0].Focus {
		t.Error("Expected clicks outside the views to leave the selection alone")
	}
}

func TestLayout(t *testing.T) {
	views := DefaultViews()
	Layout(&views, rl.Vector2{X: testScreen, Y: 856})

	want := []rl.Rectangle{
		{X: 0, Y: 56, Width: 400, Height: 400},
		{X: 400, Y: 56, Width: 400, Height: 400},
		{X: 0, Y: 456, Width: 400, Height: 400},
		{X: 400, Y: 456, Width: 400, Height: 400},
	}
	for i, r := range want {
		if views[i].Rect != r {
			t.Errorf("View %d: expected %v, got %v", i, r, views[i].Rect)
		}
	}
}

func TestFrameSelectionTweens(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.World.Brush[0].Translate(rl.Vector3{X: 10})
	e.World.Brush[0].Focus = true
	offset := rl.Vector3Subtract(e.Views[0].Camera.Position, e.Views[0].Camera.Target)

	e.FrameSelection()
	if !e.Views[0].Framing() {
		t.Fatal("Expected a camera move to start")
	}
	for range 60 {
		e.Views[0].Update(1.0 / 60)
	}
	if e.Views[0].Framing() {
		t.Error("Expected the camera move to finish")
	}
	if c := e.Views[0].Camera.Target; !nearVec(c, rl.Vector3{X: 10}) {
		t.Errorf("Expected target on the selection, got %v", c)
	}
	got := rl.Vector3Subtract(e.Views[0].Camera.Position, e.Views[0].Camera.Target)
	if !nearVec(got, offset) {
		t.Errorf("Expected viewing offset kept, got %v", got)
	}
}

type fakeHost struct {
	script.Static
	log    *[]string
	closed bool
}

func (h *fakeHost) Close() {
	h.closed = true
	*h.log = append(*h.log, "close")
}

type fakeCache struct {
	log    *[]string
	loaded []string
}

func (c *fakeCache) Clear() { *c.log = append(*c.log, "clear") }

func (c *fakeCache) Load(paths []string) error {
	*c.log = append(*c.log, "load")
	c.loaded = paths
	return nil
}

func TestReloadOrder(t *testing.T) {
	var events []string
	generation := 0

	e := New(input.Default(), DefaultOptions())
	e.Cache = &fakeCache{log: &events}
	e.Loader = func(dir string) (script.Host, error) {
		events = append(events, "open")
		generation++
		if generation == 3 {
			return nil, errors.New("broken script")
		}
		h := &fakeHost{log: &events}
		h.Templates = []scene.Template{{Name: "light"}}
		h.Textures = []string{"brick.qoi"}
		return h, nil
	}

	if err := e.Reload(); err != nil {
		t.Fatalf("First reload failed: %v", err)
	}
	first := e.Host().(*fakeHost)
	e.AddEntity(e.Catalog[0])

	if err := e.Reload(); err != nil {
		t.Fatalf("Second reload failed: %v", err)
	}
	if !first.closed {
		t.Error("Expected the old host closed")
	}

	want := []string{"close", "clear", "open", "load"}
	got := events[len(events)-4:]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected reload order %v, got %v", want, got)
		}
	}

	if err := e.Reload(); err == nil {
		t.Fatal("Expected the third reload to fail")
	}
	if len(e.Catalog) != 0 || len(e.Textures) != 0 {
		t.Errorf("Expected catalog emptied by a failed reload, got %d templates %d textures", len(e.Catalog), len(e.Textures))
	}
	if e.World.Entity[0].Meta.Name != "light" {
		t.Error("Expected placed entity to keep its metadata")
	}
}

func TestSceneIntents(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.Mode = ModeVertex
	e.World.Brush[0].Focus = true
	e.World.Brush[0].Vertex[0].Focus = true
	e.World.AddEntity(scene.Template{Name: "light"}, rl.Vector3{})

	l := e.Scene()
	counts := map[SceneKind]int{}
	green := 0
	for _, c := range l.Commands {
		counts[c.Kind]++
		if c.Kind == SceneCube && c.Color == handleOn {
			green++
		}
	}
	if counts[SceneQuad] != 6 {
		t.Errorf("Expected 6 quads, got %d", counts[SceneQuad])
	}
	if counts[SceneCube] != 8 {
		t.Errorf("Expected 8 vertex handles, got %d", counts[SceneCube])
	}
	if green != 1 {
		t.Errorf("Expected 1 focused handle, got %d", green)
	}
	if counts[SceneEntity] != 1 || len(l.Labels) != 1 || l.Labels[0].Text != "light" {
		t.Errorf("Expected one entity with a label, got %d / %v", counts[SceneEntity], l.Labels)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SessionFile)

	e := New(input.Default(), DefaultOptions())
	e.Mode = ModeFace
	e.Views[1].Camera.Target = rl.Vector3{Y: 3}
	if err := e.SaveSession(path); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	other := New(input.Default(), DefaultOptions())
	other.RestoreSession(path)
	if other.Mode != ModeFace {
		t.Errorf("Expected mode Face, got %v", other.Mode)
	}
	if other.Views[1].Camera.Target != (rl.Vector3{Y: 3}) {
		t.Errorf("Expected view target restored, got %v", other.Views[1].Camera.Target)
	}

	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	other.RestoreSession(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected a corrupt session file to be removed")
	}
}

type fakeDialogs struct {
	path string
	err  error
}

func (d fakeDialogs) OpenScene() (string, error) { return d.path, d.err }
func (d fakeDialogs) SaveScene() (string, error) { return d.path, d.err }

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")

	e := New(input.Default(), DefaultOptions())
	e.Dialogs = fakeDialogs{path: path}
	e.World.AddBrush(rl.Vector3{X: 4})
	e.Export()

	other := New(input.Default(), DefaultOptions())
	other.Dialogs = fakeDialogs{path: path}
	other.Import()
	if len(other.World.Brush) != 2 {
		t.Errorf("Expected 2 imported brushes, got %d", len(other.World.Brush))
	}

	other.Dialogs = fakeDialogs{err: ErrCancelled}
	other.Import()
	if len(other.World.Brush) != 2 {
		t.Error("Expected a cancelled import to keep the world")
	}
	if msg, _ := other.Msg(); msg != "Imported map.json" {
		t.Errorf("Expected cancel to stay silent, got %q", msg)
	}
}

func TestRebindCapturesNextKey(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.BindingsPath = filepath.Join(t.TempDir(), "user.yaml")

	for _, a := range e.Bindings.Actions() {
		if a.Name == "Reload" {
			e.rebind = a.Binding
			e.rebindName = a.Name
		}
	}
	if name, ok := e.Rebinding(); !ok || name != "Reload" {
		t.Fatalf("Expected to wait for the Reload key, got %q %v", name, ok)
	}

	e.Update(editorFrame(10, 10))
	if _, ok := e.Rebinding(); !ok {
		t.Error("Expected to keep waiting while nothing is pressed")
	}

	k, err := input.ParseKey("R")
	if err != nil {
		t.Fatal(err)
	}
	e.Update(editorFrame(10, 10).Press(k))
	if _, ok := e.Rebinding(); ok {
		t.Error("Expected the rebind to finish")
	}
	if e.Bindings.Reload.Button != k || !e.Bindings.Reload.Modifier.IsZero() {
		t.Errorf("Expected Reload bound to R without modifier, got %v", e.Bindings.Reload)
	}

	saved, err := input.Load(e.BindingsPath)
	if err != nil {
		t.Fatalf("Expected saved bindings, got %v", err)
	}
	if saved.Reload.Button != k {
		t.Errorf("Expected saved Reload binding R, got %v", saved.Reload.Button)
	}
}

// startDrag grabs vertex 0 of the first brush as if it had been pressed
// in the front view.
func startDrag(t *testing.T, e *Editor) {
	t.Helper()
	hit := Hit{Target: Target{Kind: TargetVertex, Brush: 0, Index: 0}, Distance: 5}
	d, ok := BeginDrag(e.World, hit, towardNegZ(-1, -1, 6), e.Views[3].Camera, DefaultGrid)
	if !ok {
		t.Fatal("Expected a drag to start")
	}
	e.pushUndo(hit.Kind.String())
	e.drag, e.dragView, e.pending = d, 3, hit
}

func TestWorldEditsCancelDrag(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.Mode = ModeVertex
	e.World.Brush[0].Focus = true
	b := &e.Bindings

	startDrag(t, e)
	e.DeleteFocused()
	if e.drag != nil {
		t.Fatal("Expected deleting to cancel the drag")
	}
	if len(e.World.Brush) != 0 {
		t.Fatalf("Expected the brush to be deleted, got %d", len(e.World.Brush))
	}

	// The button is still held from the press that started the drag.
	e.Update(editorFrame(620, 640).Hold(b.Interact.Button))
	e.Update(editorFrame(620, 640).Release(b.Interact.Button))

	e.AddBrush()
	startDrag(t, e)
	e.AddBrush()
	if e.drag != nil {
		t.Error("Expected adding a brush to cancel the drag")
	}

	startDrag(t, e)
	e.AddEntity(scene.Template{Name: "light"})
	if e.drag != nil {
		t.Error("Expected adding an entity to cancel the drag")
	}
}

func TestHandleClickLeavesNoUndo(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.Mode = ModeVertex
	e.World.Brush[0].Focus = true
	off := rl.Vector3{X: -0.67, Y: -1, Z: 1.4}
	e.World.Brush[0].Vertex[0].Point = off

	startDrag(t, e)
	e.Update(editorFrame(620, 640).Release(e.Bindings.Interact.Button))

	if e.drag != nil {
		t.Fatal("Expected the release to end the drag")
	}
	if e.UndoDepth() != 0 {
		t.Errorf("Expected no undo entry for a click, got %d", e.UndoDepth())
	}
	if got := e.World.Brush[0].Vertex[0].Point; got != off {
		t.Errorf("Expected the vertex to stay at %v, got %v", off, got)
	}
	if !e.World.Brush[0].Vertex[0].Focus {
		t.Error("Expected the click to select the vertex")
	}
}

type fakeFont struct{}

func (fakeFont) MeasureText(text string, size float32) rl.Vector2 {
	return rl.Vector2{X: float32(len(text)) * size / 2, Y: size}
}

func TestRebindKeyDoesNotFireTool(t *testing.T) {
	e := New(input.Default(), DefaultOptions())
	e.rebind = &e.Bindings.Reload
	e.rebindName = "Reload"
	c := ui.NewContext(fakeFont{})
	vertex := e.Bindings.Vertex.Button

	frame := func() {
		f := editorFrame(600, 400).Press(vertex)
		c.BeginFrame(f)
		e.Update(f)
		e.DrawUI(c)
		c.EndFrame()
	}

	frame()
	if e.Bindings.Reload.Button != vertex {
		t.Errorf("Expected Reload rebound to %v, got %v", vertex, e.Bindings.Reload.Button)
	}
	if e.Mode != ModePosition {
		t.Errorf("Expected the rebind key not to switch mode, got %v", e.Mode)
	}

	frame()
	if e.Mode != ModeVertex {
		t.Errorf("Expected the key to switch mode once the rebind is done, got %v", e.Mode)
	}
}
