package render

import (
	"github.com/sockentrocken/mallet/internal/editor"
	"github.com/sockentrocken/mallet/internal/geom"
	"github.com/sockentrocken/mallet/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	viewClear  = rl.NewColor(32, 32, 40, 255)
	wireColor  = rl.NewColor(0, 0, 0, 96)
	labelColor = rl.White
	labelSize  = float32(16)
)

// Views renders the scene into each view's texture and copies the
// textures to the screen.
func (r *Renderer) Views(e *editor.Editor, list *editor.SceneList) {
	for i := range e.Views {
		v := &e.Views[i]
		if v.Rect.Width < 1 || v.Rect.Height < 1 {
			continue
		}
		target := r.target(i, v.Rect)

		rl.BeginTextureMode(target)
		rl.ClearBackground(viewClear)

		rl.BeginMode3D(v.Camera)
		rl.DisableBackfaceCulling()
		r.scene(e, list)
		rl.EnableBackfaceCulling()
		rl.EndMode3D()

		for _, l := range list.Labels {
			if p, ok := geom.WorldToScreen(l.Point, v.Camera, v.Rect.Width, v.Rect.Height); ok {
				size := r.Font.MeasureText(l.Text, labelSize)
				rl.DrawTextEx(r.Font.Font, l.Text, rl.Vector2{X: p.X - size.X/2, Y: p.Y}, labelSize, ui.TextSpacing, labelColor)
			}
		}
		rl.DrawTextEx(r.Font.Font, v.Name, rl.Vector2{X: 8, Y: 8}, labelSize, ui.TextSpacing, labelColor)

		rl.EndTextureMode()

		// Render textures are stored upside down.
		src := rl.Rectangle{Width: v.Rect.Width, Height: -v.Rect.Height}
		rl.DrawTextureRec(target.Texture, src, rl.Vector2{X: v.Rect.X, Y: v.Rect.Y}, rl.White)
	}
}

// target returns the render texture for view i, recreated whenever the
// view changes size.
func (r *Renderer) target(i int, rect rl.Rectangle) rl.RenderTexture2D {
	size := rl.Vector2{X: rect.Width, Y: rect.Height}
	if r.sizes[i] != size {
		if r.sizes[i] != (rl.Vector2{}) {
			rl.UnloadRenderTexture(r.targets[i])
		}
		r.targets[i] = rl.LoadRenderTexture(int32(rect.Width), int32(rect.Height))
		r.sizes[i] = size
	}
	return r.targets[i]
}

func (r *Renderer) scene(e *editor.Editor, list *editor.SceneList) {
	for _, c := range list.Commands {
		switch c.Kind {
		case editor.SceneQuad:
			r.quad(c)
		case editor.SceneBox:
			rl.DrawBoundingBox(c.Box, c.Color)
		case editor.SceneCube:
			rl.DrawCube(c.Center, c.Size, c.Size, c.Size, c.Color)
		case editor.SceneEntity:
			if !e.DrawEntity(c.Entity) {
				center := rl.Vector3Scale(rl.Vector3Add(c.Box.Min, c.Box.Max), 0.5)
				size := rl.Vector3Subtract(c.Box.Max, c.Box.Min)
				fill := c.Color
				fill.A = 96
				rl.DrawCube(center, size.X, size.Y, size.Z, fill)
			}
		case editor.SceneGrid:
			rl.DrawGrid(int32(c.Size), 1)
		case editor.SceneRay:
			rl.DrawRay(c.Ray, c.Color)
		}
	}
}

// quad draws a textured brush face through rlgl, then its outline.
func (r *Renderer) quad(c editor.SceneCommand) {
	var id uint32
	if t, ok := r.Cache.Get(c.Texture); ok {
		id = t.ID
	}

	rl.SetTexture(id)
	rl.Begin(rl.Quads)
	rl.Color4ub(c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	for k := range c.Points {
		rl.TexCoord2f(c.UV[k].X, c.UV[k].Y)
		rl.Vertex3f(c.Points[k].X, c.Points[k].Y, c.Points[k].Z)
	}
	rl.End()
	rl.SetTexture(0)

	for k := range c.Points {
		rl.DrawLine3D(c.Points[k], c.Points[(k+1)%4], wireColor)
	}
}

// Unload frees the view textures.
func (r *Renderer) Unload() {
	for i := range r.targets {
		if r.sizes[i] != (rl.Vector2{}) {
			rl.UnloadRenderTexture(r.targets[i])
			r.sizes[i] = rl.Vector2{}
		}
	}
}
