package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DocumentVersion is written into every saved map.
const DocumentVersion = 1

var (
	ErrBadFaceIndex = errors.New("face index out of range")
	ErrBadField     = errors.New("unsupported field value")
)

// --- JSON types ---

type Document struct {
	Version  int         `json:"version"`
	Brushes  []BrushDef  `json:"brushes"`
	Entities []EntityDef `json:"entities"`
}

type BrushDef struct {
	Vertices [8][3]float32 `json:"vertices"`
	Faces    [6]FaceDef    `json:"faces"`
}

type FaceDef struct {
	Index   [4]int     `json:"index"`
	Shift   [2]float32 `json:"shift"`
	Scale   [2]float32 `json:"scale"`
	Texture string     `json:"texture,omitempty"`
}

type EntityDef struct {
	Name     string              `json:"name"`
	Info     string              `json:"info,omitempty"`
	Position [3]float32          `json:"position"`
	Rotation [3]float32          `json:"rotation"`
	Scale    [3]float32          `json:"scale"`
	Shape    [2][3]float32       `json:"shape"`
	Data     map[string]FieldDef `json:"data,omitempty"`
	Call     string              `json:"call,omitempty"`
}

type FieldDef struct {
	Info  string `json:"info,omitempty"`
	Value any    `json:"value"`
}

func vec3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func fromVec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// Encode converts a world into its document form. Focus flags are not
// saved.
func Encode(w *World) Document {
	doc := Document{
		Version:  DocumentVersion,
		Brushes:  make([]BrushDef, len(w.Brush)),
		Entities: make([]EntityDef, len(w.Entity)),
	}

	for i, b := range w.Brush {
		var def BrushDef
		for j, v := range b.Vertex {
			def.Vertices[j] = vec3(v.Point)
		}
		for j, f := range b.Face {
			def.Faces[j] = FaceDef{
				Index:   f.Index,
				Shift:   [2]float32{f.Shift.X, f.Shift.Y},
				Scale:   [2]float32{f.Scale.X, f.Scale.Y},
				Texture: f.Texture,
			}
		}
		doc.Brushes[i] = def
	}

	for i, e := range w.Entity {
		def := EntityDef{
			Name:     e.Meta.Name,
			Info:     e.Meta.Info,
			Position: vec3(e.Position),
			Rotation: vec3(e.Rotation),
			Scale:    vec3(e.Scale),
			Shape:    [2][3]float32{vec3(e.Meta.Shape.Min), vec3(e.Meta.Shape.Max)},
			Call:     e.Meta.Call,
		}
		if len(e.Meta.Data) > 0 {
			def.Data = make(map[string]FieldDef, len(e.Meta.Data))
			for name, f := range e.Meta.Data {
				def.Data[name] = FieldDef{Info: f.Info, Value: f.Value}
			}
		}
		doc.Entities[i] = def
	}

	return doc
}

// Decode validates a document and builds the world it describes.
func Decode(doc Document) (*World, error) {
	w := &World{
		Brush:  make([]Brush, len(doc.Brushes)),
		Entity: make([]Entity, len(doc.Entities)),
	}

	for i, def := range doc.Brushes {
		var b Brush
		for j, v := range def.Vertices {
			b.Vertex[j].Point = fromVec3(v)
		}
		for j, f := range def.Faces {
			for _, index := range f.Index {
				if index < 0 || index >= len(b.Vertex) {
					return nil, fmt.Errorf("brush %d face %d index %d: %w", i, j, index, ErrBadFaceIndex)
				}
			}
			b.Face[j] = Face{
				Index:   f.Index,
				Shift:   rl.Vector2{X: f.Shift[0], Y: f.Shift[1]},
				Scale:   rl.Vector2{X: f.Scale[0], Y: f.Scale[1]},
				Texture: f.Texture,
			}
		}
		w.Brush[i] = b
	}

	for i, def := range doc.Entities {
		meta := Template{
			Name:  def.Name,
			Info:  def.Info,
			Data:  make(map[string]Field, len(def.Data)),
			Shape: rl.BoundingBox{Min: fromVec3(def.Shape[0]), Max: fromVec3(def.Shape[1])},
			Call:  def.Call,
		}
		for name, f := range def.Data {
			field := Field{Info: f.Info, Value: f.Value}
			if field.Kind() == FieldUnknown {
				return nil, fmt.Errorf("entity %d field %q: %w", i, name, ErrBadField)
			}
			meta.Data[name] = field
		}
		w.Entity[i] = Entity{
			Position: fromVec3(def.Position),
			Rotation: fromVec3(def.Rotation),
			Scale:    fromVec3(def.Scale),
			Meta:     meta,
		}
	}

	return w, nil
}

func Marshal(w *World) ([]byte, error) {
	return json.MarshalIndent(Encode(w), "", "  ")
}

func Unmarshal(data []byte) (*World, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	w, err := Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return w, nil
}

// Save writes the world to path as JSON.
func Save(path string, w *World) error {
	data, err := Marshal(w)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// Load reads a world saved by Save.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Unmarshal(data)
}
