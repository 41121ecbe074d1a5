// Package assets owns GPU resources: the texture cache filled from game
// scripts and the UI font.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/xfmoulet/qoi"
)

// Cache maps texture names to loaded textures. Script textures are keyed
// by path; other textures can be added under any name.
type Cache struct {
	textures map[string]rl.Texture2D
	pinned   map[string]bool
}

func NewCache() *Cache {
	return &Cache{
		textures: make(map[string]rl.Texture2D),
		pinned:   make(map[string]bool),
	}
}

// Get returns a loaded texture.
func (c *Cache) Get(name string) (rl.Texture2D, bool) {
	t, ok := c.textures[name]
	return t, ok
}

func (c *Cache) Len() int { return len(c.textures) }

// Load uploads every path not already loaded. It keeps going past
// failures and returns them joined.
func (c *Cache) Load(paths []string) error {
	var errs []error
	for _, path := range paths {
		if _, ok := c.textures[path]; ok {
			continue
		}
		if err := c.load(path, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadPinned loads a texture under name that survives Clear.
func (c *Cache) LoadPinned(name, path string) error {
	if err := c.load(name, path); err != nil {
		return err
	}
	c.pinned[name] = true
	return nil
}

func (c *Cache) load(name, path string) error {
	img, err := DecodeFile(path)
	if err != nil {
		return err
	}
	texture := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	if texture.ID == 0 {
		return fmt.Errorf("uploading %s: no texture created", path)
	}
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	c.textures[name] = texture
	return nil
}

// Clear unloads every texture that was not pinned.
func (c *Cache) Clear() {
	for name, t := range c.textures {
		if c.pinned[name] {
			continue
		}
		rl.UnloadTexture(t)
		delete(c.textures, name)
	}
}

// Unload releases everything, pinned textures included.
func (c *Cache) Unload() {
	for _, t := range c.textures {
		rl.UnloadTexture(t)
	}
	clear(c.textures)
	clear(c.pinned)
}

// DecodeFile reads a .qoi, .png or .jpg image.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		img, err = qoi.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// LoadIcons pins the toolbar icons found in dir as <name>.png. Missing
// icons are logged; the toolbar draws their initial instead.
func (c *Cache) LoadIcons(dir string, names []string) {
	for _, name := range names {
		path := filepath.Join(dir, strings.TrimPrefix(name, "icon/")+".png")
		if err := c.LoadPinned(name, path); err != nil {
			log.Printf("assets: icon %s: %v", name, err)
		}
	}
}
