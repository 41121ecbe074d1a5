// Package config loads mallet.yaml and the info.yaml of each game.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sockentrocken/mallet/internal/editor"

	"gopkg.in/yaml.v3"
)

const (
	FileName     = "mallet.yaml"
	GameInfoName = "info.yaml"
)

type Window struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// Mallet is the editor configuration.
type Mallet struct {
	// Games lists game directories, each holding an info.yaml and a
	// main.lua.
	Games []string `yaml:"games"`

	Grid float32 `yaml:"grid"`

	// SelectionMiss is "keep" or "clear": what an extending click on
	// empty space does to the selection.
	SelectionMiss string `yaml:"selection_miss"`

	// Font is an optional TTF for the UI.
	Font string `yaml:"font,omitempty"`

	// Icons is the directory holding the toolbar icons.
	Icons string `yaml:"icons,omitempty"`

	DebugUI bool   `yaml:"debug_ui"`
	Window  Window `yaml:"window"`
}

func Default() Mallet {
	return Mallet{
		Grid:          editor.DefaultGrid,
		SelectionMiss: editor.MissKeepSelection.String(),
		Icons:         "data/icon",
		Window:        Window{Width: 1024, Height: 768},
	}
}

// Load reads mallet.yaml. A missing file yields the defaults with no
// error; an unreadable or invalid one yields the defaults and the error.
func Load(path string) (Mallet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}

	m := Default()
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m Mallet) Validate() error {
	if m.Grid < 0 {
		return fmt.Errorf("'grid' must not be negative, got %g", m.Grid)
	}
	if _, err := editor.ParseMissPolicy(m.SelectionMiss); err != nil {
		return err
	}
	if m.Window.Width <= 0 || m.Window.Height <= 0 {
		return fmt.Errorf("'window' must have a positive size, got %dx%d", m.Window.Width, m.Window.Height)
	}
	return nil
}

// Options converts the editing rules for the editor.
func (m Mallet) Options() editor.Options {
	miss, _ := editor.ParseMissPolicy(m.SelectionMiss)
	return editor.Options{Grid: m.Grid, Miss: miss}
}

// Save writes the configuration as YAML.
func (m Mallet) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(4)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return enc.Close()
}

// Game is one entry of the game selection list.
type Game struct {
	Name string `yaml:"name"`
	Info string `yaml:"info,omitempty"`

	Path string `yaml:"-"`
}

// LoadGame reads dir/info.yaml.
func LoadGame(dir string) (Game, error) {
	path := filepath.Join(dir, GameInfoName)
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var g Game
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Game{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if g.Name == "" {
		return Game{}, fmt.Errorf("'name' field is required in %s", path)
	}
	g.Path = dir
	return g, nil
}

// LoadGames reads every configured game. Broken entries are skipped and
// reported together.
func (m Mallet) LoadGames() ([]Game, error) {
	var games []Game
	var errs []error
	for _, dir := range m.Games {
		g, err := LoadGame(dir)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		games = append(games, g)
	}
	return games, errors.Join(errs...)
}
