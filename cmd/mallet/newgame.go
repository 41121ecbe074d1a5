package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sockentrocken/mallet/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const mainTemplate = `-- {{.Name}} entities and textures for mallet.

mallet.map_entity({
    name = "spawn",
    info = "Player start.",
    shape = { min = { x = -0.5, y = 0.0, z = -0.5 }, max = { x = 0.5, y = 2.0, z = 0.5 } },
    data = {
        team = { info = "Team index.", kind = 0 },
    },
})

-- mallet.map_texture("data/texture/wall.png")
`

var newGameCmd = &cobra.Command{
	Use:   "new-game [dir] [name]",
	Short: "Create a game directory with an info.yaml and a main.lua",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newGame(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", args[0])
		fmt.Printf("Add it to %s:\n\n", config.FileName)
		fmt.Printf("  games:\n")
		fmt.Printf("    - %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newGameCmd)
}

// newGame writes the files of an empty game into dir, which must not
// already hold one.
func newGame(dir, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("game name must not be empty")
	}

	info := filepath.Join(dir, config.GameInfoName)
	if _, err := os.Stat(info); err == nil {
		return fmt.Errorf("%s already exists", info)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := yaml.Marshal(config.Game{Name: name})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", info, err)
	}
	if err := os.WriteFile(info, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", info, err)
	}

	stub := filepath.Join(dir, "main.lua")
	if _, err := os.Stat(stub); err == nil {
		return nil
	}
	content := strings.ReplaceAll(mainTemplate, "{{.Name}}", name)
	if err := os.WriteFile(stub, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", stub, err)
	}
	return nil
}
