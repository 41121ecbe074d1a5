package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sockentrocken/mallet/internal/app"
	"github.com/sockentrocken/mallet/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	userPath   string
	debugUI    bool
)

var rootCmd = &cobra.Command{
	Use:   "mallet",
	Short: "A 3D level editor for Lua-scripted games",
	Long: `mallet edits brush and entity maps for the games listed in mallet.yaml.
Each game directory holds an info.yaml and a main.lua that declares the
entities and textures the editor offers.`,
	SilenceUsage: true,
	RunE:         runEditor,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.FileName, "editor configuration file")
	rootCmd.Flags().StringVar(&userPath, "user", "user.yaml", "key bindings file")
	rootCmd.Flags().BoolVar(&debugUI, "debug-ui", false, "log widgets that share an identity")
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("config: %v", err)
		app.Warn("Using the default configuration.\n\n%v", err)
	}
	if debugUI {
		cfg.DebugUI = true
	}

	return app.New(cfg, userPath).Run()
}

func main() {
	// Run next to the executable for deployed builds. "go run" builds into
	// a temporary go-build directory, which is left alone.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		app.Fatal(err)
		os.Exit(1)
	}
}
