package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/loaders"
	"github.com/df07/go-scene-generator/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", scene.BuiltinPresetID, "Preset name from scenes/ or a .yaml preset path")
	configPath := flag.String("config", "", "YAML config file, takes precedence over -scene")
	output := flag.String("output", "", "Output file (default \""+scene.DefaultOutputPath+"\")")
	gridSize := flag.Int("grid", 0, "Spheres per row and column (default 15)")
	seed := flag.Int64("seed", 0, "Random seed (default: current time)")
	inspect := flag.String("inspect", "", "Print a summary of an existing scene document and exit")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Grid Scene Generator")
		fmt.Println("Usage: scenegen [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available presets:")
		if presets, err := scene.ListAllPresets(""); err == nil {
			for _, group := range presets.Groups {
				for _, p := range group.Presets {
					fmt.Printf("  %-12s - %s\n", p.ID, p.Description)
				}
			}
		}
		fmt.Println()
		fmt.Println("The document is a JSON array of camera, sphere and point_light records.")
		return
	}

	if *inspect != "" {
		if err := inspectScene(*inspect, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := newLogger(os.Stderr, *quiet)

	cfg, err := loadConfig(*configPath, *sceneName, scene.Overrides{
		Output:   *output,
		GridSize: *gridSize,
		Seed:     *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := generateScene(cfg, core.NewTimeSource(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a stderr logger, or one that discards everything when quiet
func newLogger(w io.Writer, quiet bool) core.Logger {
	if quiet {
		return core.NopLogger{}
	}
	return log.New(w, "", log.LstdFlags)
}

// loadConfig reads the config file, or the named preset when no file is given,
// and applies command line overrides
func loadConfig(path, preset string, overrides scene.Overrides) (scene.Config, error) {
	if overrides.GridSize < 0 || overrides.GridSize > scene.MaxGridSize {
		return scene.Config{}, fmt.Errorf("grid must be between 1 and %d, got %d", scene.MaxGridSize, overrides.GridSize)
	}
	if path == "" {
		resolved, err := scene.ResolvePreset(preset, "")
		if err != nil {
			return scene.Config{}, err
		}
		path = resolved
	}
	cfg, err := scene.LoadConfig(path)
	if err != nil {
		return scene.Config{}, err
	}
	cfg, err = cfg.Apply(overrides)
	if err != nil {
		return scene.Config{}, err
	}
	if cfg.Output == "" {
		return scene.Config{}, fmt.Errorf("output path cannot be empty")
	}
	return cfg, nil
}

// generateScene builds the whole document in memory and only then writes it
func generateScene(cfg scene.Config, rnd core.RandomSource, logger core.Logger) error {
	startTime := time.Now()
	doc, err := scene.Generate(cfg, rnd, logger)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if err := scene.WriteDocument(cfg.Output, doc); err != nil {
		return err
	}
	logger.Printf("Scene saved as %s (%d bytes) in %v\n", cfg.Output, len(doc), time.Since(startTime))
	return nil
}

// inspectScene prints per-type counts of a scene document
func inspectScene(path string, w io.Writer) error {
	doc, err := loaders.LoadScene(path)
	if err != nil {
		return err
	}
	summary := doc.Summary()
	fmt.Fprintf(w, "%s: %s\n", path, summary)
	if len(doc.Cameras) > 0 {
		c := doc.Cameras[0]
		fmt.Fprintf(w, "camera: pos (%g, %g, %g) lookat (%g, %g, %g) fov %g\n",
			c.Position.X, c.Position.Y, c.Position.Z, c.LookAt.X, c.LookAt.Y, c.LookAt.Z, c.VFov)
	}
	return nil
}
