package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the selected scene as PPM to stdout; progress and errors go to stderr
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	sceneType := flags.String("scene", "default", "Scene to render (see -list)")
	width := flags.Int("width", 0, "Image width in pixels (0 = scene default)")
	aspect := flags.String("aspect", "16:9", "Aspect ratio as W:H or a decimal")
	samples := flags.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flags.Int("depth", -1, "Maximum bounce depth (-1 = scene default)")
	workers := flags.Int("workers", 0, "Parallel workers (0 = CPU count)")
	seed := flags.Int64("seed", 42, "Random seed")
	pngPath := flags.String("png", "", "Also save the render as a PNG at this path")
	quiet := flags.Bool("quiet", false, "Suppress progress output")
	list := flags.Bool("list", false, "List available scenes and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stderr, "  %-14s %s\n", info.ID, info.Description)
		}
		return nil
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		return err
	}

	aspectRatio, err := parseAspectRatio(*aspect)
	if err != nil {
		return err
	}

	// Flags override the scene's recommended settings
	config := selectedScene.SamplingConfig
	if *width > 0 {
		config.Width = *width
	}
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}
	if *depth >= 0 {
		config.MaxDepth = *depth
	}
	config.Height = renderer.ImageHeight(config.Width, aspectRatio)
	config.NumWorkers = *workers
	config.Seed = *seed

	cameraConfig := selectedScene.CameraConfig
	cameraConfig.AspectRatio = aspectRatio

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.NewCamera(cameraConfig), config)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger(stderr)
	if *quiet {
		logger = renderer.NewNopLogger()
	}
	raytracer.SetLogger(logger)

	img, stats := raytracer.Render()

	if err := output.WritePPM(stdout, img); err != nil {
		return err
	}

	logger.Printf("Rendered %dx%d, %d samples per pixel in %v using %d workers (%.0f samples/s)\n",
		config.Width, config.Height, config.SamplesPerPixel, stats.Elapsed, stats.Workers, stats.SamplesPerSecond())

	if *pngPath != "" {
		if err := output.SavePNG(*pngPath, img); err != nil {
			return err
		}
		logger.Printf("Render saved as %s\n", *pngPath)
	}

	return nil
}

// createScene builds a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	s, err := scene.Create(sceneType)
	if err != nil {
		return nil, fmt.Errorf("cannot create scene: %w", err)
	}
	return s, nil
}

// parseAspectRatio accepts "16:9" style ratios or plain decimals
func parseAspectRatio(value string) (float64, error) {
	var ratio float64
	if w, h, found := strings.Cut(value, ":"); found {
		wf, errW := strconv.ParseFloat(w, 64)
		hf, errH := strconv.ParseFloat(h, 64)
		if errW != nil || errH != nil || hf == 0 {
			return 0, fmt.Errorf("invalid aspect ratio %q", value)
		}
		ratio = wf / hf
	} else {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid aspect ratio %q: %w", value, err)
		}
		ratio = parsed
	}

	if !(ratio > 0) || ratio > 1e6 {
		return 0, fmt.Errorf("aspect ratio must be positive, got %q", value)
	}
	return ratio, nil
}
