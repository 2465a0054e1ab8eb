package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aland/go-weekend-raytracer/pkg/renderer"
	"github.com/aland/go-weekend-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: 'default' or 'test'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 42, "Random seed")
	workers := flag.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	output := flag.String("o", "", "Output file (default: stdout)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("The image is written to stdout unless -o is given;")
		fmt.Println("progress goes to stderr.")
		return
	}

	if err := run(*sceneName, *width, *samples, *depth, *seed, *workers, *output, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, samples, depth int, seed int64, workers int, output, format string) error {
	selected, err := scene.New(sceneName)
	if err != nil {
		return err
	}

	config := selected.RenderConfig()
	config.Seed = seed
	config.Workers = workers
	if width > 0 {
		config.Width = width
		// Preserve the scene's framing when overriding the width
		config.Height = int(float64(width) / selected.Camera.AspectRatio)
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth > 0 {
		config.MaxDepth = depth
	}

	camera := renderer.NewCamera(selected.Camera)
	logger := renderer.NewDefaultLogger()

	rt, err := renderer.NewRaytracer(selected.World, camera, config, logger)
	if err != nil {
		return err
	}

	fb, stats := rt.Render()
	logger.Printf("Rendered %d pixels (%d samples) in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Elapsed)

	var sink io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		sink = file
	}

	switch format {
	case "ppm":
		return renderer.WritePPM(sink, fb)
	case "png":
		return renderer.WritePNG(sink, fb)
	default:
		return fmt.Errorf("unknown output format %q (available: ppm, png)", format)
	}
}
