package renderer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/geometry"
	"github.com/aland/go-weekend-raytracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-row random generators
	Workers         int   // Parallel workers; 0 = one per CPU, 1 = sequential
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          450,
		SamplesPerPixel: 250,
		MaxDepth:        10,
		Seed:            42,
	}
}

// Validate rejects configurations that would drive the sampling math into
// undefined territory
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("renderer: image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("renderer: samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("renderer: max depth must be positive, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("renderer: workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Raytracer handles the rendering process: it drives the camera sampling
// loop and hands each ray to the integrator
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator *integrator.PathTracer
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The configuration is validated up
// front so malformed sample or depth counts fail fast instead of producing
// a silently broken render.
func NewRaytracer(world geometry.Hittable, camera *Camera, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracer(),
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces the full image and returns the framebuffer with render
// statistics. Rows are distributed across workers; each row has its own
// seeded random generator, so the output is identical for a given seed
// regardless of worker count.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	pool := newRowPool(rt, fb)
	pool.start()

	for y := 0; y < rt.config.Height; y++ {
		pool.submit(y)
	}
	pool.close()

	// Drain results for progress reporting; rows complete out of order but
	// each writes only its own framebuffer slice
	remaining := rt.config.Height
	for range pool.results() {
		remaining--
		rt.logger.Printf("\rScanlines remaining: %d ", remaining)
	}
	rt.logger.Printf("\rScanlines remaining: 0 \n")

	stats := RenderStats{
		TotalPixels:    rt.config.Width * rt.config.Height,
		TotalSamples:   rt.config.Width * rt.config.Height * rt.config.SamplesPerPixel,
		AverageSamples: float64(rt.config.SamplesPerPixel),
		Elapsed:        time.Since(start),
	}
	return fb, stats
}

// renderRow renders one image row into the framebuffer. Image row y counts
// from the top; the viewport coordinate j counts from the bottom, matching
// the top-to-bottom output order of the image stream.
func (rt *Raytracer) renderRow(fb *Framebuffer, y int, random *rand.Rand) {
	j := rt.config.Height - 1 - y

	// Divisors guard the degenerate 1-pixel axis
	sDiv := float64(max(rt.config.Width-1, 1))
	tDiv := float64(max(rt.config.Height-1, 1))

	for i := 0; i < rt.config.Width; i++ {
		ps := fb.At(i, y)
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			s := (float64(i) + random.Float64()) / sDiv
			t := (float64(j) + random.Float64()) / tDiv

			ray := rt.camera.GetRay(s, t, random)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, random, rt.config.MaxDepth))
		}
	}
}
