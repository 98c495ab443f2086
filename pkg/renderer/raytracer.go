package renderer

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; each scanline derives its own generator from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          ImageHeight(400, 16.0/9.0),
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// ImageHeight derives the image height from a width and aspect ratio, never less than one row
func ImageHeight(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}

// Validate reports the first invalid setting
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("image width must be at least 1, got %d", c.Width)
	case c.Height < 1:
		return fmt.Errorf("image height must be at least 1, got %d", c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	return nil
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      core.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the diffuse integrator
func NewRaytracer(scene core.Scene, camera *Camera, config SamplingConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}

	return &Raytracer{
		scene:      scene,
		camera:     camera,
		integrator: integrator.NewDiffuseIntegrator(),
		config:     config,
		logger:     NewNopLogger(),
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger sets where progress output goes
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// SamplePixel returns the sum of SamplesPerPixel jittered samples for pixel (i, j),
// where j counts scanlines from the bottom of the image
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) core.Color {
	// Single-pixel dimensions would otherwise divide by zero
	uScale := 1.0 / float64(max(1, rt.config.Width-1))
	vScale := 1.0 / float64(max(1, rt.config.Height-1))

	var colorAccum core.Color
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		u := (float64(i) + jitter.X) * uScale
		v := (float64(j) + jitter.Y) * vScale

		ray := rt.camera.GetRay(u, v)
		colorAccum.AddAssign(rt.integrator.RayColor(ray, rt.scene, sampler, rt.config.MaxDepth))
	}

	return colorAccum
}

// RenderRow renders scanline j into a fresh buffer ordered left to right
func (rt *Raytracer) RenderRow(j int, sampler core.Sampler) []core.Color {
	row := make([]core.Color, rt.config.Width)
	for i := range row {
		row[i] = rt.SamplePixel(i, j, sampler)
	}
	return row
}
