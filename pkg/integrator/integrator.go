package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray, following at most depth bounces
	RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Color
}

// BackgroundGradient returns the sky color seen along the ray: bottomColor at the horizon
// blending to topColor at the zenith
func BackgroundGradient(ray core.Ray, scene core.Scene) core.Color {
	topColor, bottomColor := scene.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(bottomColor, topColor, t)
}
