package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

const (
	// DefaultShadowEpsilon is the minimum hit distance, suppressing self-intersection at bounce origins
	DefaultShadowEpsilon = 1e-4
	// DefaultReflectance is the fraction of energy kept per diffuse bounce
	DefaultReflectance = 0.5
)

// DiffuseIntegrator traces paths that bounce off every surface in a uniformly random
// direction of the hemisphere around the hit normal, losing a fixed share of energy each time
type DiffuseIntegrator struct {
	ShadowEpsilon float64
	Reflectance   float64
}

// NewDiffuseIntegrator creates an integrator with the default epsilon and reflectance
func NewDiffuseIntegrator() *DiffuseIntegrator {
	return &DiffuseIntegrator{
		ShadowEpsilon: DefaultShadowEpsilon,
		Reflectance:   DefaultReflectance,
	}
}

// RayColor follows the path iteratively, carrying the accumulated attenuation.
// Running out of depth counts as full absorption.
func (d *DiffuseIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler, depth int) core.Color {
	attenuation := 1.0

	for ; depth > 0; depth-- {
		hit, isHit := scene.Hit(ray, d.ShadowEpsilon, core.Infinity)
		if !isHit {
			return BackgroundGradient(ray, scene).Multiply(attenuation)
		}

		direction := core.SampleUniformHemisphere(hit.Normal, sampler.Get2D())
		ray = core.NewRay(hit.Point, direction)
		attenuation *= d.Reflectance
	}

	return core.Color{}
}
