package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         []core.Shape // Objects in the scene, owned by the scene
	TopColor       core.Color   // Sky color at the zenith
	BottomColor    core.Color   // Sky color at the horizon and below
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// NewScene creates an empty scene with the default sky, camera and sampling settings
func NewScene() *Scene {
	return &Scene{
		Shapes:         make([]core.Shape, 0),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// NewSceneWith creates a default scene holding the given shapes
func NewSceneWith(shapes ...core.Shape) *Scene {
	s := NewScene()
	s.Shapes = append(s.Shapes, shapes...)
	return s
}

// Add appends a shape to the scene
func (s *Scene) Add(shape core.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// Clear removes all shapes
func (s *Scene) Clear() {
	s.Shapes = s.Shapes[:0]
}

// Hit returns the closest intersection among all shapes.
// Each accepted hit shrinks the search interval so later shapes can only report closer hits.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Color) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
