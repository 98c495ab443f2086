package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// NewDefaultScene creates a small sphere resting on a large ground sphere
func NewDefaultScene() *Scene {
	return NewSceneWith(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100),
	)
}

// NewSingleSphereScene creates a single sphere of radius 0.5 floating in front of the camera
func NewSingleSphereScene() *Scene {
	return NewSceneWith(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
}

// NewThreeSpheresScene creates three spheres side by side on the ground sphere
func NewThreeSpheresScene() *Scene {
	s := NewDefaultScene()
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5))
	return s
}
