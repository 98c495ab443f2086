package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// NewSphereGridScene creates a grid of small spheres receding from the camera on the ground sphere
func NewSphereGridScene() *Scene {
	s := NewScene()
	s.SamplingConfig.SamplesPerPixel = 50

	// Ground sphere with its top at y = -0.5
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000))

	// Columns spread across the view, rows recede into the distance
	columns, rows := 7, 5
	spacing := 0.6

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			// Alternate sphere sizes so neighbours never touch
			radius := 0.15 + 0.05*math.Mod(float64(row+col), 2)

			x := (float64(col) - float64(columns-1)/2.0) * spacing
			z := -1.2 - float64(row)*spacing*1.5
			y := -0.5 + radius // Sits on the ground

			s.Add(geometry.NewSphere(core.NewVec3(x, y, z), radius))
		}
	}

	return s
}
