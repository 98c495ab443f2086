package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	halfWidth := 16.0 / 9.0

	tests := []struct {
		name      string
		u, v      float64
		direction core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-halfWidth, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(halfWidth, 1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"upper left", 0, 1, core.NewVec3(-halfWidth, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)

			if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
				t.Errorf("Expected ray from origin, got %v", ray.Origin)
			}

			tolerance := 1e-9
			if math.Abs(ray.Direction.X-tt.direction.X) > tolerance ||
				math.Abs(ray.Direction.Y-tt.direction.Y) > tolerance ||
				math.Abs(ray.Direction.Z-tt.direction.Z) > tolerance {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_CustomOrigin(t *testing.T) {
	config := DefaultCameraConfig()
	config.Origin = core.NewVec3(1, 2, 3)
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5)
	if !ray.Origin.Equals(config.Origin) {
		t.Errorf("Expected origin %v, got %v", config.Origin, ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray to point down -Z, got %v", ray.Direction)
	}
}
