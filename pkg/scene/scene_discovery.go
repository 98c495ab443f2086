package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Identifier used on the command line
	DisplayName string // Human readable name
	Description string // One-line description
	create      func() *Scene
}

var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default",
		Description: "Small sphere resting on a large ground sphere",
		create:      NewDefaultScene,
	},
	{
		ID:          "single-sphere",
		DisplayName: "Single Sphere",
		Description: "One sphere of radius 0.5 at (0,0,-1) against the sky",
		create:      NewSingleSphereScene,
	},
	{
		ID:          "three-spheres",
		DisplayName: "Three Spheres",
		Description: "Three spheres side by side on the ground",
		create:      NewThreeSpheresScene,
	},
	{
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "Grid of small spheres receding from the camera",
		create:      NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == id {
			return info.create(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}
