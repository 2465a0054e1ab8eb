package scene

import (
	"fmt"

	"github.com/aland/go-weekend-raytracer/pkg/geometry"
	"github.com/aland/go-weekend-raytracer/pkg/renderer"
)

// Scene bundles a world, a camera configuration and the render defaults that
// suit it. Scenes are compiled in; construction never does I/O.
type Scene struct {
	World           *geometry.HittableList
	Camera          renderer.CameraConfig
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// RenderConfig derives a renderer configuration from the scene defaults
func (s *Scene) RenderConfig() renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = s.Width
	config.Height = s.Height
	config.SamplesPerPixel = s.SamplesPerPixel
	config.MaxDepth = s.MaxDepth
	return config
}

// New creates a scene by name
func New(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "test":
		return NewTestScene(), nil
	default:
		return nil, fmt.Errorf("scene: unknown scene %q (available: default, test)", name)
	}
}
