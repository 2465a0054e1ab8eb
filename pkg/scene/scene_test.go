package scene

import (
	"testing"
)

func TestNewSceneByName(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"test scene", "test", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.sceneName)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, got none", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for %q, got nil", tt.sceneName)
			}

			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d", s.Width, s.Height)
			}
			if s.SamplesPerPixel <= 0 {
				t.Errorf("Samples per pixel should be positive, got %d", s.SamplesPerPixel)
			}
			if s.MaxDepth <= 0 {
				t.Errorf("Max depth should be positive, got %d", s.MaxDepth)
			}
			if len(s.World.Objects) == 0 {
				t.Error("Scene world should not be empty")
			}
		})
	}
}

func TestDefaultSceneComposition(t *testing.T) {
	s := NewDefaultScene()

	if got := len(s.World.Objects); got != 12 {
		t.Errorf("Expected 12 spheres in the default scene, got %d", got)
	}

	// The render config derived from the scene must pass validation
	if err := s.RenderConfig().Validate(); err != nil {
		t.Errorf("Default scene render config should be valid: %v", err)
	}

	if s.Camera.AspectRatio != 16.0/9.0 {
		t.Errorf("Expected 16:9 aspect ratio, got %f", s.Camera.AspectRatio)
	}
}

func TestTestSceneIsTiny(t *testing.T) {
	s := NewTestScene()

	if s.Width != 2 || s.Height != 2 {
		t.Errorf("Test scene should be 2x2, got %dx%d", s.Width, s.Height)
	}
	if s.SamplesPerPixel != 1 {
		t.Errorf("Test scene should use 1 sample per pixel, got %d", s.SamplesPerPixel)
	}
}
