package scene

import (
	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/geometry"
	"github.com/aland/go-weekend-raytracer/pkg/material"
	"github.com/aland/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the showcase scene: a large ground sphere, three
// big spheres (diffuse, hollow glass around a bronze core, brushed metal)
// and a front row of small spheres mixing glass shells and metals
func NewDefaultScene() *Scene {
	world := geometry.NewHittableList()

	// Materials, shared across spheres
	ground := material.NewLambertian(core.NewVec3(0.3, 0.0, 0.4))
	diffusePink := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.6))
	glass := material.NewDielectric(1.5)
	metalSilver := material.NewMetal(core.NewVec3(0.7, 0.7, 0.7), 0.2)
	metalFuzzy := material.NewMetal(core.NewVec3(0.7, 0.7, 0.7), 0.9)
	metalBronze := material.NewMetal(core.NewVec3(0.8, 0.45, 0.3), 0.6)
	metalRed := material.NewMetal(core.NewVec3(1.0, 0.0, 0.0), 0.1)

	world.Add(
		// Ground
		geometry.NewSphere(core.NewVec3(0.0, -1000.5, -1.0), 1000.0, ground),
		// Middle sphere, diffuse
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5, diffusePink),
		// Left sphere: hollow double-sided glass shell with a bronze core
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), -0.49, glass),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.2, metalBronze),
		// Right sphere, metal
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, metalSilver),
		// Front row of small spheres
		geometry.NewSphere(core.NewVec3(-1.2, -0.3, -0.3), 0.2, glass),
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, -0.3), 0.2, glass),
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, -0.3), -0.19, glass),
		geometry.NewSphere(core.NewVec3(0.0, -0.3, -0.3), 0.2, metalFuzzy),
		geometry.NewSphere(core.NewVec3(0.6, -0.3, -0.3), 0.2, metalRed),
		geometry.NewSphere(core.NewVec3(1.2, -0.3, -0.3), 0.2, metalBronze),
	)

	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0.35, 0.5, 2),
		LookAt:      core.NewVec3(0, 0, -0.75),
		Up:          core.NewVec3(0, 1.75, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.075,
		// FocusDistance 0 = auto: focus on the look-at point
	}

	return &Scene{
		World:           world,
		Camera:          camera,
		Width:           800,
		Height:          450,
		SamplesPerPixel: 250,
		MaxDepth:        10,
	}
}

// NewTestScene creates a minimal deterministic scene: one diffuse sphere
// centered on the optical axis, rendered at 2x2 with a single sample per
// pixel. Useful as a fast golden-output regression target.
func NewTestScene() *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	camera := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	}

	return &Scene{
		World:           world,
		Camera:          camera,
		Width:           2,
		Height:          2,
		SamplesPerPixel: 1,
		MaxDepth:        5,
	}
}
