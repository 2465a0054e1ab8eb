package integrator

import (
	"math"
	"math/rand"

	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/geometry"
)

// tMinEpsilon rejects intersections at the origin of secondary rays, which
// would otherwise self-shadow the surface they scattered from (shadow acne)
const tMinEpsilon = 0.001

// PathTracer computes radiance estimates by recursive Monte Carlo path
// tracing. Rays that escape the scene pick up the background gradient; the
// gradient doubles as the only light source.
type PathTracer struct {
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color at the horizon
}

// NewPathTracer creates a path tracer with the standard sky gradient
func NewPathTracer() *PathTracer {
	return &PathTracer{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor computes the color for a single ray. The recursion is bounded by
// depth: an exhausted bounce budget contributes no light and returns black,
// modeling energy loss rather than an error.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hittable, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{} // absorbed
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, random, depth-1))
}

// backgroundGradient returns a vertical gradient based on ray direction
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
