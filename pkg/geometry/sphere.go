package geometry

import (
	"math"

	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius flips the outward
// normal, turning the sphere into an inward-facing shell; hollow glass
// spheres pair a positive-radius outer surface with a negative-radius inner
// one.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. Radius must be nonzero: the normal
// computation divides by it, so a zero radius is rejected up front instead
// of producing NaNs deep inside a render.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	if radius == 0 {
		panic("geometry: sphere radius must be nonzero")
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients using the half-b simplification
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first, then the farther one.
	// Both bounds are strictly excluded.
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the signed radius flips the normal for inward-facing shells
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
