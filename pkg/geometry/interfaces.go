package geometry

import (
	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/material"
)

// Hittable interface for objects that can be intersected by rays.
// Implementations report a hit only when the parameter t lies strictly
// inside (tMin, tMax).
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
