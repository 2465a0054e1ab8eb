package geometry

import (
	"github.com/aland/go-weekend-raytracer/pkg/core"
	"github.com/aland/go-weekend-raytracer/pkg/material"
)

// HittableList aggregates hittable objects into a scene. Members are shared
// references; the same material (or even the same object) may appear behind
// several entries.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit returns the nearest qualifying intersection across all members.
// Shrinking the upper bound to each accepted hit's t guarantees the result
// is globally closest regardless of insertion order.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
