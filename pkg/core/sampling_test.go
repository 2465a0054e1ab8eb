package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v lies outside the unit sphere (|p|=%f)", p, p.Length())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	// Every sample must be unit length; the mean over many samples should be
	// near the origin if the distribution is not biased toward a hemisphere.
	sum := Vec3{}
	const n = 5000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
		sum = sum.Add(v)
	}

	mean := sum.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Mean of uniform sphere samples should be near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Disk sample should have Z=0, got %v", p)
		}
		if p.Dot(p) >= 1.0 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}
}

func TestSamplingIsDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		if RandomUnitVector(a) != RandomUnitVector(b) {
			t.Fatal("Same seed should produce identical sample sequences")
		}
	}
}
