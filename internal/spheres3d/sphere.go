package spheres3d

import (
	"fmt"
	"math"
)

// Sphere is the only primitive. Specular is a Phong exponent or NoSpecular (-1).
type Sphere struct {
	Center     Vector3
	Radius     Real
	Color      RGB8
	Specular   Real
	Reflective Real // in [0,1]
}

func NewSphere(center Vector3, radius Real, color RGB8, specular, reflective Real) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("%w: sphere radius must be > 0, got %.6g", ErrInvalidScene, radius)
	}
	if !isFiniteVec(center) {
		return nil, fmt.Errorf("%w: sphere center must be finite, got %+v", ErrInvalidScene, center)
	}
	if !(reflective >= 0 && reflective <= 1) {
		return nil, fmt.Errorf("%w: reflective must be in [0,1], got %.6g", ErrInvalidScene, reflective)
	}
	if specular != NoSpecular && !(specular >= 0 && isFinite(specular)) {
		return nil, fmt.Errorf("%w: specular must be -1 (off) or >= 0, got %.6g", ErrInvalidScene, specular)
	}
	s := &Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Specular:   specular,
		Reflective: reflective,
	}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

// bounds returns the axis-aligned box enclosing the sphere.
func (s *Sphere) bounds() (min, max Vector3) {
	ext := Vector3{s.Radius, s.Radius, s.Radius}
	return s.Center.Sub(ext), s.Center.Add(ext)
}

// IntersectRaySphere solves |O + tD - C|^2 = r^2.
// Both roots are returned unordered; (+Inf, +Inf) means no intersection.
// A zero direction has no solutions either (a == 0).
func IntersectRaySphere(O, D Vector3, s *Sphere) (t1, t2 Real) {
	inf := math.Inf(1)
	CO := FromTwoPoints(s.Center, O)

	a := D.Dot(D)
	if a == 0 {
		return inf, inf
	}
	b := 2 * CO.Dot(D)
	c := CO.Dot(CO) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return inf, inf
	}
	sqrtD := math.Sqrt(disc)
	inv2a := 1 / (2 * a)
	t1 = (-b + sqrtD) * inv2a
	t2 = (-b - sqrtD) * inv2a
	return t1, t2
}
