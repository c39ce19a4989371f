package spheres3d

import (
	"fmt"
	"math"
)

// Camera is the viewpoint: origin, distance to the projection plane and orientation.
type Camera struct {
	Origin   Vector3
	Distance Real
	Rotation Mat3
}

// NewCamera validates the distance and the rotation; a zero rotation means identity.
func NewCamera(origin Vector3, distance Real, rotation Mat3) (*Camera, error) {
	if !(distance > 0) || !isFinite(distance) {
		return nil, fmt.Errorf("%w: camera distance must be > 0, got %.6g", ErrInvalidScene, distance)
	}
	if !isFiniteVec(origin) {
		return nil, fmt.Errorf("%w: camera origin must be finite, got %+v", ErrInvalidScene, origin)
	}
	if rotation.IsZero() {
		rotation = I3()
	}
	if !rotation.isFinite() {
		return nil, fmt.Errorf("%w: camera rotation must be finite, got %+v", ErrInvalidScene, rotation.M)
	}
	// a singular rotation collapses some viewport directions to zero
	if det := rotation.Det(); math.Abs(det) < minRotationDet {
		return nil, fmt.Errorf("%w: camera rotation is singular (det=%.6g)", ErrInvalidScene, det)
	}
	c := &Camera{Origin: origin, Distance: distance, Rotation: rotation}
	DebugLog("Created camera %+v", c)
	return c, nil
}

// Viewport is the projection plane size at the camera distance.
type Viewport struct {
	Width, Height Real
}

func NewViewport(width, height Real) (*Viewport, error) {
	if !(width > 0 && height > 0) || !isFinite(width) || !isFinite(height) {
		return nil, fmt.Errorf("%w: viewport must be > 0 on both axes, got %.6gx%.6g", ErrInvalidScene, width, height)
	}
	return &Viewport{Width: width, Height: height}, nil
}
