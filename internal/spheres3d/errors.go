package spheres3d

import "errors"

var (
	// ErrInvalidScene wraps every validation failure found while building a scene.
	ErrInvalidScene = errors.New("invalid scene")
	// ErrDegenerateRay is returned for a zero-length ray direction.
	ErrDegenerateRay = errors.New("degenerate ray: zero direction")
)
