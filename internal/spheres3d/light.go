package spheres3d

import (
	"fmt"
	"math"
)

type LightKind uint8

const (
	Ambient LightKind = iota
	Point
	Directional
)

func (k LightKind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Point:
		return "point"
	case Directional:
		return "directional"
	}
	return fmt.Sprintf("LightKind(%d)", uint8(k))
}

// ParseLightKind maps the scene file name of a light type to its kind.
func ParseLightKind(s string) (LightKind, error) {
	switch s {
	case "ambient":
		return Ambient, nil
	case "point":
		return Point, nil
	case "directional":
		return Directional, nil
	}
	return 0, fmt.Errorf("%w: unknown light type %q", ErrInvalidScene, s)
}

// Light is a tagged variant; Position is used by Point, Direction by Directional.
type Light struct {
	Kind      LightKind
	Intensity Real
	Position  Vector3
	Direction Vector3
}

func checkIntensity(i Real) error {
	if !(i >= 0) || math.IsInf(i, 0) {
		return fmt.Errorf("%w: light intensity must be >= 0, got %.6g", ErrInvalidScene, i)
	}
	return nil
}

func NewAmbientLight(intensity Real) (*Light, error) {
	if err := checkIntensity(intensity); err != nil {
		return nil, err
	}
	return &Light{Kind: Ambient, Intensity: intensity}, nil
}

func NewPointLight(intensity Real, position Vector3) (*Light, error) {
	if err := checkIntensity(intensity); err != nil {
		return nil, err
	}
	if !isFiniteVec(position) {
		return nil, fmt.Errorf("%w: point light position must be finite, got %+v", ErrInvalidScene, position)
	}
	L := &Light{Kind: Point, Intensity: intensity, Position: position}
	DebugLog("Created light %+v", L)
	return L, nil
}

// NewDirectionalLight keeps the direction as given; only its orientation matters for shading.
func NewDirectionalLight(intensity Real, direction Vector3) (*Light, error) {
	if err := checkIntensity(intensity); err != nil {
		return nil, err
	}
	if direction.IsZero() || !isFiniteVec(direction) {
		return nil, fmt.Errorf("%w: directional light direction must be finite and non-zero, got %+v", ErrInvalidScene, direction)
	}
	L := &Light{Kind: Directional, Intensity: intensity, Direction: direction}
	DebugLog("Created light %+v", L)
	return L, nil
}

// validate re-checks a light that may have been assembled by hand.
func (l *Light) validate() error {
	if err := checkIntensity(l.Intensity); err != nil {
		return err
	}
	switch l.Kind {
	case Ambient:
	case Point:
		if !isFiniteVec(l.Position) {
			return fmt.Errorf("%w: point light position must be finite, got %+v", ErrInvalidScene, l.Position)
		}
	case Directional:
		if l.Direction.IsZero() || !isFiniteVec(l.Direction) {
			return fmt.Errorf("%w: directional light direction must be finite and non-zero, got %+v", ErrInvalidScene, l.Direction)
		}
	default:
		return fmt.Errorf("%w: unknown light kind %d", ErrInvalidScene, l.Kind)
	}
	return nil
}
