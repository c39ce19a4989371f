package spheres3d

import "fmt"

// Scene holds everything one render reads. It must not change while a render runs.
// Sphere order is significant: on equal hit distances the earlier sphere wins.
type Scene struct {
	Camera   *Camera
	Viewport *Viewport
	Spheres  []*Sphere
	Lights   []*Light
}

func NewScene(camera *Camera, viewport *Viewport) *Scene {
	s := &Scene{Camera: camera, Viewport: viewport}
	DebugLog("Created scene camera=%+v viewport=%+v", camera, viewport)
	return s
}

func (s *Scene) AddSphere(sp *Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

func (s *Scene) AddLight(l *Light) {
	s.Lights = append(s.Lights, l)
}

// Validate re-runs the constructor checks so a hand-built Scene is rejected before rendering.
func (s *Scene) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	if s.Camera == nil {
		return fmt.Errorf("%w: scene has no camera", ErrInvalidScene)
	}
	if _, err := NewCamera(s.Camera.Origin, s.Camera.Distance, s.Camera.Rotation); err != nil {
		return err
	}
	if s.Viewport == nil {
		return fmt.Errorf("%w: scene has no viewport", ErrInvalidScene)
	}
	if _, err := NewViewport(s.Viewport.Width, s.Viewport.Height); err != nil {
		return err
	}
	for i, sp := range s.Spheres {
		if sp == nil {
			return fmt.Errorf("%w: sphere #%d is nil", ErrInvalidScene, i)
		}
		if _, err := NewSphere(sp.Center, sp.Radius, sp.Color, sp.Specular, sp.Reflective); err != nil {
			return fmt.Errorf("sphere #%d: %w", i, err)
		}
	}
	for i, l := range s.Lights {
		if l == nil {
			return fmt.Errorf("%w: light #%d is nil", ErrInvalidScene, i)
		}
		if err := l.validate(); err != nil {
			return fmt.Errorf("light #%d: %w", i, err)
		}
	}
	return nil
}
