package spheres3d

import (
	"math"
	"testing"
)

func almostEq(a, b Real) bool { return math.Abs(a-b) < 1e-9 }

func vecAlmostEq(a, b Vector3, eps Real) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func mustSphere(t *testing.T, c Vector3, r Real, col RGB8, spec, refl Real) *Sphere {
	t.Helper()
	s, err := NewSphere(c, r, col, spec, refl)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// mustLight wraps a light constructor: mustLight(t)(NewPointLight(...)).
func mustLight(t *testing.T) func(*Light, error) *Light {
	return func(l *Light, err error) *Light {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return l
	}
}

// newTestTracer builds a tracer with the camera at the origin looking down +Z,
// a 1x1 viewport at distance 1 and two workers.
func newTestTracer(t *testing.T, spheres []*Sphere, lights []*Light, mod func(*Options)) *Tracer {
	t.Helper()
	cam, err := NewCamera(Vector3{}, 1, Mat3{})
	if err != nil {
		t.Fatal(err)
	}
	vp, err := NewViewport(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	scene := NewScene(cam, vp)
	for _, s := range spheres {
		scene.AddSphere(s)
	}
	for _, l := range lights {
		scene.AddLight(l)
	}
	opts := DefaultOptions()
	opts.Workers = 2
	if mod != nil {
		mod(&opts)
	}
	tr, err := NewTracer(scene, opts)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}
