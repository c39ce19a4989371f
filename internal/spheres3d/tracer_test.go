package spheres3d

import (
	"errors"
	"math"
	"testing"
)

func TestTraceRayMissReturnsBackground(t *testing.T) {
	bg := RGB8{10, 20, 30}
	s := mustSphere(t, Vector3{0, 0, 5}, 1, RGB8{255, 0, 0}, NoSpecular, 0.5)
	amb := mustLight(t)(NewAmbientLight(1))
	for _, tr := range []*Tracer{
		newTestTracer(t, []*Sphere{s}, []*Light{amb}, func(o *Options) { o.Background = bg }),
		newTestTracer(t, nil, nil, func(o *Options) { o.Background = bg }),
	} {
		for _, D := range []Vector3{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}, {3, 3, 1}} {
			c, err := tr.TraceRay(Vector3{}, D, 1, math.Inf(1), 3)
			if err != nil {
				t.Fatal(err)
			}
			if c != (RGB{10, 20, 30}) {
				t.Fatalf("miss along %+v gave %+v, want background", D, c)
			}
		}
	}
}

func TestClosestIntersectionPicksNearRoot(t *testing.T) {
	r := Real(1.5)
	s := mustSphere(t, Vector3{}, r, RGB8{}, NoSpecular, 0)
	tr := newTestTracer(t, []*Sphere{s}, nil, nil)
	O, D := Vector3{0, 0, -2 * r}, Vector3{0, 0, 1}

	hit, tHit := tr.ClosestIntersection(O, D, 0, math.Inf(1))
	if hit != s || !almostEq(tHit, r) {
		t.Fatalf("expected near root t=%g, got %v %g", r, hit, tHit)
	}
	// near root excluded by tMin ⇒ far root
	hit, tHit = tr.ClosestIntersection(O, D, 2*r, math.Inf(1))
	if hit != s || !almostEq(tHit, 3*r) {
		t.Fatalf("expected far root t=%g, got %v %g", 3*r, hit, tHit)
	}
}

func TestClosestIntersectionRangeIsInclusive(t *testing.T) {
	s := mustSphere(t, Vector3{}, 1, RGB8{}, NoSpecular, 0)
	tr := newTestTracer(t, []*Sphere{s}, nil, nil)
	O, D := Vector3{0, 0, -2}, Vector3{0, 0, 1}
	if hit, tHit := tr.ClosestIntersection(O, D, 0, 1); hit != s || tHit != 1 {
		t.Fatalf("root equal to tMax must be accepted: %v %g", hit, tHit)
	}
	if hit, tHit := tr.ClosestIntersection(O, D, 3, 3); hit != s || tHit != 3 {
		t.Fatalf("root equal to tMin must be accepted: %v %g", hit, tHit)
	}
	if hit, tHit := tr.ClosestIntersection(O, D, 1.5, 2.5); hit != nil || !math.IsInf(tHit, 1) {
		t.Fatalf("no root in range, got %v %g", hit, tHit)
	}
}

func TestClosestIntersectionTieBreakSceneOrder(t *testing.T) {
	a := mustSphere(t, Vector3{0, 0, 5}, 1, RGB8{255, 0, 0}, NoSpecular, 0)
	b := mustSphere(t, Vector3{0, 0, 5}, 1, RGB8{0, 0, 255}, NoSpecular, 0)
	for _, mode := range []BVHMode{BVHNever, BVHAlways} {
		set := func(o *Options) { o.BVH = mode }
		if hit, _ := newTestTracer(t, []*Sphere{a, b}, nil, set).ClosestIntersection(Vector3{}, Vector3{0, 0, 1}, 0, math.Inf(1)); hit != a {
			t.Fatalf("mode %d: first sphere in scene order should win", mode)
		}
		if hit, _ := newTestTracer(t, []*Sphere{b, a}, nil, set).ClosestIntersection(Vector3{}, Vector3{0, 0, 1}, 0, math.Inf(1)); hit != b {
			t.Fatalf("mode %d: first sphere in scene order should win (reversed)", mode)
		}
	}
}

func TestTraceRayDegenerateDirection(t *testing.T) {
	tr := newTestTracer(t, nil, nil, nil)
	if _, err := tr.TraceRay(Vector3{}, Vector3{}, 1, math.Inf(1), 3); !errors.Is(err, ErrDegenerateRay) {
		t.Fatalf("expected ErrDegenerateRay, got %v", err)
	}
	if _, err := tr.TraceRay(Vector3{}, Vector3{math.NaN(), 0, 1}, 1, math.Inf(1), 3); !errors.Is(err, ErrDegenerateRay) {
		t.Fatalf("expected ErrDegenerateRay for NaN, got %v", err)
	}
}

func TestLocalColorIsClamped(t *testing.T) {
	s := mustSphere(t, Vector3{0, 0, 3}, 1, RGB8{100, 50, 0}, NoSpecular, 0)
	tr := newTestTracer(t, []*Sphere{s}, []*Light{mustLight(t)(NewAmbientLight(3))}, nil)
	c, err := tr.TraceRay(Vector3{}, Vector3{0, 0, 1}, 1, math.Inf(1), 3)
	if err != nil {
		t.Fatal(err)
	}
	if c != (RGB{255, 150, 0}) {
		t.Fatalf("local colour not clamped per channel: %+v", c)
	}
}

func TestReflectivityZeroIgnoresDepth(t *testing.T) {
	front := mustSphere(t, Vector3{0, 0, 3}, 1, RGB8{200, 100, 50}, 50, 0)
	other := mustSphere(t, Vector3{0, 0, -3}, 1, RGB8{0, 255, 0}, NoSpecular, 1)
	lights := []*Light{
		mustLight(t)(NewAmbientLight(0.2)),
		mustLight(t)(NewPointLight(0.6, Vector3{2, 1, 0})),
	}
	tr := newTestTracer(t, []*Sphere{front, other}, lights, func(o *Options) { o.Background = RGB8{0, 0, 90} })
	D := Vector3{0.1, 0.05, 1}
	want, err := tr.TraceRay(Vector3{}, D, 1, math.Inf(1), 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, depth := range []int{1, 3, 10} {
		got, _ := tr.TraceRay(Vector3{}, D, 1, math.Inf(1), depth)
		if got != want {
			t.Fatalf("depth %d changed a non-reflective result: %+v vs %+v", depth, got, want)
		}
	}
}

func TestReflectivityOneDepthZeroIsLocal(t *testing.T) {
	mirror := mustSphere(t, Vector3{0, 0, 3}, 1, RGB8{255, 0, 0}, NoSpecular, 1)
	tr := newTestTracer(t, []*Sphere{mirror}, []*Light{mustLight(t)(NewAmbientLight(1))},
		func(o *Options) { o.Background = RGB8{0, 0, 200} })

	c0, err := tr.TraceRay(Vector3{}, Vector3{0, 0, 1}, 1, math.Inf(1), 0)
	if err != nil {
		t.Fatal(err)
	}
	if c0 != (RGB{255, 0, 0}) {
		t.Fatalf("depth 0 must return the local colour, got %+v", c0)
	}
	// The reflected ray goes straight back and misses: a perfect mirror shows the background.
	c1, _ := tr.TraceRay(Vector3{}, Vector3{0, 0, 1}, 1, math.Inf(1), 1)
	if !almostEq(c1.R, 0) || !almostEq(c1.G, 0) || !almostEq(c1.B, 200) {
		t.Fatalf("depth 1 perfect mirror should show background, got %+v", c1)
	}
}

func TestTraceRayBlendsReflection(t *testing.T) {
	half := mustSphere(t, Vector3{0, 0, 3}, 1, RGB8{255, 0, 0}, NoSpecular, 0.5)
	tr := newTestTracer(t, []*Sphere{half}, []*Light{mustLight(t)(NewAmbientLight(1))},
		func(o *Options) { o.Background = RGB8{0, 0, 200} })
	c, err := tr.TraceRay(Vector3{}, Vector3{0, 0, 1}, 1, math.Inf(1), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEq(c.R, 127.5) || !almostEq(c.G, 0) || !almostEq(c.B, 100) {
		t.Fatalf("blend wrong: %+v", c)
	}
}

func TestTraceRaySeesReflectedSphere(t *testing.T) {
	// camera looks at a mirror; the reflected ray comes back and hits a green sphere behind the camera
	mirror := mustSphere(t, Vector3{0, 0, 3}, 1, RGB8{0, 0, 0}, NoSpecular, 1)
	green := mustSphere(t, Vector3{0, 0, -3}, 1, RGB8{0, 255, 0}, NoSpecular, 0)
	tr := newTestTracer(t, []*Sphere{mirror, green}, []*Light{mustLight(t)(NewAmbientLight(1))}, nil)
	c, err := tr.TraceRay(Vector3{}, Vector3{0, 0, 1}, 1, math.Inf(1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEq(c.G, 255) || c.R != 0 || c.B != 0 {
		t.Fatalf("expected green reflection, got %+v", c)
	}
}

func TestViewportDirection(t *testing.T) {
	cam, _ := NewCamera(Vector3{}, 2, I3())
	vp, _ := NewViewport(1, 0.5)
	d := ViewportDirection(50, -25, 100, 100, vp, cam)
	if d != (Vector3{0.5, -0.125, 2}) {
		t.Fatalf("viewport remap wrong: %+v", d)
	}
	rot, _ := NewCamera(Vector3{}, 1, Rot3Deg{Yaw: 90}.Matrix())
	d = ViewportDirection(0, 0, 100, 100, vp, rot)
	if !vecAlmostEq(d, Vector3{-1, 0, 0}, 1e-12) {
		t.Fatalf("rotation not applied: %+v", d)
	}
	// hand-built camera with zero rotation behaves as identity
	d = ViewportDirection(0, 0, 100, 100, vp, &Camera{Distance: 1})
	if d != (Vector3{0, 0, 1}) {
		t.Fatalf("zero rotation should be identity: %+v", d)
	}
}

func TestPixelColorEndToEndRedSphere(t *testing.T) {
	red := mustSphere(t, Vector3{0, -1, 3}, 1, RGB8{255, 0, 0}, NoSpecular, 0)
	lights := []*Light{
		mustLight(t)(NewAmbientLight(0.2)),
		mustLight(t)(NewPointLight(0.6, Vector3{2, 1, 0})),
	}
	bg := RGB8{12, 34, 56}
	tr := newTestTracer(t, []*Sphere{red}, lights, func(o *Options) { o.Background = bg })

	c, err := tr.PixelColor(0, 0, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !(c.R > 0) || c.G != 0 || c.B != 0 {
		t.Fatalf("center pixel should be a shade of red, got %+v", c)
	}
	c, err = tr.PixelColor(50, 50, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if c != bg.toRGB() {
		t.Fatalf("corner pixel should be background, got %+v", c)
	}
	if _, err := tr.PixelColor(0, 0, 0, 100); err == nil {
		t.Fatal("expected error for empty canvas")
	}
}

func TestOptionsValidation(t *testing.T) {
	s := validScene(t)
	bad := []func(o *Options){
		func(o *Options) { o.MaxDepth = -1 },
		func(o *Options) { o.Epsilon = 0 },
		func(o *Options) { o.PrimaryTMin = -1 },
		func(o *Options) { o.PrimaryTMin = math.Inf(1) },
	}
	for i, mod := range bad {
		o := DefaultOptions()
		mod(&o)
		if _, err := NewTracer(s, o); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("case %d: expected ErrInvalidScene, got %v", i, err)
		}
	}
	o := DefaultOptions()
	o.Workers = 0
	tr, err := NewTracer(s, o)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Options().Workers < 1 {
		t.Fatal("workers should default to NumCPU")
	}
	for _, in := range []string{"", "auto", "always", "never"} {
		if _, err := ParseBVHMode(in); err != nil {
			t.Fatalf("ParseBVHMode(%q): %v", in, err)
		}
	}
	if _, err := ParseBVHMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown BVH mode")
	}
}
