package spheres3d

import (
	"fmt"
	"math"
	"runtime"
)

type BVHMode uint8

const (
	BVHAuto   BVHMode = iota // BVH from AABBBVHFromNObjects spheres up
	BVHAlways                // always build BVH
	BVHNever                 // linear scan only
)

// ParseBVHMode accepts "", "auto", "always" and "never".
func ParseBVHMode(s string) (BVHMode, error) {
	switch s {
	case "", "auto":
		return BVHAuto, nil
	case "always":
		return BVHAlways, nil
	case "never":
		return BVHNever, nil
	}
	return 0, fmt.Errorf("unknown bvh mode %q (want auto, always or never)", s)
}

// Options are the tracer knobs; DefaultOptions gives the classic values.
type Options struct {
	Background  RGB8
	MaxDepth    int  // reflection recursion budget
	Epsilon     Real // tMin for shadow and reflected rays
	PrimaryTMin Real // tMin for camera rays
	Workers     int  // render goroutines, <= 0 means NumCPU
	BVH         BVHMode
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:    MaxDepth,
		Epsilon:     Epsilon,
		PrimaryTMin: PrimaryTMin,
		Workers:     runtime.NumCPU(),
		BVH:         BVHAuto,
	}
}

func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must be >= 0, got %d", ErrInvalidScene, o.MaxDepth)
	}
	if !(o.Epsilon > 0) || !isFinite(o.Epsilon) {
		return fmt.Errorf("%w: epsilon must be > 0, got %.6g", ErrInvalidScene, o.Epsilon)
	}
	if !(o.PrimaryTMin >= 0) || !isFinite(o.PrimaryTMin) {
		return fmt.Errorf("%w: primary tMin must be >= 0, got %.6g", ErrInvalidScene, o.PrimaryTMin)
	}
	return nil
}

// Tracer renders one Scene. It never modifies the scene, so a single Tracer
// can be used from many goroutines.
type Tracer struct {
	scene      *Scene
	opts       Options
	background RGB
	bvh        *AABBNode
}

func NewTracer(scene *Scene, opts Options) (*Tracer, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	t := &Tracer{
		scene:      scene,
		opts:       opts,
		background: opts.Background.toRGB(),
	}
	n := len(scene.Spheres)
	if n > 0 && (opts.BVH == BVHAlways || (opts.BVH == BVHAuto && n >= AABBBVHFromNObjects)) {
		t.bvh = buildBVH(collectSceneObjects(scene))
	}
	DebugLog("Created tracer: spheres=%d lights=%d opts=%+v bvh=%v", n, len(scene.Lights), opts, t.bvh != nil)
	return t, nil
}

func (t *Tracer) Scene() *Scene    { return t.scene }
func (t *Tracer) Options() Options { return t.opts }

// ClosestIntersection returns the nearest sphere hit with t in [tMin, tMax], or nil.
// On equal distances the sphere that comes first in the scene wins.
func (t *Tracer) ClosestIntersection(O, D Vector3, tMin, tMax Real) (*Sphere, Real) {
	if t.bvh != nil {
		return traverseNearest(t.bvh, O, D, tMin, tMax)
	}
	return closestLinear(t.scene.Spheres, O, D, tMin, tMax)
}

func closestLinear(spheres []*Sphere, O, D Vector3, tMin, tMax Real) (*Sphere, Real) {
	closestT := math.Inf(1)
	var closest *Sphere
	for _, s := range spheres {
		t1, t2 := IntersectRaySphere(O, D, s)
		if t1 >= tMin && t1 <= tMax && t1 < closestT {
			closestT, closest = t1, s
		}
		if t2 >= tMin && t2 <= tMax && t2 < closestT {
			closestT, closest = t2, s
		}
	}
	return closest, closestT
}

// TraceRay returns the colour seen along O + tD, t in [tMin, tMax], following
// at most depth mirror reflections.
func (t *Tracer) TraceRay(O, D Vector3, tMin, tMax Real, depth int) (RGB, error) {
	if D.IsZero() || !isFiniteVec(D) {
		return RGB{}, fmt.Errorf("%w: direction=%+v", ErrDegenerateRay, D)
	}
	return t.traceRay(O, D, tMin, tMax, depth), nil
}

func (t *Tracer) traceRay(O, D Vector3, tMin, tMax Real, depth int) RGB {
	sphere, closestT := t.ClosestIntersection(O, D, tMin, tMax)
	if sphere == nil {
		if Debug {
			logRay("miss", Miss, O, D, depth, math.Inf(1))
		}
		return t.background
	}

	P := O.Add(D.Mul(closestT))
	N := FromTwoPoints(sphere.Center, P).Norm()
	V := D.Invert()
	intensity := t.ComputeLighting(P, N, V, sphere.Specular)
	local := sphere.Color.toRGB().Mul(intensity).clamp255()

	// depth is checked first: a fully reflective sphere with no budget left shows its local colour
	rf := sphere.Reflective
	if depth <= 0 || rf <= 0 {
		if Debug {
			if depth <= 0 && rf > 0 {
				logRay("depth_limit", DepthLimit, O, D, depth, closestT)
			} else {
				logRay("hit", Hit, O, D, depth, closestT)
			}
		}
		return local
	}

	R := Reflect(V, N)
	if Debug {
		logRay("reflected", Reflected, P, R, depth, closestT)
	}
	reflected := t.traceRay(P, R, t.opts.Epsilon, math.Inf(1), depth-1)
	return local.blend(reflected, rf)
}

// PixelColor traces the primary ray through canvas offset (x, y).
func (t *Tracer) PixelColor(x, y, cw, ch int) (RGB, error) {
	if cw <= 0 || ch <= 0 {
		return RGB{}, fmt.Errorf("canvas must be > 0 on both axes, got %dx%d", cw, ch)
	}
	D := ViewportDirection(x, y, cw, ch, t.scene.Viewport, t.scene.Camera)
	return t.TraceRay(t.scene.Camera.Origin, D, t.opts.PrimaryTMin, math.Inf(1), t.opts.MaxDepth)
}
