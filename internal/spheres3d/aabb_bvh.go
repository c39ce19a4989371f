package spheres3d

import (
	"math"
	"sort"
)

// bvhLeaf remembers the scene index of its sphere so traversal can keep
// the same tie-break as the linear scan.
type bvhLeaf struct {
	min, max Vector3
	idx      int
	sphere   *Sphere
}

type AABBNode struct {
	min, max Vector3
	left     *AABBNode
	right    *AABBNode
	leafObjs []bvhLeaf // non-nil ⇒ leaf
}

// Boxes are padded slightly so a grazing hit on the box face is never culled by rounding.
const aabbPad = 1e-9

func collectSceneObjects(s *Scene) []bvhLeaf {
	out := make([]bvhLeaf, 0, len(s.Spheres))
	for i, sp := range s.Spheres {
		if sp == nil {
			continue
		}
		minP, maxP := sp.bounds()
		pad := aabbPad * (1 + sp.Radius)
		out = append(out, bvhLeaf{
			min:    minP.Sub(Vector3{pad, pad, pad}),
			max:    maxP.Add(Vector3{pad, pad, pad}),
			idx:    i,
			sphere: sp,
		})
	}
	return out
}

func buildBVH(objs []bvhLeaf) *AABBNode {
	return buildBVHRec(objs, 0)
}

func buildBVHRec(objs []bvhLeaf, depth int) *AABBNode {
	n := len(objs)
	if n == 0 {
		return nil
	}
	if n <= AABBBVHMaxLeafSize {
		minP, maxP := objs[0].min, objs[0].max
		for i := 1; i < n; i++ {
			minP, maxP = aabbUnion(minP, maxP, objs[i].min, objs[i].max)
		}
		return &AABBNode{min: minP, max: maxP, leafObjs: objs}
	}

	// split along the axis where the sphere centers spread the most
	minP, maxP := objs[0].min, objs[0].max
	cmin, cmax := axes(objs[0].sphere.Center), axes(objs[0].sphere.Center)
	for _, o := range objs[1:] {
		minP, maxP = aabbUnion(minP, maxP, o.min, o.max)
		for a, c := range axes(o.sphere.Center) {
			cmin[a], cmax[a] = rmin(cmin[a], c), rmax(cmax[a], c)
		}
	}
	axis := longestAxis(FromTwoPoints(Vector3{cmin[0], cmin[1], cmin[2]}, Vector3{cmax[0], cmax[1], cmax[2]}))
	if cmax[axis]-cmin[axis] <= 1e-18 {
		// all centers coincide, use the box instead
		axis = longestAxis(FromTwoPoints(minP, maxP))
	}

	// Sort by chosen centroid axis, split at median
	sort.SliceStable(objs, func(i, j int) bool {
		ci, cj := axes(objs[i].sphere.Center)[axis], axes(objs[j].sphere.Center)[axis]
		if ci == cj {
			return objs[i].idx < objs[j].idx
		}
		return ci < cj
	})
	mid := n / 2
	left := buildBVHRec(objs[:mid], depth+1)
	right := buildBVHRec(objs[mid:], depth+1)

	return &AABBNode{min: minP, max: maxP, left: left, right: right}
}

func aabbUnion(aMin, aMax, bMin, bMax Vector3) (Vector3, Vector3) {
	return Vector3{
			rmin(aMin.X, bMin.X),
			rmin(aMin.Y, bMin.Y),
			rmin(aMin.Z, bMin.Z),
		}, Vector3{
			rmax(aMax.X, bMax.X),
			rmax(aMax.Y, bMax.Y),
			rmax(aMax.Z, bMax.Z),
		}
}

func longestAxis(ext Vector3) int {
	e := axes(ext)
	axis := 0
	if e[1] > e[axis] {
		axis = 1
	}
	if e[2] > e[axis] {
		axis = 2
	}
	return axis
}

// traverseNearest is the BVH twin of closestLinear (iterative, stack-based).
// It keeps the lexicographic minimum of (t, scene index), so results match the linear scan exactly.
func traverseNearest(root *AABBNode, O, D Vector3, tMin, tMax Real) (*Sphere, Real) {
	bestT := math.Inf(1)
	bestIdx := -1
	var best *Sphere
	if root == nil {
		return nil, bestT
	}
	rr := computeRayRecips(D)

	accept := func(t Real, l *bvhLeaf) {
		if t < tMin || t > tMax {
			return
		}
		if t < bestT || (t == bestT && l.idx < bestIdx) {
			bestT, bestIdx, best = t, l.idx, l.sphere
		}
	}
	visit := func(n *AABBNode) (bool, Real) {
		ok, near, far := rayAABB(O, n.min, n.max, rr)
		if !ok || far < tMin || near > tMax || near > bestT {
			return false, 0
		}
		return true, near
	}

	stack := []*AABBNode{root}
	for len(stack) > 0 {
		// pop
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ok, _ := visit(n); !ok {
			continue
		}

		if n.leafObjs != nil {
			for i := range n.leafObjs {
				l := &n.leafObjs[i]
				t1, t2 := IntersectRaySphere(O, D, l.sphere)
				accept(t1, l)
				accept(t2, l)
			}
			continue
		}

		// order children near→far (push far first so near is processed next)
		var lOK, rOK bool
		var lT, rT Real
		if n.left != nil {
			lOK, lT = visit(n.left)
		}
		if n.right != nil {
			rOK, rT = visit(n.right)
		}
		if lOK && rOK {
			if lT < rT {
				stack = append(stack, n.right, n.left)
			} else {
				stack = append(stack, n.left, n.right)
			}
		} else if lOK {
			stack = append(stack, n.left)
		} else if rOK {
			stack = append(stack, n.right)
		}
	}
	return best, bestT
}
