package spheres3d

// rayRecips caches 1/D per axis; par marks axes the ray runs parallel to.
type rayRecips struct {
	inv [3]Real
	par [3]bool
}

func axes(v Vector3) [3]Real { return [3]Real{v.X, v.Y, v.Z} }

// rayAABB clips the ray against the box and returns the parametric entry and exit.
// Negative values are allowed; callers clip against their own [tMin, tMax].
func rayAABB(O Vector3, minP, maxP Vector3, rr rayRecips) (bool, Real, Real) {
	o, lo, hi := axes(O), axes(minP), axes(maxP)
	tNear, tFar := -1e300, 1e300
	for a := 0; a < 3; a++ {
		if rr.par[a] {
			if o[a] < lo[a] || o[a] > hi[a] {
				return false, 0, 0
			}
			continue
		}
		t1 := (lo[a] - o[a]) * rr.inv[a]
		t2 := (hi[a] - o[a]) * rr.inv[a]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = rmax(tNear, t1)
		tFar = rmin(tFar, t2)
		if tNear > tFar {
			return false, 0, 0
		}
	}
	return true, tNear, tFar
}

func computeRayRecips(d Vector3) rayRecips {
	const eps = 1e-18
	var rr rayRecips
	for a, x := range axes(d) {
		if x > eps || x < -eps {
			rr.inv[a] = 1 / x
		} else {
			rr.par[a] = true
		}
	}
	return rr
}
