package spheres3d

import "math"

// ComputeLighting sums the light intensity reaching point P with surface normal N,
// seen from direction V. Occluded point/directional lights add nothing.
// The result is not clamped.
func (t *Tracer) ComputeLighting(P, N, V Vector3, specular Real) Real {
	intensity := 0.0
	for _, light := range t.scene.Lights {
		if light.Kind == Ambient {
			intensity += light.Intensity
			continue
		}

		var L Vector3
		var tMax Real
		if light.Kind == Point {
			// unnormalised, so t = 1 is the light itself
			L = FromTwoPoints(P, light.Position)
			tMax = 1
		} else {
			L = light.Direction
			tMax = math.Inf(1)
		}
		if L.IsZero() {
			continue
		}

		// Shadow check
		if blocker, bt := t.ClosestIntersection(P, L, t.opts.Epsilon, tMax); blocker != nil {
			if Debug {
				logRay("shadowed", Shadowed, P, L, 0, bt)
			}
			continue
		}

		// diffuse
		nDotL := N.Dot(L)
		if nDotL > 0 {
			intensity += light.Intensity * nDotL / (N.Len() * L.Len())
		}

		// specular
		if specular != NoSpecular {
			R := Reflect(L, N)
			rDotV := R.Dot(V)
			if rDotV > 0 {
				intensity += light.Intensity * math.Pow(rDotV/(R.Len()*V.Len()), specular)
			}
		}
	}
	return intensity
}
