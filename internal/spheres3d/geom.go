package spheres3d

// Reflect mirrors ray about a unit normal: N*(2*N·R) - R.
func Reflect(ray, normal Vector3) Vector3 {
	return normal.Mul(2 * normal.Dot(ray)).Sub(ray)
}

// ViewportDirection maps a canvas offset from the center to a world-space ray direction.
func ViewportDirection(px, py, cw, ch int, vp *Viewport, cam *Camera) Vector3 {
	d := Vector3{
		Real(px) * vp.Width / Real(cw),
		Real(py) * vp.Height / Real(ch),
		cam.Distance,
	}
	rot := cam.Rotation
	if rot.IsZero() {
		return d
	}
	return rot.MulVec(d)
}
