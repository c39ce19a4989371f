package spheres3d

// 3×3 matrix (row-major)
type Mat3 struct {
	M [3][3]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Det expands along the first row.
func (A Mat3) Det() Real {
	m := A.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (A Mat3) isFinite() bool {
	for _, row := range A.M {
		for _, v := range row {
			if !isFinite(v) {
				return false
			}
		}
	}
	return true
}

// IsZero is true for the zero value, which callers treat as "no rotation given".
func (A Mat3) IsZero() bool { return A == Mat3{} }
