package spheres3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation angles in degrees (friendlier than radians in scene files).
type Rot3Deg struct {
	Yaw   Real `json:"yaw" yaml:"yaw"`     // around Y
	Pitch Real `json:"pitch" yaml:"pitch"` // around X
	Roll  Real `json:"roll" yaml:"roll"`   // around Z
}

func (r Rot3Deg) Radians() (yaw, pitch, roll Real) {
	const k = math.Pi / 180
	return r.Yaw * k, r.Pitch * k, r.Roll * k
}

// Matrix composes yaw, then pitch, then roll: R = Ry · Rx · Rz.
// Positive yaw turns the +Z view axis towards -X, matching the classic demo camera.
func (r Rot3Deg) Matrix() Mat3 {
	yaw, pitch, roll := r.Radians()
	m := mgl64.Rotate3DY(-yaw).Mul3(mgl64.Rotate3DX(pitch)).Mul3(mgl64.Rotate3DZ(roll))
	return fromMgl(m)
}

// mgl64 is column-major; At(row, col) hides that.
func fromMgl(m mgl64.Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = m.At(r, c)
		}
	}
	return R
}
