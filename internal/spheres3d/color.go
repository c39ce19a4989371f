package spheres3d

import "math"

// RGB8 is a material or background colour, 0..255 per channel.
type RGB8 struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// RGB is a traced colour on the 0..255 scale. Blended results are not clamped.
type RGB struct {
	R, G, B Real
}

func (c RGB8) toRGB() RGB { return RGB{Real(c.R), Real(c.G), Real(c.B)} }

func (c RGB) Mul(s Real) RGB          { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) Add(o RGB) RGB           { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) clamp255() RGB           { return RGB{clamp(c.R, 0, 255), clamp(c.G, 0, 255), clamp(c.B, 0, 255)} }
func (c RGB) blend(o RGB, k Real) RGB { return c.Mul(1 - k).Add(o.Mul(k)) }

// Bytes rounds and clamps each channel, this is the only place colours get quantised.
func (c RGB) Bytes() RGB8 {
	q := func(x Real) uint8 {
		if math.IsNaN(x) {
			return 0
		}
		return uint8(clamp(math.Round(x), 0, 255))
	}
	return RGB8{q(c.R), q(c.G), q(c.B)}
}
