package spheres3d

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
)

// Canvas is an in-memory image addressed by offsets from its center, +y up.
// Besides the 8-bit image it keeps the unclamped traced colours in Buf.
type Canvas struct {
	W, H int
	Buf  []Real // flat: (sy*W + sx)*3 + c, sy = 0 at the top

	mu sync.Mutex // gg.Context carries the current colour, so writes are serialised
	dc *gg.Context
}

// NewCanvas allocates a w×h canvas cleared to opaque black.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas must be > 0 on both axes, got %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB255(0, 0, 0)
	dc.Clear()
	c := &Canvas{
		W:   w,
		H:   h,
		Buf: make([]Real, w*h*3),
		dc:  dc,
	}
	DebugLog("Created canvas %dx%d", w, h)
	return c, nil
}

func (c *Canvas) Width() int  { return c.W }
func (c *Canvas) Height() int { return c.H }

// toScreen maps a center offset to image coordinates; ok is false outside the image.
func (c *Canvas) toScreen(x, y int) (sx, sy int, ok bool) {
	sx = c.W/2 + x
	sy = c.H/2 - y
	return sx, sy, sx >= 0 && sx < c.W && sy >= 0 && sy < c.H
}

// PutPixel stores col at offset (x, y). Channels are rounded and clamped to [0,255]
// for the image; Buf keeps the raw values. Offsets outside the image are dropped.
func (c *Canvas) PutPixel(x, y int, col RGB) {
	sx, sy, ok := c.toScreen(x, y)
	if !ok {
		return
	}
	base := (sy*c.W + sx) * 3
	c.Buf[base+ChR] = col.R
	c.Buf[base+ChG] = col.G
	c.Buf[base+ChB] = col.B

	b := col.Bytes()
	c.mu.Lock()
	c.dc.SetRGB255(int(b.R), int(b.G), int(b.B))
	c.dc.SetPixel(sx, sy)
	c.mu.Unlock()
}

// PixelAt returns the stored 8-bit colour at offset (x, y).
func (c *Canvas) PixelAt(x, y int) (RGB8, bool) {
	sx, sy, ok := c.toScreen(x, y)
	if !ok {
		return RGB8{}, false
	}
	c.mu.Lock()
	r, g, b, _ := c.dc.Image().At(sx, sy).RGBA()
	c.mu.Unlock()
	return RGB8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, true
}

// Image exposes the 8-bit image; do not use it while a render is running.
func (c *Canvas) Image() image.Image { return c.dc.Image() }
