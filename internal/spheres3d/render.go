package spheres3d

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// PixelSink receives rendered pixels addressed by signed offsets from the canvas center.
// PutPixel is called concurrently, each pixel at most once.
type PixelSink interface {
	Width() int
	Height() int
	PutPixel(x, y int, c RGB)
}

// pixelRange is the inclusive offset range [-n/2, n/2] rendered along an axis of n pixels.
func pixelRange(n int) (lo, hi int) { return -n / 2, n / 2 }

// Render traces every offset in [-w/2, w/2] × [-h/2, h/2] and hands the colours to canvas.
// Rows are spread over Options.Workers goroutines; ctx is checked between rows.
func (t *Tracer) Render(ctx context.Context, canvas PixelSink) error {
	cw, ch := canvas.Width(), canvas.Height()
	if cw <= 0 || ch <= 0 {
		return fmt.Errorf("canvas must be > 0 on both axes, got %dx%d", cw, ch)
	}
	x0, x1 := pixelRange(cw)
	y0, y1 := pixelRange(ch)
	cols, rows := x1-x0+1, y1-y0+1

	var done int64
	nextPrint := int64(1)
	if rows >= 100 {
		nextPrint = int64(rows / 100) // ~1%
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.Workers)
	for y := y0; y <= y1; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// private row buffer, written out only once the whole row is traced
			row := make([]RGB, cols)
			for i := range row {
				c, err := t.PixelColor(x0+i, y, cw, ch)
				if err != nil {
					return fmt.Errorf("pixel (%d,%d): %w", x0+i, y, err)
				}
				row[i] = c
			}
			for i, c := range row {
				canvas.PutPixel(x0+i, y, c)
			}
			finished := atomic.AddInt64(&done, 1)
			if Progress && finished%nextPrint == 0 {
				fmt.Printf("[PROGRESS] %.2f%%\n", Real(finished)*100/Real(rows))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
