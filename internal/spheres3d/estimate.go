package spheres3d

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// randomOffset picks a pixel offset uniformly from the range Render covers.
func randomOffset(rng *rand.Rand, n int) int {
	lo, hi := pixelRange(n)
	return lo + rng.Intn(hi-lo+1)
}

// estimateCoverage fires random primary rays and returns the fraction that hit any sphere.
func estimateCoverage(t *Tracer, cw, ch, trials int) Real {
	if trials <= 0 || cw <= 0 || ch <= 0 {
		return 0
	}
	workers := t.opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	per, rem := trials/workers, trials%workers
	var wg sync.WaitGroup
	hitsCh := make(chan int, workers)
	cam, vp := t.scene.Camera, t.scene.Viewport

	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(wid, n int) {
			defer wg.Done()
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))

			localHits := 0
			for i := 0; i < n; i++ {
				x, y := randomOffset(rng, cw), randomOffset(rng, ch)
				D := ViewportDirection(x, y, cw, ch, vp, cam)
				if s, _ := t.ClosestIntersection(cam.Origin, D, t.opts.PrimaryTMin, math.Inf(1)); s != nil {
					localHits++
				}
			}
			hitsCh <- localHits
		}(w, n)
	}

	wg.Wait()
	close(hitsCh)

	totalHits := 0
	for h := range hitsCh {
		totalHits += h
	}
	return Real(totalHits) / Real(trials)
}
