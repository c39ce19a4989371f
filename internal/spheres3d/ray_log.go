package spheres3d

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit        Category = iota // ray hit a non-reflective sphere
	Miss                       // ray left the scene, background returned
	Shadowed                   // shadow ray found a blocker
	Reflected                  // ray spawned a mirror reflection
	DepthLimit                 // reflective hit with no recursion budget left
)

type RayLog struct {
	Name      string
	Category  Category
	Origin    Vector3
	Direction Vector3
	Depth     int  // remaining recursion budget
	Distance  Real // hit distance, +Inf for misses
}

// RayLogCache counts rays per name and keeps the last one of each for inspection.
type RayLogCache struct {
	mu     sync.Mutex
	counts map[string]int
	last   map[string]RayLog
}

var cache = newRayLogCache()

func newRayLogCache() *RayLogCache {
	return &RayLogCache{
		counts: make(map[string]int),
		last:   make(map[string]RayLog),
	}
}

func logRay(name string, category Category, origin, direction Vector3, depth int, distance Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts[name]++
	cache.last[name] = RayLog{
		Name:      name,
		Category:  category,
		Origin:    origin,
		Direction: direction,
		Depth:     depth,
		Distance:  distance,
	}
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.counts))
	for k := range cache.counts {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("Ray type %s: %d logs, last: %+v\n", k, cache.counts[k], cache.last[k])
	}
}
