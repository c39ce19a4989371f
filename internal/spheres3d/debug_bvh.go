package spheres3d

import (
	"fmt"
	"strings"
)

// DumpAABBBVH prints the tracer's BVH tree with indentation (one tab per level).
// It prints subtree counts (nodes, leaves, spheres) and the AABB min/max for each node.
func DumpAABBBVH(t *Tracer) bool {
	if t == nil || t.bvh == nil {
		fmt.Println("[BVH] <empty>")
		return false
	}
	memo := make(map[*AABBNode]bvhCounts, 64)
	totals := bvhCount(t.bvh, memo)
	fmt.Printf("[BVH] root: nodes=%d leaves=%d spheres=%d\n", totals.nodes, totals.leaves, totals.objs)
	bvhPrint(t.bvh, 0, memo)
	return true
}

type bvhCounts struct {
	nodes  int
	leaves int
	objs   int
}

func bvhCount(n *AABBNode, memo map[*AABBNode]bvhCounts) bvhCounts {
	if n == nil {
		return bvhCounts{}
	}
	if c, ok := memo[n]; ok {
		return c
	}
	if n.leafObjs != nil {
		c := bvhCounts{nodes: 1, leaves: 1, objs: len(n.leafObjs)}
		memo[n] = c
		return c
	}
	lc := bvhCount(n.left, memo)
	rc := bvhCount(n.right, memo)
	c := bvhCounts{
		nodes:  1 + lc.nodes + rc.nodes,
		leaves: lc.leaves + rc.leaves,
		objs:   lc.objs + rc.objs,
	}
	memo[n] = c
	return c
}

func bvhPrint(n *AABBNode, depth int, memo map[*AABBNode]bvhCounts) {
	if n == nil {
		return
	}
	ind := strings.Repeat("\t", depth)
	c := memo[n]
	if n.leafObjs != nil {
		idx := make([]string, 0, len(n.leafObjs))
		for _, l := range n.leafObjs {
			idx = append(idx, fmt.Sprint(l.idx))
		}
		fmt.Printf("%sLEAF  spheres=[%s] | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
			ind, strings.Join(idx, ","),
			n.min.X, n.min.Y, n.min.Z,
			n.max.X, n.max.Y, n.max.Z,
		)
		return
	}
	fmt.Printf("%sNODE  nodes=%d leaves=%d spheres=%d | min=(%.5g,%.5g,%.5g) max=(%.5g,%.5g,%.5g)\n",
		ind, c.nodes, c.leaves, c.objs,
		n.min.X, n.min.Y, n.min.Z,
		n.max.X, n.max.Y, n.max.Z,
	)
	bvhPrint(n.left, depth+1, memo)
	bvhPrint(n.right, depth+1, memo)
}
