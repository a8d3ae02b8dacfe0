package routing

import (
	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
)

// FordFulkerson computes the maximum flow from source to sink, treating edge
// weights as capacities. Augmenting paths are found with BFS (Edmonds-Karp),
// so the result is exact for real-valued capacities. Unknown endpoints or
// source == sink yield zero flow.
func FordFulkerson(g *da.Graph, source, sink string) float64 {
	s, okSource := g.IndexOf(source)
	t, okSink := g.IndexOf(sink)
	if !okSource || !okSink || s == t {
		return 0
	}

	n := g.NumberOfNodes()
	// residual capacities; the dense matrix keeps reverse-edge bookkeeping
	// trivial and the node sets here are small
	residual := make([][]float64, n)
	for i := range residual {
		residual[i] = make([]float64, n)
	}
	for u := 0; u < n; u++ {
		g.ForNeighbors(da.Index(u), func(v da.Index, weight float64) {
			residual[u][v] = weight
		})
	}

	parent := make([]da.Index, n)

	bfsFindPath := func() bool {
		for i := range parent {
			parent[i] = da.INVALID_NODE_ID
		}
		parent[s] = s
		queue := []da.Index{s}

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := da.Index(0); v < da.Index(n); v++ {
				if parent[v] == da.INVALID_NODE_ID && residual[u][v] > 0 {
					parent[v] = u
					if v == t {
						return true
					}
					queue = append(queue, v)
				}
			}
		}
		return false
	}

	maxFlow := 0.0
	for bfsFindPath() {
		pathFlow := pkg.INF_WEIGHT
		for v := t; v != s; v = parent[v] {
			u := parent[v]
			if residual[u][v] < pathFlow {
				pathFlow = residual[u][v]
			}
		}

		for v := t; v != s; v = parent[v] {
			u := parent[v]
			residual[u][v] -= pathFlow
			residual[v][u] += pathFlow
		}

		maxFlow += pathFlow
	}

	return maxFlow
}
