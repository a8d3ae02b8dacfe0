package routing

import (
	"errors"

	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
)

var ErrNegativeCycle = errors.New("graph contains a negative cycle")

// BellmanFord computes single-source shortest path weights from start.
// Geographic graphs never carry negative weights, but this solver stays safe
// for general graphs: a relaxation still possible after V-1 rounds means a
// negative cycle and yields ErrNegativeCycle.
func BellmanFord(g *da.Graph, start string) (map[string]float64, error) {
	n := g.NumberOfNodes()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = pkg.INF_WEIGHT
	}
	if s, ok := g.IndexOf(start); ok {
		dist[s] = 0
	}

	for round := 0; round < n-1; round++ {
		for u := 0; u < n; u++ {
			if dist[u] >= pkg.INF_WEIGHT {
				continue
			}
			g.ForNeighbors(da.Index(u), func(v da.Index, weight float64) {
				if dist[u]+weight < dist[v] {
					dist[v] = dist[u] + weight
				}
			})
		}
	}

	var negative bool
	for u := 0; u < n && !negative; u++ {
		if dist[u] >= pkg.INF_WEIGHT {
			continue
		}
		g.ForNeighbors(da.Index(u), func(v da.Index, weight float64) {
			if dist[u]+weight < dist[v] {
				negative = true
			}
		})
	}
	if negative {
		return nil, ErrNegativeCycle
	}

	result := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		result[g.NameOf(da.Index(i))] = dist[i]
	}
	return result, nil
}
