package routing

import (
	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
)

// Dijkstra computes single-source shortest path weights from start to every
// node of g, using a four-ary min-heap frontier with DecreaseKey.
// Edge weights must be non-negative (geographic distances are). Unreachable
// nodes map to pkg.INF_WEIGHT, an unknown start leaves every node unreachable.
// O((V+E) log V).
func Dijkstra(g *da.Graph, start string) map[string]float64 {
	n := g.NumberOfNodes()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = pkg.INF_WEIGHT
	}

	s, ok := g.IndexOf(start)
	if ok {
		pq := da.NewFourAryHeap[da.Index]()
		pq.Preallocate(n)

		heapNodes := make([]*da.PriorityQueueNode[da.Index], n)
		settled := make([]bool, n)

		dist[s] = 0
		heapNodes[s] = da.NewPriorityQueueNode(0, s)
		pq.Insert(heapNodes[s])

		for !pq.IsEmpty() {
			minNode, _ := pq.ExtractMin()
			u := minNode.GetItem()
			if settled[u] {
				continue
			}
			settled[u] = true

			g.ForNeighbors(u, func(v da.Index, weight float64) {
				if settled[v] {
					return
				}
				newDist := dist[u] + weight
				if newDist >= dist[v] {
					return
				}

				dist[v] = newDist
				if heapNodes[v] != nil {
					// already on the frontier, lower its key
					_ = pq.DecreaseKey(heapNodes[v], newDist)
					return
				}
				heapNodes[v] = da.NewPriorityQueueNode(newDist, v)
				pq.Insert(heapNodes[v])
			})
		}
	}

	result := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		result[g.NameOf(da.Index(i))] = dist[i]
	}
	return result
}
