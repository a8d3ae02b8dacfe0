package routing

import (
	"sort"

	da "github.com/sendero-app/sendero/pkg/datastructure"
)

// MSTEdge is one edge of a minimum spanning tree.
type MSTEdge struct {
	From   string
	To     string
	Weight float64
}

type frontierEdge struct {
	from da.Index
	to   da.Index
}

// Prim grows a minimum spanning tree from start using a min-heap of frontier
// edges. Only the component containing start is spanned. An unknown start
// yields an empty tree.
func Prim(g *da.Graph, start string) []MSTEdge {
	s, ok := g.IndexOf(start)
	if !ok {
		return []MSTEdge{}
	}

	n := g.NumberOfNodes()
	visited := make([]bool, n)
	visited[s] = true

	pq := da.NewBinaryHeap[frontierEdge]()
	g.ForNeighbors(s, func(v da.Index, weight float64) {
		pq.Insert(da.NewPriorityQueueNode(weight, frontierEdge{from: s, to: v}))
	})

	mst := make([]MSTEdge, 0, n-1)
	for !pq.IsEmpty() {
		node, _ := pq.ExtractMin()
		e := node.GetItem()
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		mst = append(mst, MSTEdge{From: g.NameOf(e.from), To: g.NameOf(e.to), Weight: node.GetRank()})

		g.ForNeighbors(e.to, func(v da.Index, weight float64) {
			if !visited[v] {
				pq.Insert(da.NewPriorityQueueNode(weight, frontierEdge{from: e.to, to: v}))
			}
		})
	}

	return mst
}

// Kruskal builds a minimum spanning forest by taking edges in ascending
// weight order and joining components through a union-find.
func Kruskal(g *da.Graph) []MSTEdge {
	n := g.NumberOfNodes()

	type rankedEdge struct {
		weight   float64
		from, to da.Index
	}
	edges := make([]rankedEdge, 0)
	for u := 0; u < n; u++ {
		g.ForNeighbors(da.Index(u), func(v da.Index, weight float64) {
			edges = append(edges, rankedEdge{weight: weight, from: da.Index(u), to: v})
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].weight != edges[j].weight {
			return edges[i].weight < edges[j].weight
		}
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	parent := make([]da.Index, n)
	for i := range parent {
		parent[i] = da.Index(i)
	}
	var find func(v da.Index) da.Index
	find = func(v da.Index) da.Index {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}

	mst := make([]MSTEdge, 0, n-1)
	for _, e := range edges {
		rootFrom, rootTo := find(e.from), find(e.to)
		if rootFrom == rootTo {
			continue
		}
		parent[rootTo] = rootFrom
		mst = append(mst, MSTEdge{From: g.NameOf(e.from), To: g.NameOf(e.to), Weight: e.weight})
	}

	return mst
}
