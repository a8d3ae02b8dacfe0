package routing

import (
	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
)

// AllPairs holds the distance and next-hop matrices of one Floyd-Warshall run,
// indexed by the node indices of the graph it was computed from.
type AllPairs struct {
	g    *da.Graph
	dist [][]float64
	next [][]da.Index
}

// FloydWarshall computes all-pairs shortest distances with next-hop tracking
// for path reconstruction. The distance matrix starts at 0 on the diagonal,
// the direct edge weight where one exists and infinity otherwise, then every
// node is considered as an intermediate hop in ascending index order. O(V^3),
// fine for the user-curated node sets this engine handles (tens, not thousands).
func FloydWarshall(g *da.Graph) *AllPairs {
	n := g.NumberOfNodes()

	dist := make([][]float64, n)
	next := make([][]da.Index, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		next[i] = make([]da.Index, n)
		for j := 0; j < n; j++ {
			dist[i][j] = pkg.INF_WEIGHT
			next[i][j] = da.INVALID_NODE_ID
		}
		dist[i][i] = 0
		next[i][i] = da.Index(i)

		g.ForNeighbors(da.Index(i), func(v da.Index, weight float64) {
			dist[i][v] = weight
			next[i][v] = v
		})
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] >= pkg.INF_WEIGHT {
				continue
			}
			for j := 0; j < n; j++ {
				through := dist[i][k] + dist[k][j]
				if through < dist[i][j] {
					dist[i][j] = through
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &AllPairs{g: g, dist: dist, next: next}
}

// Dist returns the shortest distance between two named nodes,
// pkg.INF_WEIGHT when either is unknown or no path exists.
func (ap *AllPairs) Dist(from, to string) float64 {
	i, okFrom := ap.g.IndexOf(from)
	j, okTo := ap.g.IndexOf(to)
	if !okFrom || !okTo {
		return pkg.INF_WEIGHT
	}
	return ap.dist[i][j]
}

// Path reconstructs a shortest path by walking the next-hop matrix from
// origin to destination, emitting node names in order. Disconnected or
// unknown pairs yield an empty path.
func (ap *AllPairs) Path(from, to string) []string {
	i, okFrom := ap.g.IndexOf(from)
	j, okTo := ap.g.IndexOf(to)
	if !okFrom || !okTo {
		return []string{}
	}
	if ap.next[i][j] == da.INVALID_NODE_ID {
		return []string{}
	}

	path := []string{ap.g.NameOf(i)}
	for i != j {
		i = ap.next[i][j]
		if i == da.INVALID_NODE_ID {
			return []string{}
		}
		path = append(path, ap.g.NameOf(i))
	}
	return path
}
