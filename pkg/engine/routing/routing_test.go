package routing

import (
	"math"
	"testing"

	da "github.com/sendero-app/sendero/pkg/datastructure"
)

// five-node weighted fixture used across the solver tests
func buildFixtureGraph() *da.Graph {
	g := da.NewGraph()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		g.AddNode(name)
	}
	g.AddEdge("A", "B", 4, false)
	g.AddEdge("A", "C", 1, false)
	g.AddEdge("B", "C", 2, false)
	g.AddEdge("B", "D", 5, false)
	g.AddEdge("C", "D", 8, false)
	g.AddEdge("C", "E", 10, false)
	g.AddEdge("D", "E", 2, false)
	return g
}

func TestDijkstraFixture(t *testing.T) {
	g := buildFixtureGraph()

	dist := Dijkstra(g, "A")

	want := map[string]float64{"A": 0, "B": 3, "C": 1, "D": 8, "E": 10}
	for name, wantDist := range want {
		if dist[name] != wantDist {
			t.Errorf("dist[%s] = %v, want %v", name, dist[name], wantDist)
		}
	}
}

func TestDijkstraInvariants(t *testing.T) {
	g := buildFixtureGraph()
	g.AddNode("island")

	dist := Dijkstra(g, "A")

	if dist["A"] != 0 {
		t.Errorf("dist[start] = %v, want 0", dist["A"])
	}
	for name, d := range dist {
		if name == "island" {
			if !math.IsInf(d, 1) {
				t.Errorf("unreachable node distance = %v, want +inf", d)
			}
			continue
		}
		if d < 0 {
			t.Errorf("dist[%s] = %v, negative", name, d)
		}
	}
}

func TestDijkstraUnknownStart(t *testing.T) {
	g := buildFixtureGraph()

	dist := Dijkstra(g, "missing")
	for name, d := range dist {
		if !math.IsInf(d, 1) {
			t.Errorf("dist[%s] = %v from an unknown start, want +inf", name, d)
		}
	}
}

func TestDijkstraEmptyGraph(t *testing.T) {
	dist := Dijkstra(da.NewGraph(), "A")
	if len(dist) != 0 {
		t.Errorf("empty graph dist = %v, want empty", dist)
	}
}

func TestFloydWarshallMatchesDijkstra(t *testing.T) {
	g := buildFixtureGraph()

	ap := FloydWarshall(g)
	for _, start := range g.Nodes() {
		single := Dijkstra(g, start)
		for _, to := range g.Nodes() {
			if ap.Dist(start, to) != single[to] {
				t.Errorf("FW dist %s->%s = %v, Dijkstra %v", start, to, ap.Dist(start, to), single[to])
			}
		}
	}
}

func TestFloydWarshallSymmetryAndTriangleInequality(t *testing.T) {
	g := buildFixtureGraph()
	ap := FloydWarshall(g)

	nodes := g.Nodes()
	for _, i := range nodes {
		for _, j := range nodes {
			if ap.Dist(i, j) != ap.Dist(j, i) {
				t.Errorf("undirected FW not symmetric: d(%s,%s)=%v d(%s,%s)=%v",
					i, j, ap.Dist(i, j), j, i, ap.Dist(j, i))
			}
			for _, k := range nodes {
				if ap.Dist(i, j) > ap.Dist(i, k)+ap.Dist(k, j)+1e-9 {
					t.Errorf("triangle inequality violated: d(%s,%s)=%v > d(%s,%s)+d(%s,%s)=%v",
						i, j, ap.Dist(i, j), i, k, k, j, ap.Dist(i, k)+ap.Dist(k, j))
				}
			}
		}
	}
}

func TestFloydWarshallPathReconstruction(t *testing.T) {
	g := buildFixtureGraph()
	ap := FloydWarshall(g)

	for _, from := range g.Nodes() {
		for _, to := range g.Nodes() {
			if from == to {
				continue
			}
			path := ap.Path(from, to)
			if len(path) < 2 {
				t.Fatalf("path %s->%s = %v, want at least 2 nodes", from, to, path)
			}
			if path[0] != from || path[len(path)-1] != to {
				t.Fatalf("path %s->%s = %v, wrong endpoints", from, to, path)
			}

			total := 0.0
			for i := 0; i+1 < len(path); i++ {
				w, ok := g.Neighbors(path[i])[path[i+1]]
				if !ok {
					t.Fatalf("path %s->%s uses missing edge %s->%s", from, to, path[i], path[i+1])
				}
				total += w
			}
			if total != ap.Dist(from, to) {
				t.Errorf("path %s->%s sums to %v, matrix says %v", from, to, total, ap.Dist(from, to))
			}
		}
	}
}

func TestFloydWarshallDisconnected(t *testing.T) {
	g := da.NewGraph()
	g.AddEdge("A", "B", 1, false)
	g.AddNode("island")

	ap := FloydWarshall(g)
	if !math.IsInf(ap.Dist("A", "island"), 1) {
		t.Errorf("disconnected dist = %v, want +inf", ap.Dist("A", "island"))
	}
	if path := ap.Path("A", "island"); len(path) != 0 {
		t.Errorf("disconnected path = %v, want empty", path)
	}
	if path := ap.Path("A", "missing"); len(path) != 0 {
		t.Errorf("unknown destination path = %v, want empty", path)
	}
}

func TestPrimAndKruskalAgreeOnTotalWeight(t *testing.T) {
	g := buildFixtureGraph()

	prim := Prim(g, "A")
	kruskal := Kruskal(g)

	if len(prim) != 4 || len(kruskal) != 4 {
		t.Fatalf("MST edge counts: prim=%d kruskal=%d, want 4", len(prim), len(kruskal))
	}

	sum := func(edges []MSTEdge) float64 {
		total := 0.0
		for _, e := range edges {
			total += e.Weight
		}
		return total
	}
	// fixture MST: A-C(1), C-B(2), B-D(5), D-E(2)
	if sum(prim) != 10 {
		t.Errorf("prim total weight = %v, want 10", sum(prim))
	}
	if sum(kruskal) != 10 {
		t.Errorf("kruskal total weight = %v, want 10", sum(kruskal))
	}
}

func TestBellmanFordMatchesDijkstraOnNonNegative(t *testing.T) {
	g := buildFixtureGraph()

	bf, err := BellmanFord(g, "A")
	if err != nil {
		t.Fatalf("BellmanFord: %v", err)
	}
	dj := Dijkstra(g, "A")
	for name := range dj {
		if bf[name] != dj[name] {
			t.Errorf("dist[%s]: bellman-ford %v, dijkstra %v", name, bf[name], dj[name])
		}
	}
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := da.NewGraph()
	g.AddEdge("A", "B", 1, true)
	g.AddEdge("B", "C", -2, true)
	g.AddEdge("C", "A", -2, true)

	if _, err := BellmanFord(g, "A"); err != ErrNegativeCycle {
		t.Errorf("expected ErrNegativeCycle, got %v", err)
	}
}

func TestFordFulkersonFixture(t *testing.T) {
	g := buildFixtureGraph()

	// undirected fixture treated as capacities, same as the max-flow the
	// adjacency dict version produced
	flow := FordFulkerson(g, "A", "E")
	if flow != 5 {
		t.Errorf("max flow A->E = %v, want 5", flow)
	}

	if FordFulkerson(g, "A", "A") != 0 {
		t.Error("flow to self must be 0")
	}
	if FordFulkerson(g, "A", "missing") != 0 {
		t.Error("flow to unknown sink must be 0")
	}
}
