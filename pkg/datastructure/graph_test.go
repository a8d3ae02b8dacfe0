package datastructure

import (
	"sort"
	"testing"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := NewGraph()
	a := g.AddNode("A")
	again := g.AddNode("A")

	if a != again {
		t.Errorf("re-adding a node must return the same index: %v vs %v", a, again)
	}
	if g.NumberOfNodes() != 1 {
		t.Errorf("expected 1 node, got %v", g.NumberOfNodes())
	}
}

func TestAddEdgeUndirectedSymmetric(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 4, false)

	if w := g.Neighbors("A")["B"]; w != 4 {
		t.Errorf("A->B weight = %v, want 4", w)
	}
	if w := g.Neighbors("B")["A"]; w != 4 {
		t.Errorf("B->A weight = %v, want 4", w)
	}
}

func TestAddEdgeDirected(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 7, true)

	if w := g.Neighbors("A")["B"]; w != 7 {
		t.Errorf("A->B weight = %v, want 7", w)
	}
	if _, ok := g.Neighbors("B")["A"]; ok {
		t.Error("directed edge must not create the reverse entry")
	}
}

func TestAddEdgeOverwrites(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 4, false)
	g.AddEdge("A", "B", 9, false)

	if w := g.Neighbors("A")["B"]; w != 9 {
		t.Errorf("re-added edge weight = %v, want 9", w)
	}
	if len(g.Neighbors("A")) != 1 {
		t.Errorf("expected a single neighbor, got %v", g.Neighbors("A"))
	}
}

func TestAddEdgeIgnoresSelfLoop(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "A", 3, false)

	if len(g.Neighbors("A")) != 0 {
		t.Errorf("self loop must not be stored, got %v", g.Neighbors("A"))
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"C", "A", "B"} {
		g.AddNode(name)
	}

	got := g.Nodes()
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() = %v, want %v", got, want)
		}
	}
}

func TestBFSVisitsEveryReachableNodeOnce(t *testing.T) {
	g := lineGraph("A", "B", "C", "D")
	g.AddNode("isolated")

	order := g.BFS("A")
	if len(order) != 4 {
		t.Fatalf("BFS visited %v, want the 4 connected nodes", order)
	}
	if order[0] != "A" {
		t.Errorf("BFS must start at A, got %v", order[0])
	}

	sorted := append([]string(nil), order...)
	sort.Strings(sorted)
	want := []string{"A", "B", "C", "D"}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("BFS visited %v, want permutation of %v", order, want)
		}
	}
}

func TestDFSLineGraphOrder(t *testing.T) {
	g := lineGraph("A", "B", "C", "D")

	order := g.DFS("A")
	want := []string{"A", "B", "C", "D"}
	if len(order) != len(want) {
		t.Fatalf("DFS visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("DFS visited %v, want %v", order, want)
		}
	}
}

func TestTraversalUnknownStart(t *testing.T) {
	g := NewGraph()
	g.AddEdge("A", "B", 1, false)

	if got := g.BFS("missing"); len(got) != 0 {
		t.Errorf("BFS from unknown start = %v, want empty", got)
	}
	if got := g.DFS("missing"); len(got) != 0 {
		t.Errorf("DFS from unknown start = %v, want empty", got)
	}
}

func TestEmptyGraphQueries(t *testing.T) {
	g := NewGraph()

	if g.NumberOfNodes() != 0 {
		t.Errorf("empty graph has %v nodes", g.NumberOfNodes())
	}
	if got := g.Neighbors("anything"); len(got) != 0 {
		t.Errorf("Neighbors on empty graph = %v, want empty", got)
	}
}

func lineGraph(names ...string) *Graph {
	g := NewGraph()
	for i := 0; i+1 < len(names); i++ {
		g.AddEdge(names[i], names[i+1], float64(i+1), false)
	}
	return g
}
