package datastructure

// Index identifies a node inside one Graph instance. Node names are interned
// to integer indices on insertion so the shortest-path loops work on slices
// instead of hashing string keys.
type Index int32

const INVALID_NODE_ID Index = -1

// Graph is a mutable weighted graph over named nodes. An undirected edge is
// stored as two symmetric directed entries. Instances are built fresh per
// request and never shared across goroutines.
type Graph struct {
	ids   map[string]Index
	names []string
	adj   []map[Index]float64
}

func NewGraph() *Graph {
	return &Graph{
		ids:   make(map[string]Index),
		names: make([]string, 0),
		adj:   make([]map[Index]float64, 0),
	}
}

// AddNode interns the node, a no-op when it already exists.
func (g *Graph) AddNode(name string) Index {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := Index(len(g.names))
	g.ids[name] = id
	g.names = append(g.names, name)
	g.adj = append(g.adj, make(map[Index]float64))
	return id
}

// AddEdge connects a and b with the given weight, interning both endpoints.
// Re-adding an edge between the same ordered pair overwrites the previous
// weight. Self-loops are never created.
func (g *Graph) AddEdge(a, b string, weight float64, directed bool) {
	if a == b {
		return
	}
	u := g.AddNode(a)
	v := g.AddNode(b)

	g.adj[u][v] = weight
	if !directed {
		g.adj[v][u] = weight
	}
}

func (g *Graph) NumberOfNodes() int {
	return len(g.names)
}

func (g *Graph) HasNode(name string) bool {
	_, ok := g.ids[name]
	return ok
}

func (g *Graph) IndexOf(name string) (Index, bool) {
	id, ok := g.ids[name]
	if !ok {
		return INVALID_NODE_ID, false
	}
	return id, true
}

func (g *Graph) NameOf(id Index) string {
	return g.names[id]
}

// Nodes returns node names in insertion order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.names))
	copy(nodes, g.names)
	return nodes
}

// EdgeWeight returns the weight of the directed edge u->v, if present.
func (g *Graph) EdgeWeight(u, v Index) (float64, bool) {
	if int(u) >= len(g.adj) {
		return 0, false
	}
	w, ok := g.adj[u][v]
	return w, ok
}

// Neighbors returns the neighbor-name -> edge-weight mapping of a node.
// Unknown nodes yield an empty mapping.
func (g *Graph) Neighbors(name string) map[string]float64 {
	neighbors := make(map[string]float64)
	u, ok := g.ids[name]
	if !ok {
		return neighbors
	}
	for v, w := range g.adj[u] {
		neighbors[g.names[v]] = w
	}
	return neighbors
}

// ForNeighbors visits every out-edge of u. Visit order among neighbors is not
// stable, callers must not depend on it.
func (g *Graph) ForNeighbors(u Index, fn func(v Index, weight float64)) {
	for v, w := range g.adj[u] {
		fn(v, w)
	}
}

// BFS returns node names in breadth-first visitation order from start, each
// node at most once. An unknown start yields an empty traversal.
func (g *Graph) BFS(start string) []string {
	s, ok := g.ids[start]
	if !ok {
		return []string{}
	}

	visited := make([]bool, len(g.names))
	queue := []Index{s}
	visited[s] = true
	result := make([]string, 0, len(g.names))

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		result = append(result, g.names[u])

		for v := range g.adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return result
}

// DFS returns node names in depth-first visitation order from start, each
// node at most once. An unknown start yields an empty traversal.
func (g *Graph) DFS(start string) []string {
	s, ok := g.ids[start]
	if !ok {
		return []string{}
	}

	visited := make([]bool, len(g.names))
	stack := []Index{s}
	result := make([]string, 0, len(g.names))

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		result = append(result, g.names[u])

		for v := range g.adj[u] {
			if !visited[v] {
				stack = append(stack, v)
			}
		}
	}

	return result
}
