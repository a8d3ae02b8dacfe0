package planner

import (
	"math"
	"testing"

	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
	"go.uber.org/zap"
)

func newTestPlanner() *Planner {
	return NewPlanner(zap.NewNop())
}

func interestNode(name string, lat, lng float64) da.Node {
	return da.Node{Name: name, Lat: lat, Lng: lng, Type: pkg.NodeTypeInterest}
}

func controlNode(name string, lat, lng float64, risk int) da.Node {
	return da.Node{Name: name, Lat: lat, Lng: lng, Type: pkg.NodeTypeControl, Risk: risk}
}

func TestGenerateRoutesTooFewNodes(t *testing.T) {
	p := newTestPlanner()

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes:                 []da.Node{interestNode("only", 0, 0)},
		TargetDurationMinutes: 60,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("one node must yield no routes, got %v", routes)
	}
}

func TestGenerateRoutesExperienceGuard(t *testing.T) {
	p := newTestPlanner()

	_, err := p.GenerateRoutes(GenerateParams{
		Nodes:      []da.Node{interestNode("A", 0, 0), interestNode("B", 0, 1)},
		Difficulty: 3,
		Experience: 0,
	})
	if err == nil {
		t.Fatal("experience 0 must be rejected")
	}
}

func TestGenerateRoutesFiltersFarCandidates(t *testing.T) {
	// A(0,0) and B(0,1) are ~111.195 km apart: a ~22 h walk at 5 km/h is
	// nowhere near a 60 min target weight of 2, so nothing survives.
	p := newTestPlanner()

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes:                 []da.Node{interestNode("A", 0, 0), interestNode("B", 0, 1)},
		TargetDurationMinutes: 60,
		WalkingSpeedKmh:       5,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("far candidate must be filtered, got %v", routes)
	}
}

func TestGenerateRoutesSurfacesMatchingPair(t *testing.T) {
	// ~5 km apart: one hour at 5 km/h, weight 1 + 3/3 = 2 == target
	p := newTestPlanner()

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes: []da.Node{
			interestNode("trailhead", 0, 0),
			interestNode("summit", 0.045, 0),
		},
		TargetDurationMinutes: 60,
		WalkingSpeedKmh:       5,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected both directions of the pair, got %d routes", len(routes))
	}

	for _, r := range routes {
		if len(r.Points) != 2 {
			t.Errorf("route %s has %d points, want 2", r.Name, len(r.Points))
		}
		if math.Abs(r.Duration-60) > pkg.DEFAULT_TOLERANCE_MINUTES {
			t.Errorf("route %s duration %v outside tolerance of 60 min", r.Name, r.Duration)
		}
		if r.Distance < 4900 || r.Distance > 5100 {
			t.Errorf("route %s distance = %d m, want ~5000", r.Name, r.Distance)
		}
		if r.Risk != 0 {
			t.Errorf("no control nodes on path, risk = %v, want 0", r.Risk)
		}
		if r.Polyline == "" {
			t.Errorf("route %s carries no polyline", r.Name)
		}
		if r.CreatedAt == "" {
			t.Errorf("route %s carries no created_at", r.Name)
		}
	}
}

func TestGenerateRoutesControlRisk(t *testing.T) {
	p := newTestPlanner()

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes: []da.Node{
			interestNode("start", 0, 0),
			controlNode("checkpoint", 0.045, 0, 4),
		},
		TargetDurationMinutes: 60,
		WalkingSpeedKmh:       5,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("expected candidates")
	}
	for _, r := range routes {
		if r.Risk != 4 {
			t.Errorf("route %s mean risk = %v, want 4 (single control point)", r.Name, r.Risk)
		}
	}
}

func TestGenerateRoutesCapAndOrdering(t *testing.T) {
	// six coincident nodes: 30 ordered pairs, every deviation equal and
	// minimal, so exactly the cap comes back
	p := newTestPlanner()

	nodes := make([]da.Node, 6)
	for i := range nodes {
		nodes[i] = interestNode(string(rune('A'+i)), 10, 10)
	}

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes:                 nodes,
		TargetDurationMinutes: 0,
		WalkingSpeedKmh:       5,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) != pkg.MAX_GENERATED_ROUTES {
		t.Errorf("returned %d routes, want the cap of %d", len(routes), pkg.MAX_GENERATED_ROUTES)
	}
}

func TestGenerateRoutesOrderedByDeviation(t *testing.T) {
	// targets 60 min; spacings put pair durations at ~54 to ~66 min, so the
	// returned order must be by closeness to the target
	p := newTestPlanner()

	nodes := []da.Node{
		interestNode("base", 0, 0),
		interestNode("near", 0.0405, 0), // ~4.5 km, ~54 min
		interestNode("exact", 0.045, 0), // ~5.0 km, ~60 min
		interestNode("far", 0.0494, 0),  // ~5.5 km, ~66 min
	}

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes:                 nodes,
		TargetDurationMinutes: 60,
		WalkingSpeedKmh:       5,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) == 0 {
		t.Fatal("expected candidates")
	}

	prev := -1.0
	for _, r := range routes {
		dev := math.Abs(r.Duration - 60)
		if dev+1e-6 < prev {
			t.Fatalf("routes not ordered by deviation: %v then %v", prev, dev)
		}
		prev = dev
	}
}

func TestGenerateRoutesSkipsUnnamedNodes(t *testing.T) {
	p := newTestPlanner()

	routes, err := p.GenerateRoutes(GenerateParams{
		Nodes: []da.Node{
			interestNode("", 0, 0),
			interestNode("solo", 0.045, 0),
		},
		TargetDurationMinutes: 60,
		Difficulty:            3,
		Experience:            3,
	})
	if err != nil {
		t.Fatalf("GenerateRoutes: %v", err)
	}
	if len(routes) != 0 {
		t.Errorf("unnamed node must be skipped leaving one usable node, got %v", routes)
	}
}
