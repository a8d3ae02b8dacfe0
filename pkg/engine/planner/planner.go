package planner

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/concurrent"
	da "github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/engine/routing"
	"github.com/sendero-app/sendero/pkg/geo"
	"github.com/sendero-app/sendero/pkg/util"
	"go.uber.org/zap"
)

// Planner searches the all-pairs shortest-path space of a waypoint set for
// routes matching a target duration/difficulty profile. Every call builds its
// own graph, so concurrent requests need no synchronization.
type Planner struct {
	log *zap.Logger
}

func NewPlanner(log *zap.Logger) *Planner {
	return &Planner{log: log}
}

// GenerateParams parameterizes one route search.
type GenerateParams struct {
	Nodes                 []da.Node
	TargetDurationMinutes float64
	WalkingSpeedKmh       float64
	Difficulty            int
	Experience            int

	// Alpha weights duration, Beta weights difficulty-adjusted-by-experience
	// in the candidate weight formula. Zero means default (1 each).
	Alpha float64
	Beta  float64

	// ToleranceMinutes is the accepted deviation from the target duration.
	// Zero means default (6 minutes).
	ToleranceMinutes float64
}

func (gp *GenerateParams) applyDefaults() {
	if gp.WalkingSpeedKmh <= 0 {
		gp.WalkingSpeedKmh = pkg.DEFAULT_WALKING_SPEED_KMH
	}
	if gp.Alpha == 0 {
		gp.Alpha = pkg.DEFAULT_ALPHA
	}
	if gp.Beta == 0 {
		gp.Beta = pkg.DEFAULT_BETA
	}
	if gp.ToleranceMinutes == 0 {
		gp.ToleranceMinutes = pkg.DEFAULT_TOLERANCE_MINUTES
	}
}

type scoredRoute struct {
	route     da.Route
	deviation float64
}

// GenerateRoutes builds a complete graph over the node set, runs one
// all-pairs shortest-path pass and scores every ordered origin/destination
// pair against the target weight. At most pkg.MAX_GENERATED_ROUTES candidates
// come back, best match first; the deviation score itself is never exposed.
// Fewer than two usable nodes yield an empty result, not an error.
func (p *Planner) GenerateRoutes(params GenerateParams) ([]da.Route, error) {
	if params.Experience <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "experience must be greater than zero")
	}
	params.applyDefaults()

	nodes := make([]da.Node, 0, len(params.Nodes))
	for _, n := range params.Nodes {
		if n.Name == "" {
			p.log.Warn("skipping node without a name in route generation")
			continue
		}
		nodes = append(nodes, n)
	}
	if len(nodes) < pkg.MIN_ROUTE_POINTS {
		return []da.Route{}, nil
	}

	g := p.buildCompleteGraph(nodes)
	allPairs := routing.FloydWarshall(g)

	targetWeight := params.Alpha*(params.TargetDurationMinutes/60.0) +
		params.Beta*(float64(params.Difficulty)/float64(params.Experience))
	maxDeviation := params.ToleranceMinutes / 60.0 * params.Alpha

	best := da.NewTopK[*scoredRoute](pkg.MAX_GENERATED_ROUTES)
	now := time.Now().Format(time.RFC3339)

	for _, origin := range g.Nodes() {
		for _, destination := range g.Nodes() {
			if origin == destination {
				continue
			}
			meters := allPairs.Dist(origin, destination)
			if meters >= pkg.INF_WEIGHT {
				continue
			}

			durationHours := (meters / 1000.0) / params.WalkingSpeedKmh
			weight := params.Alpha*durationHours +
				params.Beta*float64(params.Difficulty)/float64(params.Experience)
			deviation := util.Abs(weight - targetWeight)
			if deviation > maxDeviation {
				continue
			}

			path := allPairs.Path(origin, destination)
			if len(path) < pkg.MIN_ROUTE_POINTS {
				continue
			}

			route, err := p.buildRoute(nodes, path, origin, destination, meters, durationHours, params.Difficulty)
			if err != nil {
				p.log.Warn("skipping malformed route candidate",
					zap.String("origin", origin), zap.String("destination", destination), zap.Error(err))
				continue
			}
			route.CreatedAt = now
			best.Push(deviation, &scoredRoute{route: route, deviation: deviation})
		}
	}

	ranked := best.Items()
	routes := make([]da.Route, len(ranked))
	for i, sr := range ranked {
		routes[i] = sr.route
	}
	return routes, nil
}

type pairJob struct {
	i, j int
}

type pairEdge struct {
	i, j   int
	meters float64
}

// buildCompleteGraph connects every unordered node pair with its haversine
// distance in meters. Pure per-pair computation, so pairs are fanned out over
// a worker pool; no network call is made here.
func (p *Planner) buildCompleteGraph(nodes []da.Node) *da.Graph {
	g := da.NewGraph()
	for _, n := range nodes {
		g.AddNode(n.Name)
	}

	numPairs := len(nodes) * (len(nodes) - 1) / 2
	if numPairs == 0 {
		return g
	}

	wp := concurrent.NewWorkerPool[pairJob, pairEdge](runtime.NumCPU(), numPairs)
	wp.Start(func(job pairJob) pairEdge {
		km := geo.CalculateHaversineDistance(
			nodes[job.i].Lat, nodes[job.i].Lng,
			nodes[job.j].Lat, nodes[job.j].Lng)
		return pairEdge{i: job.i, j: job.j, meters: km * 1000.0}
	})

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			wp.AddJob(pairJob{i: i, j: j})
		}
	}
	wp.Close()
	wp.Wait()

	for edge := range wp.CollectResults() {
		g.AddEdge(nodes[edge.i].Name, nodes[edge.j].Name, edge.meters, false)
	}
	return g
}

func (p *Planner) buildRoute(nodes []da.Node, path []string, origin, destination string,
	meters, durationHours float64, difficulty int) (da.Route, error) {

	points := make([]da.PointOnPath, 0, len(path))
	riskSum := 0
	controlCount := 0
	for _, name := range path {
		node, ok := da.FindNode(nodes, name)
		if !ok {
			return da.Route{}, fmt.Errorf("path references unknown node %q", name)
		}
		points = append(points, da.NewPointOnPath(node))
		if node.IsControl() {
			riskSum += node.Risk
			controlCount++
		}
	}

	meanRisk := 0.0
	if controlCount > 0 {
		meanRisk = util.RoundFloat(float64(riskSum)/float64(controlCount), 1)
	}

	durationMinutes := util.RoundFloat(durationHours*60.0, 1)
	route := da.Route{
		Name:        fmt.Sprintf("Route %s-%s", origin, destination),
		Description: fmt.Sprintf("From %s to %s - duration: %.1f min", origin, destination, durationMinutes),
		Difficulty:  difficulty,
		Popularity:  3,
		Points:      points,
		Distance:    int(meters),
		Risk:        meanRisk,
		Duration:    durationMinutes,
	}
	route.Polyline = geo.PolylineFromCoords(route.PointCoords())
	return route, nil
}
