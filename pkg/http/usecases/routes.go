package usecases

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/engine/planner"
	"github.com/sendero-app/sendero/pkg/engine/routing"
	"github.com/sendero-app/sendero/pkg/geo"
	"github.com/sendero-app/sendero/pkg/util"
	"go.uber.org/zap"
)

// nodeColorPalette maps a node name hash to a stable display color, so the
// same node always renders the same on the map.
var nodeColorPalette = [...]string{
	"#FF5733", "#33FF57", "#3357FF", "#F033FF", "#33FFF5",
	"#FF33A8", "#B833FF", "#FFC733", "#33FFBD", "#8C33FF",
}

func nodeColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return nodeColorPalette[h.Sum32()%uint32(len(nodeColorPalette))]
}

type RouteService struct {
	log       *zap.Logger
	store     Store
	estimator DistanceEstimator
	planner   RoutePlanner
}

func NewRouteService(log *zap.Logger, store Store, estimator DistanceEstimator,
	routePlanner RoutePlanner) *RouteService {
	return &RouteService{
		log:       log,
		store:     store,
		estimator: estimator,
		planner:   routePlanner,
	}
}

func (rs *RouteService) ListRoutes() ([]datastructure.Route, error) {
	return rs.store.LoadRoutes()
}

func (rs *RouteService) GetRoute(name string) (datastructure.Route, error) {
	routes, err := rs.store.LoadRoutes()
	if err != nil {
		return datastructure.Route{}, err
	}
	for _, route := range routes {
		if route.Name == name {
			return route, nil
		}
	}
	return datastructure.Route{}, util.WrapErrorf(nil, util.ErrNotFound, "route %q not found", name)
}

// CreateRouteInput is a route as submitted by the client: waypoints are
// referenced by node name, and the measured total distance is optional.
type CreateRouteInput struct {
	Name        string
	Description string
	Difficulty  int
	Popularity  int
	PointNames  []string

	// MeasuredDistanceMeters, when positive, is the authoritative track
	// length the per-segment estimates are reconciled against.
	MeasuredDistanceMeters float64
}

// CreateRoute resolves the referenced waypoints, estimates every segment
// length and persists the reconciled route.
func (rs *RouteService) CreateRoute(ctx context.Context, input CreateRouteInput) (datastructure.Route, error) {
	if input.Name == "" {
		return datastructure.Route{}, util.WrapErrorf(nil, util.ErrBadParamInput, "route name is required")
	}
	if input.Difficulty < pkg.MIN_DIFFICULTY || input.Difficulty > pkg.MAX_DIFFICULTY {
		return datastructure.Route{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"difficulty must be between %d and %d", pkg.MIN_DIFFICULTY, pkg.MAX_DIFFICULTY)
	}
	if input.Popularity == 0 {
		input.Popularity = 3
	}
	if input.Popularity < 1 || input.Popularity > 5 {
		return datastructure.Route{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"popularity must be between 1 and 5")
	}
	if len(input.PointNames) < pkg.MIN_ROUTE_POINTS {
		return datastructure.Route{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"a route needs at least %d points", pkg.MIN_ROUTE_POINTS)
	}

	routes, err := rs.store.LoadRoutes()
	if err != nil {
		return datastructure.Route{}, err
	}
	for _, route := range routes {
		if route.Name == input.Name {
			return datastructure.Route{}, util.WrapErrorf(nil, util.ErrConflict,
				"route %q already exists", input.Name)
		}
	}

	nodes, err := rs.store.LoadNodes()
	if err != nil {
		return datastructure.Route{}, err
	}

	points := make([]datastructure.PointOnPath, len(input.PointNames))
	coords := make([]geo.Coordinate, len(input.PointNames))
	for i, name := range input.PointNames {
		node, found := datastructure.FindNode(nodes, name)
		if !found {
			return datastructure.Route{}, util.WrapErrorf(nil, util.ErrBadParamInput,
				"unknown node %q in route points", name)
		}
		points[i] = datastructure.NewPointOnPath(node)
		coords[i] = node.Coord()
	}

	segments := make([]float64, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		meters, err := rs.estimator.EstimateMeters(ctx, coords[i], coords[i+1])
		if err != nil {
			return datastructure.Route{}, err
		}
		segments[i] = float64(meters)
	}

	adjusted, official, rescaled := planner.ReconcileDistances(segments, input.MeasuredDistanceMeters)
	if rescaled {
		rs.log.Info("route distance reconciled against measured total",
			zap.String("route", input.Name),
			zap.Float64("measured_m", input.MeasuredDistanceMeters))
	}

	riskSum, controlCount := 0.0, 0
	for _, p := range points {
		if p.Type == pkg.NodeTypeControl {
			riskSum += float64(p.Risk)
			controlCount++
		}
	}
	risk := 0.0
	if controlCount > 0 {
		risk = util.RoundFloat(riskSum/float64(controlCount), 1)
	}

	durationMinutes := util.RoundFloat(
		float64(official)/1000.0/pkg.DEFAULT_WALKING_SPEED_KMH*60.0, 1)

	route := datastructure.Route{
		Name:        input.Name,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Popularity:  input.Popularity,
		Points:      points,
		Distance:    official,
		Segments:    adjusted,
		Risk:        risk,
		Duration:    durationMinutes,
		Polyline:    geo.PolylineFromCoords(coords),
		CreatedAt:   time.Now().Format(time.RFC3339),
	}

	routes = append(routes, route)
	if err := rs.store.SaveRoutes(routes); err != nil {
		return datastructure.Route{}, err
	}

	rs.log.Info("route created", zap.String("name", route.Name), zap.Int("distance_m", route.Distance))
	return route, nil
}

func (rs *RouteService) DeleteRoute(ctx context.Context, name string) error {
	routes, err := rs.store.LoadRoutes()
	if err != nil {
		return err
	}
	remaining := make([]datastructure.Route, 0, len(routes))
	for _, route := range routes {
		if route.Name != name {
			remaining = append(remaining, route)
		}
	}
	if len(remaining) == len(routes) {
		return util.WrapErrorf(nil, util.ErrNotFound, "route %q not found", name)
	}
	if err := rs.store.SaveRoutes(remaining); err != nil {
		return err
	}
	rs.log.Info("route deleted", zap.String("name", name))
	return nil
}

// GenerateRoutes runs the candidate search over the caller-supplied node
// set; when the request carries no nodes, the stored collection is used.
func (rs *RouteService) GenerateRoutes(ctx context.Context, params planner.GenerateParams) ([]datastructure.Route, error) {
	if len(params.Nodes) == 0 {
		nodes, err := rs.store.LoadNodes()
		if err != nil {
			return nil, err
		}
		params.Nodes = nodes
	}
	return rs.planner.GenerateRoutes(params)
}

// SuggestRoutes filters the stored route collection for the caller's profile.
func (rs *RouteService) SuggestRoutes(ctx context.Context, params planner.SuggestParams) ([]datastructure.Route, error) {
	routes, err := rs.store.LoadRoutes()
	if err != nil {
		return nil, err
	}
	return rs.planner.SuggestRoutes(routes, params)
}

// NodeDistance is one row of a shortest-distance report, keyed by node name
// in the result mapping.
type NodeDistance struct {
	Lat            float64      `json:"lat"`
	Lng            float64      `json:"lng"`
	Type           pkg.NodeType `json:"type"`
	Color          string       `json:"color"`
	DistanceMeters float64      `json:"distance"`
}

type ShortestDistancesResult struct {
	Origin        string                  `json:"origin"`
	Distances     map[string]NodeDistance `json:"distances"`
	InterestCount int                     `json:"interest_count"`
	ControlCount  int                     `json:"control_count"`
}

// ShortestDistances reports the shortest distance from the origin to every
// other node over the complete haversine graph, using the caller-supplied
// node set or, when that is empty, the stored collection. Edge weights are
// kilometers rounded to two decimals and expressed in meters, matching what
// map clients display. The origin itself is not a row; the interest/control
// counts cover all nodes.
func (rs *RouteService) ShortestDistances(ctx context.Context, nodes []datastructure.Node, origin string) (ShortestDistancesResult, error) {
	if len(nodes) == 0 {
		stored, err := rs.store.LoadNodes()
		if err != nil {
			return ShortestDistancesResult{}, err
		}
		nodes = stored
	}
	originNode, found := datastructure.FindNode(nodes, origin)
	if !found {
		return ShortestDistancesResult{}, util.WrapErrorf(nil, util.ErrNotFound,
			"node %q not found", origin)
	}
	if originNode.Type != pkg.NodeTypeInterest {
		return ShortestDistancesResult{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"origin %q must be an interest node", origin)
	}

	g := datastructure.NewGraph()
	for _, n := range nodes {
		g.AddNode(n.Name)
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			km := geo.CalculateHaversineDistance(nodes[i].Lat, nodes[i].Lng, nodes[j].Lat, nodes[j].Lng)
			g.AddEdge(nodes[i].Name, nodes[j].Name, util.RoundFloat(km, 2)*1000.0, false)
		}
	}

	dist := routing.Dijkstra(g, originNode.Name)

	result := ShortestDistancesResult{
		Origin:    originNode.Name,
		Distances: make(map[string]NodeDistance, len(nodes)-1),
	}
	for _, n := range nodes {
		if n.Type == pkg.NodeTypeControl {
			result.ControlCount++
		} else {
			result.InterestCount++
		}
		if n.Name == originNode.Name {
			continue
		}
		result.Distances[n.Name] = NodeDistance{
			Lat:            n.Lat,
			Lng:            n.Lng,
			Type:           n.Type,
			Color:          nodeColor(n.Name),
			DistanceMeters: dist[n.Name],
		}
	}
	return result, nil
}
