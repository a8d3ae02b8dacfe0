package usecases

import (
	"context"

	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/engine/planner"
	"github.com/sendero-app/sendero/pkg/geo"
	"github.com/sendero-app/sendero/pkg/spatialindex"
)

type Store interface {
	LoadNodes() ([]datastructure.Node, error)
	SaveNodes(nodes []datastructure.Node) error
	LoadRoutes() ([]datastructure.Route, error)
	SaveRoutes(routes []datastructure.Route) error
}

type DistanceEstimator interface {
	EstimateMeters(ctx context.Context, from, to geo.Coordinate) (int, error)
}

type RoutePlanner interface {
	GenerateRoutes(params planner.GenerateParams) ([]datastructure.Route, error)
	SuggestRoutes(stored []datastructure.Route, params planner.SuggestParams) ([]datastructure.Route, error)
}

type SpatialIndex interface {
	Insert(node datastructure.Node, boundingBoxRadius float64)
	Delete(node datastructure.Node, boundingBoxRadius float64)
	SearchWithinRadius(qLat, qLon, radius float64) []spatialindex.NodeWithDistance
}
