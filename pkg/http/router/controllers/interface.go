package controllers

import (
	"context"

	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/engine/planner"
	"github.com/sendero-app/sendero/pkg/http/usecases"
)

type NodeService interface {
	ListNodes() ([]datastructure.Node, error)
	CreateNode(ctx context.Context, node datastructure.Node) (datastructure.Node, error)
	DeleteNode(ctx context.Context, name string) error
	NearbyNodes(lat, lng, radiusKM float64) ([]usecases.NearbyNode, error)
}

type RouteService interface {
	ListRoutes() ([]datastructure.Route, error)
	GetRoute(name string) (datastructure.Route, error)
	CreateRoute(ctx context.Context, input usecases.CreateRouteInput) (datastructure.Route, error)
	DeleteRoute(ctx context.Context, name string) error
	GenerateRoutes(ctx context.Context, params planner.GenerateParams) ([]datastructure.Route, error)
	SuggestRoutes(ctx context.Context, params planner.SuggestParams) ([]datastructure.Route, error)
	ShortestDistances(ctx context.Context, nodes []datastructure.Node, startNodeName string) (usecases.ShortestDistancesResult, error)
}
