package main

import (
	"context"
	"flag"
	"time"

	"github.com/sendero-app/sendero/pkg/distance"
	"github.com/sendero-app/sendero/pkg/engine/planner"
	sendero_http "github.com/sendero-app/sendero/pkg/http"
	"github.com/sendero-app/sendero/pkg/http/usecases"
	"github.com/sendero-app/sendero/pkg/logger"
	"github.com/sendero-app/sendero/pkg/spatialindex"
	"github.com/sendero-app/sendero/pkg/storage"
	"github.com/sendero-app/sendero/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	dataDir               = flag.String("data_dir", "./data", "directory holding nodes.json and routes.json")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	useRateLimit          = flag.Bool("rate_limit", false, "enable the per-client rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	store, err := storage.NewJSONStore(*dataDir, logger)
	if err != nil {
		panic(err)
	}

	nodes, err := store.LoadNodes()
	if err != nil {
		panic(err)
	}
	rtree := spatialindex.NewRtree()
	rtree.Build(nodes, *leafBoundingBoxRadius, logger)

	estimator := newEstimator(logger)
	routePlanner := planner.NewPlanner(logger)

	api := sendero_http.NewServer(logger)

	nodeService := usecases.NewNodeService(logger, store, rtree)
	routeService := usecases.NewRouteService(logger, store, estimator, routePlanner)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, nodeService, routeService)

	signal := sendero_http.GracefulShutdown()

	logger.Info("Sendero Route Planning Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

// newEstimator prefers the OpenRouteService walking profile when an API key
// is configured and always falls back to haversine.
func newEstimator(log *zap.Logger) usecases.DistanceEstimator {
	apiKey := viper.GetString("OPENROUTESERVICE_API_KEY")
	if apiKey == "" {
		log.Info("no OPENROUTESERVICE_API_KEY configured, using haversine distances")
		return distance.NewFallbackEstimator(nil, log)
	}
	remote := distance.NewOpenRouteEstimator(distance.DefaultOpenRouteURL, apiKey, 10*time.Second)
	return distance.NewFallbackEstimator(remote, log)
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
