// Package distance models walking-distance estimation as a capability with
// two implementations: a remote provider (OpenRouteService) and the pure
// haversine fallback. Callers that must never fail wrap both in
// FallbackEstimator; callers that bulk-compute pairwise distances use the
// haversine estimator directly and skip the network entirely.
package distance

import (
	"context"

	"github.com/sendero-app/sendero/pkg/geo"
	"go.uber.org/zap"
)

// Estimator turns a pair of coordinates into a walking distance in meters.
// Implementations signal failure through the error so fallback paths can engage.
type Estimator interface {
	EstimateMeters(ctx context.Context, from, to geo.Coordinate) (int, error)
}

// HaversineEstimator is the deterministic, pure great-circle estimator.
type HaversineEstimator struct{}

func NewHaversineEstimator() HaversineEstimator {
	return HaversineEstimator{}
}

func (HaversineEstimator) EstimateMeters(_ context.Context, from, to geo.Coordinate) (int, error) {
	return geo.HaversineMeters(from, to), nil
}

// FallbackEstimator tries the remote provider first and recovers locally with
// haversine on any failure. EstimateMeters never returns a non-nil error.
type FallbackEstimator struct {
	remote   Estimator
	fallback HaversineEstimator
	log      *zap.Logger
}

func NewFallbackEstimator(remote Estimator, log *zap.Logger) *FallbackEstimator {
	return &FallbackEstimator{
		remote:   remote,
		fallback: NewHaversineEstimator(),
		log:      log,
	}
}

func (fe *FallbackEstimator) EstimateMeters(ctx context.Context, from, to geo.Coordinate) (int, error) {
	if fe.remote != nil {
		meters, err := fe.remote.EstimateMeters(ctx, from, to)
		if err == nil {
			return meters, nil
		}
		fe.log.Warn("remote distance provider failed, falling back to haversine",
			zap.Error(err),
			zap.Float64("from_lat", from.Lat), zap.Float64("from_lng", from.Lon),
			zap.Float64("to_lat", to.Lat), zap.Float64("to_lng", to.Lon))
	}

	return fe.fallback.EstimateMeters(ctx, from, to)
}
