package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sendero-app/sendero/pkg/geo"
)

// DefaultOpenRouteURL is the ORS foot-walking directions endpoint.
const DefaultOpenRouteURL = "https://api.openrouteservice.org/v2/directions/foot-walking"

// OpenRouteEstimator queries the OpenRouteService directions API for the
// real-world foot-path distance between two coordinates. The request is
// bounded by the client timeout and the caller context.
type OpenRouteEstimator struct {
	client *http.Client
	url    string
	apiKey string
}

func NewOpenRouteEstimator(url, apiKey string, timeout time.Duration) *OpenRouteEstimator {
	return &OpenRouteEstimator{
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
	}
}

type orsRequest struct {
	// [longitude, latitude] pairs, ORS coordinate order
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
	Geometry     bool        `json:"geometry"`
}

type orsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

func (oe *OpenRouteEstimator) EstimateMeters(ctx context.Context, from, to geo.Coordinate) (int, error) {
	body, err := json.Marshal(orsRequest{
		Coordinates:  [][]float64{{from.Lon, from.Lat}, {to.Lon, to.Lat}},
		Instructions: false,
		Geometry:     false,
	})
	if err != nil {
		return 0, fmt.Errorf("openrouteservice: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oe.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("openrouteservice: build request: %w", err)
	}
	req.Header.Set("Authorization", oe.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := oe.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("openrouteservice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, fmt.Errorf("openrouteservice: status %d: %s", resp.StatusCode, payload)
	}

	var parsed orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("openrouteservice: decode response: %w", err)
	}
	if len(parsed.Features) == 0 || len(parsed.Features[0].Properties.Segments) == 0 {
		return 0, fmt.Errorf("openrouteservice: response carries no segments")
	}

	return int(math.Round(parsed.Features[0].Properties.Segments[0].Distance)), nil
}
