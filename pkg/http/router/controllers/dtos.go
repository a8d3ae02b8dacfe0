package controllers

import (
	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/datastructure"
)

type createNodeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lng         float64 `json:"lng" validate:"min=-180,max=180"`
	Type        string  `json:"type" validate:"required,oneof=interest control"`
	Risk        int     `json:"risk" validate:"min=0,max=5"`
}

func (r createNodeRequest) toNode() datastructure.Node {
	return datastructure.Node{
		Name:        r.Name,
		Description: r.Description,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Type:        pkg.NodeType(r.Type),
		Risk:        r.Risk,
	}
}

type createRouteRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Difficulty  int      `json:"difficulty" validate:"required,min=1,max=5"`
	Popularity  int      `json:"popularity" validate:"omitempty,min=1,max=5"`
	Points      []string `json:"points" validate:"required,min=2,dive,required"`

	// Distance is the measured track length in meters, optional.
	Distance float64 `json:"distance" validate:"omitempty,gt=0"`
}

// nodePayload is a waypoint supplied inline on a query; unlike
// createNodeRequest the description is optional.
type nodePayload struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lng         float64 `json:"lng" validate:"min=-180,max=180"`
	Type        string  `json:"type" validate:"required,oneof=interest control"`
	Risk        int     `json:"risk" validate:"min=0,max=5"`
}

func toNodes(payloads []nodePayload) []datastructure.Node {
	nodes := make([]datastructure.Node, len(payloads))
	for i, p := range payloads {
		nodes[i] = datastructure.Node{
			Name:        p.Name,
			Description: p.Description,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Type:        pkg.NodeType(p.Type),
			Risk:        p.Risk,
		}
	}
	return nodes
}

type generateRoutesRequest struct {
	// Nodes, when present, is the node set to plan over; otherwise the
	// stored collection is used.
	Nodes        []nodePayload `json:"nodes" validate:"omitempty,dive"`
	Duration     float64       `json:"duration" validate:"required,gt=0"`
	Difficulty   int           `json:"difficulty" validate:"required,min=1,max=5"`
	Experience   int           `json:"experience" validate:"required,min=1,max=5"`
	WalkingSpeed float64       `json:"walking_speed" validate:"omitempty,gt=0"`
	Tolerance    float64       `json:"tolerance" validate:"omitempty,gt=0"`
}

type suggestRoutesRequest struct {
	Duration   float64 `json:"duration" validate:"required,gt=0"`
	Difficulty int     `json:"difficulty" validate:"required,min=1,max=5"`
	Experience int     `json:"experience" validate:"required,min=1,max=5"`
}

type shortestDistancesRequest struct {
	Nodes         []nodePayload `json:"nodes" validate:"omitempty,dive"`
	StartNodeName string        `json:"startNodeName" validate:"required"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
