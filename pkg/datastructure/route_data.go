package datastructure

import (
	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/geo"
)

// Node is a named geographic waypoint. Interest nodes are endpoint-eligible
// destinations, control nodes carry a risk level between 1 and 5.
type Node struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Type        pkg.NodeType `json:"type"`
	Risk        int          `json:"risk,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
}

func (n Node) Coord() geo.Coordinate {
	return geo.NewCoordinate(n.Lat, n.Lng)
}

func (n Node) IsControl() bool {
	return n.Type == pkg.NodeTypeControl
}

// PointOnPath is one waypoint of a stored or generated route. Risk is only
// present on control points.
type PointOnPath struct {
	NodeName string       `json:"nodeName"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	Type     pkg.NodeType `json:"type"`
	Risk     int          `json:"risk,omitempty"`
}

func NewPointOnPath(n Node) PointOnPath {
	p := PointOnPath{
		NodeName: n.Name,
		Lat:      n.Lat,
		Lng:      n.Lng,
		Type:     n.Type,
	}
	if n.IsControl() {
		p.Risk = n.Risk
	}
	return p
}

// Route is the caller-visible route record. Distance is whole meters,
// duration is minutes, risk is the mean risk of control points on the path.
type Route struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Difficulty  int           `json:"difficulty"`
	Popularity  int           `json:"popularity"`
	Points      []PointOnPath `json:"points"`
	Distance    int           `json:"distance"`

	// Segments holds the reconciled distance in meters of each consecutive
	// point pair, so the stored route keeps its per-edge weights.
	Segments  []int   `json:"segments,omitempty"`
	Risk      float64 `json:"risk"`
	Duration  float64 `json:"duration,omitempty"`
	Polyline  string  `json:"polyline,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// PointCoords returns the ordered coordinates of the route's waypoints.
func (r Route) PointCoords() []geo.Coordinate {
	coords := make([]geo.Coordinate, len(r.Points))
	for i, p := range r.Points {
		coords[i] = geo.NewCoordinate(p.Lat, p.Lng)
	}
	return coords
}

// FindNode looks a node up by name in a caller-supplied list.
func FindNode(nodes []Node, name string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}
