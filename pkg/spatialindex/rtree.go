package spatialindex

import (
	"math"
	"sort"

	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[datastructure.Node]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Node]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every node, with each leaf having a bounding box with radius
// boundingBoxRadius (in km) around the node coordinate.
func (rt *Rtree) Build(nodes []datastructure.Node, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("building r-tree spatial index", zap.Int("nodes", len(nodes)))
	for _, node := range nodes {
		rt.Insert(node, boundingBoxRadius)
	}
}

func (rt *Rtree) Insert(node datastructure.Node, boundingBoxRadius float64) {
	lowerLat, lowerLon := geo.GetDestinationPoint(node.Lat, node.Lng, 225, boundingBoxRadius)
	upperLat, upperLon := geo.GetDestinationPoint(node.Lat, node.Lng, 45, boundingBoxRadius)

	rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, node)
}

func (rt *Rtree) Delete(node datastructure.Node, boundingBoxRadius float64) {
	lowerLat, lowerLon := geo.GetDestinationPoint(node.Lat, node.Lng, 225, boundingBoxRadius)
	upperLat, upperLon := geo.GetDestinationPoint(node.Lat, node.Lng, 45, boundingBoxRadius)

	rt.tr.Delete([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, node)
}

// NodeWithDistance pairs an indexed node with its haversine distance from the
// query point, in km.
type NodeWithDistance struct {
	Node       datastructure.Node
	DistanceKM float64
}

// SearchWithinRadius returns all nodes within radius (in km) from the query
// point (qLat, qLon), closest first. The bounding box search overshoots at the
// corners, so every hit is re-checked against the haversine distance.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []NodeWithDistance {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]NodeWithDistance, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, node datastructure.Node) bool {
			dist := geo.CalculateHaversineDistance(qLat, qLon, node.Lat, node.Lng)
			if dist <= radius {
				results = append(results, NodeWithDistance{Node: node, DistanceKM: dist})
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})
	return results
}

// NearestNeighbor returns the closest indexed node to the query point, or
// false when the index is empty.
func (rt *Rtree) NearestNeighbor(qLat, qLon float64) (NodeWithDistance, bool) {
	best := NodeWithDistance{DistanceKM: math.Inf(1)}
	found := false
	rt.tr.Scan(func(min, max [2]float64, node datastructure.Node) bool {
		dist := geo.CalculateHaversineDistance(qLat, qLon, node.Lat, node.Lng)
		if dist < best.DistanceKM {
			best = NodeWithDistance{Node: node, DistanceKM: dist}
			found = true
		}
		return true
	})
	return best, found
}
