package usecases

import (
	"context"
	"time"

	"github.com/sendero-app/sendero/pkg"
	"github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/geo"
	"github.com/sendero-app/sendero/pkg/util"
	"go.uber.org/zap"
)

// nodeIndexRadiusKM is the bounding box radius used when indexing a node.
const nodeIndexRadiusKM = 0.05

type NodeService struct {
	log          *zap.Logger
	store        Store
	spatialIndex SpatialIndex
}

func NewNodeService(log *zap.Logger, store Store, spatialIndex SpatialIndex) *NodeService {
	return &NodeService{
		log:          log,
		store:        store,
		spatialIndex: spatialIndex,
	}
}

func (ns *NodeService) ListNodes() ([]datastructure.Node, error) {
	return ns.store.LoadNodes()
}

// CreateNode validates and persists one waypoint. Node names are unique;
// risk is only meaningful on control nodes.
func (ns *NodeService) CreateNode(ctx context.Context, node datastructure.Node) (datastructure.Node, error) {
	if node.Name == "" {
		return datastructure.Node{}, util.WrapErrorf(nil, util.ErrBadParamInput, "node name is required")
	}
	if !geo.ValidCoordinate(node.Lat, node.Lng) {
		return datastructure.Node{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"invalid coordinate (%f, %f)", node.Lat, node.Lng)
	}
	switch node.Type {
	case pkg.NodeTypeInterest:
		node.Risk = 0
	case pkg.NodeTypeControl:
		if node.Risk < pkg.MIN_RISK || node.Risk > pkg.MAX_RISK {
			return datastructure.Node{}, util.WrapErrorf(nil, util.ErrBadParamInput,
				"control node risk must be between %d and %d", pkg.MIN_RISK, pkg.MAX_RISK)
		}
	default:
		return datastructure.Node{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"node type must be %q or %q", pkg.NodeTypeInterest, pkg.NodeTypeControl)
	}

	nodes, err := ns.store.LoadNodes()
	if err != nil {
		return datastructure.Node{}, err
	}
	if _, found := datastructure.FindNode(nodes, node.Name); found {
		return datastructure.Node{}, util.WrapErrorf(nil, util.ErrConflict,
			"node %q already exists", node.Name)
	}

	node.CreatedAt = time.Now().Format(time.RFC3339)
	nodes = append(nodes, node)
	if err := ns.store.SaveNodes(nodes); err != nil {
		return datastructure.Node{}, err
	}

	ns.spatialIndex.Insert(node, nodeIndexRadiusKM)
	ns.log.Info("node created", zap.String("name", node.Name), zap.String("type", string(node.Type)))
	return node, nil
}

// DeleteNode removes a waypoint unless a stored route still references it.
func (ns *NodeService) DeleteNode(ctx context.Context, name string) error {
	nodes, err := ns.store.LoadNodes()
	if err != nil {
		return err
	}
	node, found := datastructure.FindNode(nodes, name)
	if !found {
		return util.WrapErrorf(nil, util.ErrNotFound, "node %q not found", name)
	}

	routes, err := ns.store.LoadRoutes()
	if err != nil {
		return err
	}
	for _, route := range routes {
		for _, p := range route.Points {
			if p.NodeName == name {
				return util.WrapErrorf(nil, util.ErrConflict,
					"node %q is used by route %q", name, route.Name)
			}
		}
	}

	remaining := make([]datastructure.Node, 0, len(nodes)-1)
	for _, n := range nodes {
		if n.Name != name {
			remaining = append(remaining, n)
		}
	}
	if err := ns.store.SaveNodes(remaining); err != nil {
		return err
	}

	ns.spatialIndex.Delete(node, nodeIndexRadiusKM)
	ns.log.Info("node deleted", zap.String("name", name))
	return nil
}

// NearbyNode pairs a stored node with its distance from the query point.
type NearbyNode struct {
	Node       datastructure.Node `json:"node"`
	DistanceKM float64            `json:"distance_km"`
}

func (ns *NodeService) NearbyNodes(lat, lng, radiusKM float64) ([]NearbyNode, error) {
	if !geo.ValidCoordinate(lat, lng) {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "invalid coordinate (%f, %f)", lat, lng)
	}
	if radiusKM <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"radius must be greater than zero, got %f", radiusKM)
	}

	hits := ns.spatialIndex.SearchWithinRadius(lat, lng, radiusKM)
	nearby := make([]NearbyNode, len(hits))
	for i, h := range hits {
		nearby[i] = NearbyNode{Node: h.Node, DistanceKM: util.RoundFloat(h.DistanceKM, 3)}
	}
	return nearby, nil
}
