package pkg

import "math"

// NodeType tags a waypoint as either a destination of interest or an
// intermediate control checkpoint carrying a risk rating.
type NodeType string

const (
	NodeTypeInterest NodeType = "interest"
	NodeTypeControl  NodeType = "control"
)

var (
	// INF_WEIGHT marks an unreachable vertex in shortest-path results.
	INF_WEIGHT = math.Inf(1)
)

const (
	MIN_RISK = 1
	MAX_RISK = 5

	MIN_DIFFICULTY = 1
	MAX_DIFFICULTY = 5

	MIN_EXPERIENCE = 1
	MAX_EXPERIENCE = 5

	// DEFAULT_WALKING_SPEED_KMH is assumed when a request omits walking speed.
	DEFAULT_WALKING_SPEED_KMH = 5.0

	// DEFAULT_TOLERANCE_MINUTES is the accepted deviation from the target
	// duration when scoring generated route candidates.
	DEFAULT_TOLERANCE_MINUTES = 6.0

	// DEFAULT_ALPHA / DEFAULT_BETA weight duration vs difficulty-adjusted-by-
	// experience in the candidate weight formula.
	DEFAULT_ALPHA = 1.0
	DEFAULT_BETA  = 1.0

	// MAX_GENERATED_ROUTES caps the ranked candidates returned by the planner.
	MAX_GENERATED_ROUTES = 10

	// MAX_SUGGESTED_ROUTES caps the suggestion filter output.
	MAX_SUGGESTED_ROUTES = 5

	// RECONCILE_TOLERANCE_METERS below which measured and computed route
	// lengths are considered equal.
	RECONCILE_TOLERANCE_METERS = 1.0

	MIN_ROUTE_POINTS = 2
)

const (
	DEBUG = false
)
