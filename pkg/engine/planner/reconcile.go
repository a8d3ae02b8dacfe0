package planner

import (
	"math"

	"github.com/sendero-app/sendero/pkg"
)

// ReconcileDistances rescales provisional per-segment distances so their sum
// matches an externally measured authoritative total. authoritativeTotal <= 0
// means no total was supplied.
//
// When the provisional sum and the total differ by more than one meter, every
// segment is multiplied by total/sum and rounded to the nearest meter. The
// rounded total becomes the official route distance whether or not rescaling
// happened; without a total the official distance is the unscaled sum. A zero
// provisional sum skips scaling entirely.
func ReconcileDistances(segments []float64, authoritativeTotal float64) (adjusted []int, official int, rescaled bool) {
	sum := 0.0
	for _, s := range segments {
		sum += s
	}

	adjusted = make([]int, len(segments))
	for i, s := range segments {
		adjusted[i] = int(math.Round(s))
	}

	if authoritativeTotal <= 0 {
		return adjusted, int(math.Round(sum)), false
	}

	official = int(math.Round(authoritativeTotal))
	if sum == 0 || math.Abs(sum-authoritativeTotal) <= pkg.RECONCILE_TOLERANCE_METERS {
		return adjusted, official, false
	}

	factor := authoritativeTotal / sum
	for i, s := range segments {
		adjusted[i] = int(math.Round(s * factor))
	}
	return adjusted, official, true
}
