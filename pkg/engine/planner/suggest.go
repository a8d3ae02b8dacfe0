package planner

import (
	"math"
	"sort"

	"github.com/sendero-app/sendero/pkg"
	da "github.com/sendero-app/sendero/pkg/datastructure"
	"github.com/sendero-app/sendero/pkg/util"
)

// SuggestParams describes what the caller wants from already stored routes.
type SuggestParams struct {
	DurationMinutes float64
	Difficulty      int
	Experience      int
}

// SuggestRoutes filters a stored route collection down to the ones matching
// the caller's duration and experience-adjusted difficulty, ranked by score.
//
// The experience scaling (difficulty x experience/3, clamped to [1,5]) is a
// product heuristic carried over unchanged; its arithmetic is load-bearing
// for existing clients.
func (p *Planner) SuggestRoutes(stored []da.Route, params SuggestParams) ([]da.Route, error) {
	if params.Experience <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "experience must be greater than zero")
	}
	if params.DurationMinutes <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "duration must be greater than zero")
	}

	adjustedDifficulty := util.Clamp(
		float64(params.Difficulty)*(float64(params.Experience)/3.0),
		float64(pkg.MIN_DIFFICULTY), float64(pkg.MAX_DIFFICULTY))

	difficultyLo := util.Clamp(int(math.Round(adjustedDifficulty))-1, pkg.MIN_DIFFICULTY, pkg.MAX_DIFFICULTY)
	difficultyHi := util.Clamp(int(math.Round(adjustedDifficulty))+1, pkg.MIN_DIFFICULTY, pkg.MAX_DIFFICULTY)

	durationWindow := math.Max(10, params.DurationMinutes*0.25)

	type scored struct {
		route        da.Route
		score        float64
		durationDiff float64
	}
	accepted := make([]scored, 0, len(stored))

	for _, route := range stored {
		if route.Difficulty < difficultyLo || route.Difficulty > difficultyHi {
			continue
		}
		durationDiff := math.Abs(route.Duration - params.DurationMinutes)
		if durationDiff > durationWindow {
			continue
		}

		score := 0.6*(1.0-math.Abs(float64(route.Difficulty)-adjustedDifficulty)/5.0) +
			0.4*(1.0-durationDiff/params.DurationMinutes)
		accepted = append(accepted, scored{route: route, score: score, durationDiff: durationDiff})
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].score != accepted[j].score {
			return accepted[i].score > accepted[j].score
		}
		return accepted[i].durationDiff < accepted[j].durationDiff
	})

	limit := util.MinInt(len(accepted), pkg.MAX_SUGGESTED_ROUTES)
	suggestions := make([]da.Route, 0, limit)
	for _, s := range accepted[:limit] {
		suggestions = append(suggestions, s.route)
	}
	return suggestions, nil
}
