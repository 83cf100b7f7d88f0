package query

import (
	"math"

	"collabhub/internal/model"
	"collabhub/internal/util"
)

// Criteria are conjunctive search filters. Zero values and nil bounds are
// unconstrained.
type Criteria struct {
	// Term matches name, handle or any category, case-insensitively.
	Term          string
	Platforms     []model.PlatformName
	Country       string
	MinFollowers  *int
	MaxFollowers  *int
	MinViews      *int
	MaxViews      *int
	MinEngagement *float64
}

// Matches reports whether inf satisfies every active criterion.
func (c Criteria) Matches(inf model.Influencer) bool {
	if c.Term != "" && !matchesTerm(inf, c.Term) {
		return false
	}
	if len(c.Platforms) > 0 {
		set := make(map[model.PlatformName]struct{}, len(c.Platforms))
		for _, p := range c.Platforms {
			set[p] = struct{}{}
		}
		if !inf.HasPlatform(set) {
			return false
		}
	}
	if c.Country != "" && inf.Country != c.Country {
		return false
	}
	if c.MinFollowers != nil && inf.Followers < *c.MinFollowers {
		return false
	}
	if c.MaxFollowers != nil && inf.Followers > *c.MaxFollowers {
		return false
	}
	// A missing view count counts as 0 against the minimum and never
	// exceeds the maximum.
	if c.MinViews != nil {
		views := 0
		if inf.AverageViews != nil {
			views = *inf.AverageViews
		}
		if views < *c.MinViews {
			return false
		}
	}
	if c.MaxViews != nil {
		views := math.MaxInt
		if inf.AverageViews != nil {
			views = *inf.AverageViews
		}
		if views > *c.MaxViews {
			return false
		}
	}
	if c.MinEngagement != nil && inf.EngagementRate < *c.MinEngagement {
		return false
	}
	return true
}

func matchesTerm(inf model.Influencer, term string) bool {
	if util.ContainsFold(inf.Name, term) || util.ContainsFold(inf.Handle, term) {
		return true
	}
	for _, cat := range inf.Categories {
		if util.ContainsFold(cat, term) {
			return true
		}
	}
	return false
}

// Filter returns the matching subset of pool, preserving order.
func Filter(pool []model.Influencer, c Criteria) []model.Influencer {
	out := make([]model.Influencer, 0, len(pool))
	for _, inf := range pool {
		if c.Matches(inf) {
			out = append(out, inf)
		}
	}
	return out
}
