package recommend

import (
	"sort"

	"instruCal/business/catalog"
)

// scoreCategoryAffinity expands the user's strongest categories into
// adjacent categories via the static category graph and scores products
// living there. Multiple top categories can stack onto the same candidate;
// reasons are unioned and deduplicated.
func scoreCategoryAffinity(cfg Config, profile *Profile, excluded map[string]struct{}) map[string]*candidate {
	out := make(map[string]*candidate)

	type categoryScore struct {
		category string
		score    float64
	}

	ranked := make([]categoryScore, 0, len(profile.CategoryScores))
	for cat, score := range profile.CategoryScores {
		ranked = append(ranked, categoryScore{category: cat, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score == ranked[j].score {
			return ranked[i].category < ranked[j].category
		}
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > cfg.TopCategories {
		ranked = ranked[:cfg.TopCategories]
	}

	for _, top := range ranked {
		complementary := make(map[string]struct{})
		for _, cat := range catalog.ComplementaryCategories(top.category) {
			complementary[cat] = struct{}{}
		}
		if len(complementary) == 0 {
			continue
		}

		for _, p := range catalog.All() {
			if _, ok := complementary[p.Category]; !ok {
				continue
			}
			if _, skip := excluded[p.ID]; skip {
				continue
			}

			c, ok := out[p.ID]
			if !ok {
				c = &candidate{}
				out[p.ID] = c
			}
			c.score += cfg.CategoryAffinityBonus
			c.addReason("Complements your " + top.category + " interests")
		}
	}

	return out
}
