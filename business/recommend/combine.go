package recommend

import (
	"sort"

	"instruCal/domain"
)

// candidate accumulates one product's score and reason strings within a
// single scorer. Reasons are deduplicated on insert.
type candidate struct {
	score   float64
	reasons []string
}

func (c *candidate) addReason(reason string) {
	for _, r := range c.reasons {
		if r == reason {
			return
		}
	}
	c.reasons = append(c.reasons, reason)
}

// combineScores merges the three scorer outputs with fixed weights,
// unions and trims the reason lists, and returns the top-N candidates
// sorted by combined score. Product id breaks score ties so the output
// is deterministic.
func combineScores(
	cfg Config,
	content map[string]*candidate,
	collaborative map[string]*candidate,
	category map[string]*candidate,
	limit int,
) []domain.Recommendation {

	ids := make(map[string]struct{})
	for id := range content {
		ids[id] = struct{}{}
	}
	for id := range collaborative {
		ids[id] = struct{}{}
	}
	for id := range category {
		ids[id] = struct{}{}
	}

	merged := make([]domain.Recommendation, 0, len(ids))
	for id := range ids {
		total := 0.0
		var reasons []string

		appendFrom := func(c *candidate, weight float64) {
			if c == nil {
				return
			}
			total += c.score * weight
			for _, r := range c.reasons {
				duplicate := false
				for _, seen := range reasons {
					if seen == r {
						duplicate = true
						break
					}
				}
				if !duplicate {
					reasons = append(reasons, r)
				}
			}
		}

		appendFrom(content[id], cfg.WContent)
		appendFrom(collaborative[id], cfg.WCollaborative)
		appendFrom(category[id], cfg.WCategory)

		if len(reasons) > cfg.MaxReasons {
			reasons = reasons[:cfg.MaxReasons]
		}

		merged = append(merged, domain.Recommendation{
			ProductID: id,
			Score:     total,
			Reasons:   reasons,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score == merged[j].Score {
			return merged[i].ProductID < merged[j].ProductID
		}
		return merged[i].Score > merged[j].Score
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}
