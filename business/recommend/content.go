package recommend

import (
	"math"

	"instruCal/business/catalog"
)

// scoreContent ranks catalog products against the user's profile:
// category affinity, complementarity with recently engaged products,
// and price-range similarity. Pure function; only candidates with a
// positive score are returned.
func scoreContent(cfg Config, profile *Profile, excluded map[string]struct{}) map[string]*candidate {
	out := make(map[string]*candidate)

	var avgPrice float64
	if len(profile.PriceSamples) > 0 {
		sum := 0.0
		for _, price := range profile.PriceSamples {
			sum += price
		}
		avgPrice = sum / float64(len(profile.PriceSamples))
	}

	for _, p := range catalog.All() {
		if _, skip := excluded[p.ID]; skip {
			continue
		}

		c := &candidate{}

		if categoryScore := profile.CategoryScores[p.Category]; categoryScore > 0 {
			c.score += categoryScore * cfg.CategoryMatchFactor
			c.addReason("Matches your interest in " + p.Category)
		}

		for _, recentID := range profile.RecentProducts {
			for _, compID := range catalog.ComplementaryProducts(recentID) {
				if compID != p.ID {
					continue
				}
				name := "your recent products"
				if recent, ok := catalog.FindByID(recentID); ok {
					name = recent.Name
				}
				c.score += cfg.ComplementBonus
				c.addReason("Complements " + name)
			}
		}

		if avgPrice > 0 && p.Price > 0 {
			priceDiff := math.Abs(p.Price - avgPrice)
			priceScore := math.Max(0, cfg.PriceScoreBase-priceDiff/avgPrice)
			if priceScore > cfg.PriceScoreFloor {
				c.score += priceScore
				c.addReason("Similar price range to your interests")
			}
		}

		if c.score > 0 {
			out[p.ID] = c
		}
	}

	return out
}
