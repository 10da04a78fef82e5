package domain

import "time"

// Recommendation is one ranked product with its audit trail of reasons.
type Recommendation struct {
	ProductID string   `json:"product_id"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}

// ProductWeight is an aggregate of summed interaction weight per product.
type ProductWeight struct {
	ProductID string  `json:"product_id"`
	Weight    float64 `json:"weight"`
}

// InteractionStats is the admin reporting summary over the interaction store.
type InteractionStats struct {
	Total        int64            `json:"total"`
	ByKind       map[string]int64 `json:"by_kind"`
	ByCategory   map[string]int64 `json:"by_category"`
	TopProducts  []ProductWeight  `json:"top_products"`
	EngagedUsers int64            `json:"engaged_users"`
	Recent       []Interaction    `json:"recent"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
