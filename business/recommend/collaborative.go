package recommend

import (
	"context"
	"sort"

	"instruCal/business/catalog"
	"instruCal/pkg/logger"
)

// Neighbor is a user whose interacted-product set overlaps the target
// user's. Produced by the interaction store's grouping query.
type Neighbor struct {
	UserID           uint `gorm:"column:user_id" json:"user_id"`
	CommonProducts   int  `gorm:"column:common_products" json:"common_products"`
	InteractionCount int  `gorm:"column:interaction_count" json:"interaction_count"`
}

// scoreCollaborative surfaces products popular among users with
// overlapping interaction history. Any internal failure degrades to an
// empty contribution; this scorer never blocks the recommendation flow.
func scoreCollaborative(
	ctx context.Context,
	cfg Config,
	repo InteractionRepository,
	userID uint,
	excluded map[string]struct{},
) map[string]*candidate {

	empty := map[string]*candidate{}

	ownProducts, err := repo.DistinctProductsByUser(ctx, userID)
	if err != nil {
		logger.Warn("collaborative scorer degraded", "stage", "own_products", err)
		return empty
	}
	if len(ownProducts) == 0 {
		return empty
	}

	neighbors, err := repo.FindNeighbors(ctx, userID, ownProducts, cfg.NeighborMinInteractions, cfg.NeighborLimit)
	if err != nil {
		logger.Warn("collaborative scorer degraded", "stage", "neighbors", err)
		return empty
	}
	if len(neighbors) == 0 {
		return empty
	}

	neighborIDs := make([]uint, 0, len(neighbors))
	for _, n := range neighbors {
		neighborIDs = append(neighborIDs, n.UserID)
	}

	rows, err := repo.FindByUsers(ctx, neighborIDs)
	if err != nil {
		logger.Warn("collaborative scorer degraded", "stage", "neighbor_interactions", err)
		return empty
	}

	type productSignal struct {
		totalWeight float64
		neighbors   map[uint]struct{}
	}

	signals := make(map[string]*productSignal)
	for _, row := range rows {
		if _, skip := excluded[row.ProductID]; skip {
			continue
		}
		if _, ok := catalog.FindByID(row.ProductID); !ok {
			continue
		}

		sig, ok := signals[row.ProductID]
		if !ok {
			sig = &productSignal{neighbors: make(map[uint]struct{})}
			signals[row.ProductID] = sig
		}
		sig.totalWeight += row.Weight
		sig.neighbors[row.UserID] = struct{}{}
	}

	type scored struct {
		productID string
		score     float64
	}

	scoredList := make([]scored, 0, len(signals))
	for pid, sig := range signals {
		scoredList = append(scoredList, scored{
			productID: pid,
			score:     sig.totalWeight * float64(len(sig.neighbors)),
		})
	}

	sort.Slice(scoredList, func(i, j int) bool {
		if scoredList[i].score == scoredList[j].score {
			return scoredList[i].productID < scoredList[j].productID
		}
		return scoredList[i].score > scoredList[j].score
	})

	if len(scoredList) > cfg.CollaborativeTopN {
		scoredList = scoredList[:cfg.CollaborativeTopN]
	}

	out := make(map[string]*candidate, len(scoredList))
	for _, sc := range scoredList {
		c := &candidate{score: sc.score}
		c.addReason("Popular among users with similar interests")
		out[sc.productID] = c
	}

	return out
}
