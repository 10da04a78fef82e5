package recommend

import (
	"context"
	"sort"
	"time"

	"instruCal/domain"
)

// in-memory interaction store mirroring the SQL grouping semantics
type fakeInteractionRepo struct {
	interactions []domain.Interaction
	saveErr      error
	queryErr     error
}

func (f *fakeInteractionRepo) Save(_ context.Context, in *domain.Interaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	in.ID = uint(len(f.interactions) + 1)
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	f.interactions = append(f.interactions, *in)
	return nil
}

func (f *fakeInteractionRepo) FindByUser(_ context.Context, userID uint) ([]domain.Interaction, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []domain.Interaction
	for _, in := range f.interactions {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) DistinctProductsByUser(_ context.Context, userID uint) ([]string, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	seen := make(map[string]struct{})
	var out []string
	for _, in := range f.interactions {
		if in.UserID != userID {
			continue
		}
		if _, ok := seen[in.ProductID]; ok {
			continue
		}
		seen[in.ProductID] = struct{}{}
		out = append(out, in.ProductID)
	}
	return out, nil
}

func (f *fakeInteractionRepo) FindNeighbors(
	_ context.Context,
	userID uint,
	productIDs []string,
	minInteractions, limit int,
) ([]Neighbor, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	inSet := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		inSet[id] = struct{}{}
	}

	type agg struct {
		products map[string]struct{}
		count    int
	}
	byUser := make(map[uint]*agg)
	for _, in := range f.interactions {
		if in.UserID == userID {
			continue
		}
		if _, ok := inSet[in.ProductID]; !ok {
			continue
		}
		a, ok := byUser[in.UserID]
		if !ok {
			a = &agg{products: make(map[string]struct{})}
			byUser[in.UserID] = a
		}
		a.products[in.ProductID] = struct{}{}
		a.count++
	}

	var out []Neighbor
	for uid, a := range byUser {
		if a.count < minInteractions {
			continue
		}
		out = append(out, Neighbor{
			UserID:           uid,
			CommonProducts:   len(a.products),
			InteractionCount: a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InteractionCount == out[j].InteractionCount {
			return out[i].UserID < out[j].UserID
		}
		return out[i].InteractionCount > out[j].InteractionCount
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeInteractionRepo) FindByUsers(_ context.Context, userIDs []uint) ([]domain.Interaction, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	inSet := make(map[uint]struct{}, len(userIDs))
	for _, id := range userIDs {
		inSet[id] = struct{}{}
	}
	var out []domain.Interaction
	for _, in := range f.interactions {
		if _, ok := inSet[in.UserID]; ok {
			out = append(out, in)
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) SumWeightByProduct(_ context.Context, limit int) ([]domain.ProductWeight, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	sums := make(map[string]float64)
	for _, in := range f.interactions {
		sums[in.ProductID] += in.Weight
	}
	out := make([]domain.ProductWeight, 0, len(sums))
	for pid, w := range sums {
		out = append(out, domain.ProductWeight{ProductID: pid, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight == out[j].Weight {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Weight > out[j].Weight
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeInteractionRepo) FindRecent(_ context.Context, limit int) ([]domain.Interaction, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	out := make([]domain.Interaction, len(f.interactions))
	copy(out, f.interactions)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeInteractionRepo) Count(_ context.Context) (int64, error) {
	if f.queryErr != nil {
		return 0, f.queryErr
	}
	return int64(len(f.interactions)), nil
}

func (f *fakeInteractionRepo) CountByKind(_ context.Context) (map[string]int64, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	out := make(map[string]int64)
	for _, in := range f.interactions {
		out[in.Kind]++
	}
	return out, nil
}

func (f *fakeInteractionRepo) CountByCategory(_ context.Context) (map[string]int64, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	out := make(map[string]int64)
	for _, in := range f.interactions {
		out[in.Category]++
	}
	return out, nil
}

func (f *fakeInteractionRepo) CountEngagedUsers(_ context.Context, minInteractions int) (int64, error) {
	if f.queryErr != nil {
		return 0, f.queryErr
	}
	perUser := make(map[uint]int)
	for _, in := range f.interactions {
		perUser[in.UserID]++
	}
	var count int64
	for _, n := range perUser {
		if n >= minInteractions {
			count++
		}
	}
	return count, nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeBookingRepo) FindByUser(_ context.Context, userID uint) ([]domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
