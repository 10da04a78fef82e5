package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"instruCal/business/catalog"
	"instruCal/domain"
)

func newTestService(interactions *fakeInteractionRepo, bookings *fakeBookingRepo) *Service {
	return NewService(interactions, bookings, DefaultConfig())
}

func TestGetRecommendationsExclusionInvariant(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(1, "fluke-87v", "purchase", "multimeters", 5, now),
		interactionAt(1, "fluke-376fc", "view", "clamp-meters", 1, now),
	}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{UserID: 1, ProductRef: "fluke-719pro", Status: domain.BookingCancelled},
	}}

	svc := newTestService(repo, bookings)
	recs := svc.GetRecommendations(context.Background(), 1, 10)

	if len(recs) == 0 {
		t.Fatal("user with history should get personalized recommendations")
	}
	for _, rec := range recs {
		switch rec.ProductID {
		case "fluke-87v", "fluke-376fc":
			t.Errorf("interacted product %s must never be recommended", rec.ProductID)
		case "fluke-719pro":
			t.Error("booked product must never be recommended, even cancelled")
		}
	}
}

func TestGetRecommendationsSortedAndLimited(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(1, "fluke-87v", "purchase", "multimeters", 5, now),
	}}

	svc := newTestService(repo, &fakeBookingRepo{})

	for _, limit := range []int{1, 2, 3, 10} {
		recs := svc.GetRecommendations(context.Background(), 1, limit)
		if len(recs) > limit {
			t.Errorf("limit %d exceeded: got %d", limit, len(recs))
		}
		for i := 1; i < len(recs); i++ {
			if recs[i-1].Score < recs[i].Score {
				t.Errorf("output not sorted descending at %d: %f < %f",
					i, recs[i-1].Score, recs[i].Score)
			}
		}
	}

	if recs := svc.GetRecommendations(context.Background(), 1, 0); len(recs) != 0 {
		t.Errorf("limit 0 must return empty, got %d", len(recs))
	}
}

func TestGetRecommendationsReasonsDeduplicatedAndCapped(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(1, "fluke-87v", "purchase", "multimeters", 5, now),
		interactionAt(1, "fluke-376fc", "inquiry", "clamp-meters", 2, now),
		interactionAt(1, "fluke-719pro", "view", "pressure-calibrators", 1, now),
	}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{
		{UserID: 1, ProductRef: "ametek-rtc159", Status: domain.BookingCompleted},
	}}

	svc := newTestService(repo, bookings)
	recs := svc.GetRecommendations(context.Background(), 1, 10)

	for _, rec := range recs {
		if len(rec.Reasons) > 3 {
			t.Errorf("%s has %d reasons, cap is 3", rec.ProductID, len(rec.Reasons))
		}
		seen := make(map[string]bool)
		for _, r := range rec.Reasons {
			if seen[r] {
				t.Errorf("%s has duplicate reason %q", rec.ProductID, r)
			}
			seen[r] = true
		}
	}
}

func TestGetRecommendationsCollaborativeSymmetry(t *testing.T) {
	now := time.Now()
	// A and B share two products; B additionally purchased additel-681
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(1, "fluke-87v", "view", "multimeters", 1, now),
		interactionAt(1, "fluke-376fc", "view", "clamp-meters", 1, now),
		interactionAt(2, "fluke-87v", "view", "multimeters", 1, now),
		interactionAt(2, "fluke-376fc", "view", "clamp-meters", 1, now),
		interactionAt(2, "additel-681", "purchase", "pressure-gauges", 5, now),
	}}

	svc := newTestService(repo, &fakeBookingRepo{})
	recs := svc.GetRecommendations(context.Background(), 1, 14)

	for _, rec := range recs {
		if rec.ProductID != "additel-681" {
			continue
		}
		for _, r := range rec.Reasons {
			if r == "Popular among users with similar interests" {
				return
			}
		}
		t.Fatalf("additel-681 surfaced without collaborative reason: %v", rec.Reasons)
	}
	t.Fatal("expected additel-681 to be surfaced via collaborative scoring")
}

func TestGetRecommendationsFeaturedFallbackOnEmptyStore(t *testing.T) {
	svc := newTestService(&fakeInteractionRepo{}, &fakeBookingRepo{})

	recs := svc.GetRecommendations(context.Background(), 99, 3)

	if len(recs) != 3 {
		t.Fatalf("expected 3 featured products, got %d", len(recs))
	}
	for i, p := range catalog.All()[:3] {
		if recs[i].ProductID != p.ID {
			t.Errorf("featured order broken at %d: got %s, want %s", i, recs[i].ProductID, p.ID)
		}
		if len(recs[i].Reasons) != 1 || recs[i].Reasons[0] != "Featured product" {
			t.Errorf("unexpected reasons %v", recs[i].Reasons)
		}
	}
}

func TestGetRecommendationsPopularFallbackOnProfileFailure(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(7, "fluke-87v", "purchase", "multimeters", 5, now),
		interactionAt(8, "additel-681", "view", "pressure-gauges", 1, now),
	}}
	// booking lookup fails, so the personalized pipeline fails as a whole
	bookings := &fakeBookingRepo{err: errors.New("bookings store down")}

	svc := newTestService(repo, bookings)
	recs := svc.GetRecommendations(context.Background(), 7, 5)

	if len(recs) != 2 {
		t.Fatalf("expected popular fallback over 2 products, got %d", len(recs))
	}
	if recs[0].ProductID != "fluke-87v" {
		t.Errorf("heaviest product first, got %s", recs[0].ProductID)
	}
	for _, rec := range recs {
		if len(rec.Reasons) != 1 || rec.Reasons[0] != "Popular product" {
			t.Errorf("unexpected reasons %v", rec.Reasons)
		}
	}
}

func TestGetRecommendationsFeaturedFallbackWhenStoreFullyDown(t *testing.T) {
	repo := &fakeInteractionRepo{queryErr: errors.New("store down")}
	bookings := &fakeBookingRepo{err: errors.New("store down")}

	svc := newTestService(repo, bookings)
	recs := svc.GetRecommendations(context.Background(), 1, 4)

	if len(recs) != 4 {
		t.Fatalf("last-resort fallback must still serve, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Reasons[0] != "Featured product" {
			t.Errorf("unexpected reason %v", rec.Reasons)
		}
	}
}

func TestRecordInteractionWeightMapping(t *testing.T) {
	cases := []struct {
		kind   string
		weight float64
	}{
		{"view", 1},
		{"inquiry", 2},
		{"booking", 3},
		{"purchase", 5},
	}

	for _, tc := range cases {
		repo := &fakeInteractionRepo{}
		svc := newTestService(repo, &fakeBookingRepo{})

		svc.RecordInteraction(context.Background(), 1, "fluke-87v", tc.kind, nil)

		if len(repo.interactions) != 1 {
			t.Fatalf("kind %s: expected 1 persisted interaction", tc.kind)
		}
		in := repo.interactions[0]
		if in.Weight != tc.weight {
			t.Errorf("kind %s: weight = %f, want %f", tc.kind, in.Weight, tc.weight)
		}
		if in.Category != "multimeters" {
			t.Errorf("kind %s: category not denormalized, got %q", tc.kind, in.Category)
		}
	}
}

func TestRecordInteractionUnknownProductIsNoop(t *testing.T) {
	repo := &fakeInteractionRepo{}
	svc := newTestService(repo, &fakeBookingRepo{})

	svc.RecordInteraction(context.Background(), 1, "no-such-product", "view", nil)

	if len(repo.interactions) != 0 {
		t.Error("unknown product must not persist an interaction")
	}
}

func TestRecordInteractionPersistFailureIsSwallowed(t *testing.T) {
	repo := &fakeInteractionRepo{saveErr: errors.New("insert failed")}
	svc := newTestService(repo, &fakeBookingRepo{})

	// must not panic or surface the error
	svc.RecordInteraction(context.Background(), 1, "fluke-87v", "view", nil)
}

func TestGetStats(t *testing.T) {
	now := time.Now()
	repo := &fakeInteractionRepo{interactions: []domain.Interaction{
		interactionAt(1, "fluke-87v", "view", "multimeters", 1, now.Add(-time.Hour)),
		interactionAt(1, "fluke-376fc", "purchase", "clamp-meters", 5, now),
		interactionAt(2, "fluke-87v", "view", "multimeters", 1, now),
	}}

	svc := newTestService(repo, &fakeBookingRepo{})
	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.Total != 3 {
		t.Errorf("total = %d, want 3", stats.Total)
	}
	if stats.ByKind["view"] != 2 || stats.ByKind["purchase"] != 1 {
		t.Errorf("unexpected kind counts %v", stats.ByKind)
	}
	if stats.EngagedUsers != 1 {
		t.Errorf("engaged users = %d, want 1 (only user 1 has >= 2)", stats.EngagedUsers)
	}
	if len(stats.TopProducts) == 0 || stats.TopProducts[0].ProductID != "fluke-376fc" {
		t.Errorf("expected fluke-376fc as heaviest product, got %v", stats.TopProducts)
	}
}
