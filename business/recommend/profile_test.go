package recommend

import (
	"testing"
	"time"

	"instruCal/domain"
)

func interactionAt(userID uint, productID, kind, category string, weight float64, at time.Time) domain.Interaction {
	return domain.Interaction{
		UserID:    userID,
		ProductID: productID,
		Kind:      kind,
		Category:  category,
		Weight:    weight,
		CreatedAt: at,
	}
}

func TestBuildProfileDecayMonotonicity(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	fresh, _ := buildProfile(cfg, now, []domain.Interaction{
		interactionAt(1, "fluke-87v", "view", "multimeters", 1, now.Add(-24*time.Hour)),
	}, nil)

	stale, _ := buildProfile(cfg, now, []domain.Interaction{
		interactionAt(1, "fluke-87v", "view", "multimeters", 1, now.Add(-90*24*time.Hour)),
	}, nil)

	if fresh.ProductScores["fluke-87v"] <= stale.ProductScores["fluke-87v"] {
		t.Errorf("older interaction must contribute strictly less: fresh=%f stale=%f",
			fresh.ProductScores["fluke-87v"], stale.ProductScores["fluke-87v"])
	}
	if fresh.CategoryScores["multimeters"] <= stale.CategoryScores["multimeters"] {
		t.Error("decay must apply to category scores too")
	}
}

func TestBuildProfileBookingWeights(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	completed, _ := buildProfile(cfg, now, nil, []domain.Booking{
		{UserID: 1, ProductRef: "fluke-719pro", Status: domain.BookingCompleted},
	})
	pending, _ := buildProfile(cfg, now, nil, []domain.Booking{
		{UserID: 1, ProductRef: "fluke-719pro", Status: domain.BookingPending},
	})

	if got := completed.ProductScores["fluke-719pro"]; got != 10 {
		t.Errorf("completed booking weight = %f, want 10", got)
	}
	if got := pending.ProductScores["fluke-719pro"]; got != 5 {
		t.Errorf("pending booking weight = %f, want 5", got)
	}
}

func TestBuildProfileCancelledBookingGivesNoSignalButExcludes(t *testing.T) {
	cfg := DefaultConfig()

	profile, excluded := buildProfile(cfg, time.Now(), nil, []domain.Booking{
		{UserID: 1, ProductRef: "fluke-719pro", Status: domain.BookingCancelled},
		{UserID: 1, ProductRef: "additel-681", Status: domain.BookingRescheduled},
	})

	if len(profile.ProductScores) != 0 {
		t.Errorf("cancelled/rescheduled bookings must not score, got %v", profile.ProductScores)
	}
	if len(profile.RecentProducts) != 0 {
		t.Errorf("cancelled bookings must not land in recent products, got %v", profile.RecentProducts)
	}
	if _, ok := excluded["fluke-719pro"]; !ok {
		t.Error("cancelled booking product must still be excluded")
	}
	if _, ok := excluded["additel-681"]; !ok {
		t.Error("rescheduled booking product must still be excluded")
	}
}

func TestBuildProfileResolvesBookingByNameOrID(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	byName, _ := buildProfile(cfg, now, nil, []domain.Booking{
		{UserID: 1, ProductRef: "Fluke 719Pro Electric Pressure Calibrator", Status: domain.BookingConfirmed},
	})
	byID, _ := buildProfile(cfg, now, nil, []domain.Booking{
		{UserID: 1, ProductRef: "fluke-719pro", Status: domain.BookingConfirmed},
	})

	if byName.ProductScores["fluke-719pro"] != byID.ProductScores["fluke-719pro"] {
		t.Error("display name and catalog id must resolve to the same product")
	}
}

func TestBuildProfileSkipsUnresolvableRecords(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	profile, excluded := buildProfile(cfg, now,
		[]domain.Interaction{
			interactionAt(1, "discontinued-model", "view", "multimeters", 1, now),
		},
		[]domain.Booking{
			{UserID: 1, ProductRef: "Some Old Service Name", Status: domain.BookingCompleted},
		},
	)

	if len(profile.ProductScores) != 0 || len(profile.CategoryScores) != 0 {
		t.Errorf("unresolvable records must not score, got %v / %v",
			profile.ProductScores, profile.CategoryScores)
	}
	// raw refs still land in the exclusion set
	if _, ok := excluded["discontinued-model"]; !ok {
		t.Error("unresolvable interaction product should still be excluded")
	}
}

func TestBuildProfileCollectsPriceSamples(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	profile, _ := buildProfile(cfg, now,
		[]domain.Interaction{
			interactionAt(1, "fluke-87v", "view", "multimeters", 1, now),
			interactionAt(1, "onsite-cal", "inquiry", "calibration-services", 2, now),
		}, nil)

	// onsite-cal has no price and must not contribute a sample
	if len(profile.PriceSamples) != 1 {
		t.Fatalf("expected 1 price sample, got %d", len(profile.PriceSamples))
	}
	if profile.PriceSamples[0] != 449 {
		t.Errorf("unexpected price sample %f", profile.PriceSamples[0])
	}
}
