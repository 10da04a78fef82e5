package recommend

import (
	"math"
	"time"

	"instruCal/business/catalog"
	"instruCal/domain"
	"instruCal/pkg/logger"
)

// Profile is the ephemeral per-user preference vector. Built fresh on every
// recommendation request; never persisted.
type Profile struct {
	CategoryScores map[string]float64
	ProductScores  map[string]float64
	PriceSamples   []float64
	RecentProducts []string
}

func newProfile() *Profile {
	return &Profile{
		CategoryScores: make(map[string]float64),
		ProductScores:  make(map[string]float64),
	}
}

// bookingSignalWeight returns the flat profile weight for a booking status,
// or 0 when the status carries no signal (cancelled/rescheduled).
func bookingSignalWeight(cfg Config, status string) float64 {
	switch status {
	case domain.BookingCompleted:
		return cfg.BookingCompletedWeight
	case domain.BookingConfirmed, domain.BookingPending:
		return cfg.BookingActiveWeight
	default:
		return 0
	}
}

// buildProfile aggregates decayed interaction history and booking history
// into a preference vector, and collects the exclusion set: every product
// the user already interacted with or booked (any status) is never
// recommended again.
//
// Records whose product cannot be resolved against the catalog are skipped
// silently; only skip counts are logged.
func buildProfile(
	cfg Config,
	now time.Time,
	interactions []domain.Interaction,
	bookings []domain.Booking,
) (*Profile, map[string]struct{}) {

	profile := newProfile()
	excluded := make(map[string]struct{})
	skippedInteractions := 0
	skippedBookings := 0

	for _, in := range interactions {
		excluded[in.ProductID] = struct{}{}

		p, ok := catalog.FindByID(in.ProductID)
		if !ok {
			skippedInteractions++
			continue
		}

		ageInDays := now.Sub(in.CreatedAt).Hours() / 24
		decay := math.Exp(-ageInDays / cfg.DecayDays)
		score := in.Weight * decay

		profile.CategoryScores[p.Category] += score
		profile.ProductScores[p.ID] += score
		if p.Price > 0 {
			profile.PriceSamples = append(profile.PriceSamples, p.Price)
		}
	}

	for _, b := range bookings {
		// booked products are excluded regardless of status, so a
		// cancelled booking still never gets re-recommended
		if p, ok := catalog.FindByNameOrID(b.ProductRef); ok {
			excluded[p.ID] = struct{}{}
		} else {
			excluded[b.ProductRef] = struct{}{}
		}

		weight := bookingSignalWeight(cfg, b.Status)
		if weight == 0 {
			continue
		}

		p, ok := catalog.FindByNameOrID(b.ProductRef)
		if !ok {
			skippedBookings++
			continue
		}

		profile.RecentProducts = append(profile.RecentProducts, p.ID)
		profile.CategoryScores[p.Category] += weight
		profile.ProductScores[p.ID] += weight
		if p.Price > 0 {
			profile.PriceSamples = append(profile.PriceSamples, p.Price)
		}
	}

	if skippedInteractions > 0 || skippedBookings > 0 {
		CatalogSkipsTotal.Add(float64(skippedInteractions + skippedBookings))
		logger.Debug("profile built with unresolvable records",
			"skipped_interactions", skippedInteractions,
			"skipped_bookings", skippedBookings,
		)
	}

	return profile, excluded
}
