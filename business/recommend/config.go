package recommend

import "time"

// Config carries the engine constants. The decay constant and combiner
// weights are product-tuned values; changing them changes observable
// ranking, so they stay fixed.
type Config struct {
	// profile building
	DecayDays              float64
	BookingCompletedWeight float64
	BookingActiveWeight    float64

	// content scorer
	CategoryMatchFactor float64
	ComplementBonus     float64
	PriceScoreBase      float64
	PriceScoreFloor     float64

	// collaborative scorer
	NeighborMinInteractions int
	NeighborLimit           int
	CollaborativeTopN       int

	// category affinity scorer
	TopCategories         int
	CategoryAffinityBonus float64

	// combiner
	WContent       float64
	WCollaborative float64
	WCategory      float64
	MaxReasons     int

	// serving
	DefaultLimit   int
	AdminListLimit int
	ScorerTimeout  time.Duration
}

const (
	defaultDecayDays              = 30
	defaultBookingCompletedWeight = 10
	defaultBookingActiveWeight    = 5

	defaultCategoryMatchFactor = 2
	defaultComplementBonus     = 3
	defaultPriceScoreBase      = 5
	defaultPriceScoreFloor     = 2

	defaultNeighborMinInteractions = 2
	defaultNeighborLimit           = 20
	defaultCollaborativeTopN       = 10

	defaultTopCategories         = 3
	defaultCategoryAffinityBonus = 2

	defaultWContent       = 0.4
	defaultWCollaborative = 0.35
	defaultWCategory      = 0.25
	defaultMaxReasons     = 3

	defaultLimit          = 5
	defaultAdminListLimit = 500
	defaultScorerTimeout  = 3 * time.Second
)

func DefaultConfig() Config {
	return Config{
		DecayDays:              defaultDecayDays,
		BookingCompletedWeight: defaultBookingCompletedWeight,
		BookingActiveWeight:    defaultBookingActiveWeight,

		CategoryMatchFactor: defaultCategoryMatchFactor,
		ComplementBonus:     defaultComplementBonus,
		PriceScoreBase:      defaultPriceScoreBase,
		PriceScoreFloor:     defaultPriceScoreFloor,

		NeighborMinInteractions: defaultNeighborMinInteractions,
		NeighborLimit:           defaultNeighborLimit,
		CollaborativeTopN:       defaultCollaborativeTopN,

		TopCategories:         defaultTopCategories,
		CategoryAffinityBonus: defaultCategoryAffinityBonus,

		WContent:       defaultWContent,
		WCollaborative: defaultWCollaborative,
		WCategory:      defaultWCategory,
		MaxReasons:     defaultMaxReasons,

		DefaultLimit:   defaultLimit,
		AdminListLimit: defaultAdminListLimit,
		ScorerTimeout:  defaultScorerTimeout,
	}
}
