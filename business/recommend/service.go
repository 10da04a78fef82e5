package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"instruCal/business/catalog"
	"instruCal/domain"
	"instruCal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type InteractionRepository interface {
	Save(ctx context.Context, interaction *domain.Interaction) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error)
	DistinctProductsByUser(ctx context.Context, userID uint) ([]string, error)
	FindNeighbors(ctx context.Context, userID uint, productIDs []string, minInteractions, limit int) ([]Neighbor, error)
	FindByUsers(ctx context.Context, userIDs []uint) ([]domain.Interaction, error)
	SumWeightByProduct(ctx context.Context, limit int) ([]domain.ProductWeight, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Interaction, error)
	Count(ctx context.Context) (int64, error)
	CountByKind(ctx context.Context) (map[string]int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	CountEngagedUsers(ctx context.Context, minInteractions int) (int64, error)
}

type BookingRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
}

// ---- Usecase / Service ----

type Service struct {
	interactionRepo InteractionRepository
	bookingRepo     BookingRepository
	cfg             Config
}

func NewService(interactionRepo InteractionRepository, bookingRepo BookingRepository, cfg Config) *Service {
	return &Service{
		interactionRepo: interactionRepo,
		bookingRepo:     bookingRepo,
		cfg:             cfg,
	}
}

// GetRecommendations returns up to limit ranked products for a user.
// It never fails: scorer errors degrade to the popular-products fallback,
// and with an empty interaction store the static catalog itself is served.
// The result is empty only when limit <= 0 or the catalog is empty.
func (s *Service) GetRecommendations(ctx context.Context, userID uint, limit int) []domain.Recommendation {
	timer := prometheus.NewTimer(RecommendLatency)
	defer timer.ObserveDuration()
	RecommendTotal.Inc()

	if limit <= 0 {
		return []domain.Recommendation{}
	}

	recs, err := s.personalized(ctx, userID, limit)
	if err != nil {
		logger.Warn("personalized recommendation failed, falling back",
			"user_id", userID, err)
		return s.fallback(ctx, limit)
	}
	if len(recs) == 0 {
		return s.fallback(ctx, limit)
	}

	return recs
}

// personalized runs the primary pipeline: profile build, then the three
// scorers fanned out concurrently, then the weighted merge. The content
// and category scorers are pure; only the collaborative scorer touches the
// store and it carries its own timeout, degrading to an empty contribution.
func (s *Service) personalized(ctx context.Context, userID uint, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	interactions, err := s.interactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	bookings, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	profile, excluded := buildProfile(s.cfg, time.Now(), interactions, bookings)

	var (
		contentScores  map[string]*candidate
		collabScores   map[string]*candidate
		categoryScores map[string]*candidate
		wg             sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		contentScores = scoreContent(s.cfg, profile, excluded)
	}()
	go func() {
		defer wg.Done()
		collabCtx, cancel := context.WithTimeout(ctx, s.cfg.ScorerTimeout)
		defer cancel()
		collabScores = scoreCollaborative(collabCtx, s.cfg, s.interactionRepo, userID, excluded)
	}()
	go func() {
		defer wg.Done()
		categoryScores = scoreCategoryAffinity(s.cfg, profile, excluded)
	}()
	wg.Wait()

	return combineScores(s.cfg, contentScores, collabScores, categoryScores, limit), nil
}

// fallback serves the global-popularity ranking, and if the store has
// nothing to offer, the first N catalog products. The featured branch does
// no data access so it cannot fail under a store outage.
func (s *Service) fallback(ctx context.Context, limit int) []domain.Recommendation {
	popular, err := s.popularProducts(ctx, limit)
	if err != nil {
		logger.Warn("popular products fallback failed", err)
	}
	if len(popular) > 0 {
		FallbackTotal.WithLabelValues("popular").Inc()
		return popular
	}

	FallbackTotal.WithLabelValues("featured").Inc()
	return featuredProducts(limit)
}

func (s *Service) popularProducts(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	rows, err := s.interactionRepo.SumWeightByProduct(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate popularity: %w", err)
	}

	recs := make([]domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, domain.Recommendation{
			ProductID: row.ProductID,
			Score:     row.Weight,
			Reasons:   []string{"Popular product"},
		})
	}

	return recs, nil
}

func featuredProducts(limit int) []domain.Recommendation {
	products := catalog.All()
	if len(products) > limit {
		products = products[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(products))
	for _, p := range products {
		recs = append(recs, domain.Recommendation{
			ProductID: p.ID,
			Score:     0,
			Reasons:   []string{"Featured product"},
		})
	}

	return recs
}

// RecordInteraction appends one engagement record. It is best-effort
// telemetry: unresolvable products and persistence failures are logged,
// never raised, so callers always observe success.
func (s *Service) RecordInteraction(ctx context.Context, userID uint, productID, kind string, metadata map[string]any) {
	p, ok := catalog.FindByID(productID)
	if !ok {
		CatalogSkipsTotal.Inc()
		logger.Warn("interaction product not in catalog, skipping",
			"user_id", userID, "product_id", productID)
		return
	}

	weight, ok := domain.InteractionWeights[kind]
	if !ok {
		logger.Warn("unknown interaction kind, skipping",
			"user_id", userID, "kind", kind)
		return
	}

	interaction := &domain.Interaction{
		UserID:    userID,
		ProductID: p.ID,
		Kind:      kind,
		Category:  p.Category,
		Weight:    weight,
		Metadata:  datatypes.JSONMap(metadata),
	}

	if err := s.interactionRepo.Save(ctx, interaction); err != nil {
		logger.Error("failed to record interaction",
			"user_id", userID, "product_id", p.ID, err)
		return
	}

	InteractionsRecordedTotal.WithLabelValues(kind).Inc()
}

// GetAllInteractions returns the most recent interactions, newest first,
// capped by the admin list limit.
func (s *Service) GetAllInteractions(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.interactionRepo.FindRecent(ctx, s.cfg.AdminListLimit)
}

// GetStats aggregates the reporting summary over the interaction store.
func (s *Service) GetStats(ctx context.Context) (domain.InteractionStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.InteractionStats{}, fmt.Errorf("context error: %w", err)
	}

	total, err := s.interactionRepo.Count(ctx)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("count interactions: %w", err)
	}

	byKind, err := s.interactionRepo.CountByKind(ctx)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("count by kind: %w", err)
	}

	byCategory, err := s.interactionRepo.CountByCategory(ctx)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("count by category: %w", err)
	}

	topProducts, err := s.interactionRepo.SumWeightByProduct(ctx, 10)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("top products: %w", err)
	}

	engagedUsers, err := s.interactionRepo.CountEngagedUsers(ctx, s.cfg.NeighborMinInteractions)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("count engaged users: %w", err)
	}

	recent, err := s.interactionRepo.FindRecent(ctx, 10)
	if err != nil {
		return domain.InteractionStats{}, fmt.Errorf("recent interactions: %w", err)
	}

	return domain.InteractionStats{
		Total:        total,
		ByKind:       byKind,
		ByCategory:   byCategory,
		TopProducts:  topProducts,
		EngagedUsers: engagedUsers,
		Recent:       recent,
		GeneratedAt:  time.Now(),
	}, nil
}
