package postgres

import (
	"context"
	"fmt"
	"instruCal/business/recommend"
	"instruCal/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Save(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

func (r *InteractionRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) DistinctProductsByUser(ctx context.Context, userID uint) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var productIDs []string
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Distinct("product_id").
		Where("user_id = ?", userID).
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find distinct products: %w", err)
	}

	return productIDs, nil
}

// FindNeighbors returns other users who interacted with any of the given
// products, ordered by interaction count descending.
func (r *InteractionRepository) FindNeighbors(
	ctx context.Context,
	userID uint,
	productIDs []string,
	minInteractions int,
	limit int,
) ([]recommend.Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(productIDs) == 0 {
		return []recommend.Neighbor{}, nil
	}

	var neighbors []recommend.Neighbor
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Select("user_id, COUNT(DISTINCT product_id) AS common_products, COUNT(*) AS interaction_count").
		Where("product_id IN ? AND user_id <> ?", productIDs, userID).
		Group("user_id").
		Having("COUNT(*) >= ?", minInteractions).
		Order("interaction_count DESC").
		Limit(limit).
		Scan(&neighbors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find neighbors: %w", err)
	}

	return neighbors, nil
}

func (r *InteractionRepository) FindByUsers(ctx context.Context, userIDs []uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(userIDs) == 0 {
		return []domain.Interaction{}, nil
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions by users: %w", err)
	}

	return interactions, nil
}

// SumWeightByProduct aggregates total interaction weight per product,
// heaviest first. Backs the popular-products fallback and stats.
func (r *InteractionRepository) SumWeightByProduct(ctx context.Context, limit int) ([]domain.ProductWeight, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.ProductWeight
	q := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Select("product_id, SUM(weight) AS weight").
		Group("product_id").
		Order("weight DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate product weights: %w", err)
	}

	return rows, nil
}

func (r *InteractionRepository) FindRecent(ctx context.Context, limit int) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent interactions: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Interaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}

	return count, nil
}

type keyCount struct {
	Key   string
	Count int64
}

func (r *InteractionRepository) CountByKind(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "kind")
}

func (r *InteractionRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "category")
}

func (r *InteractionRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []keyCount
	err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by %s: %w", column, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}

	return out, nil
}

// CountEngagedUsers counts users with at least minInteractions interactions.
func (r *InteractionRepository) CountEngagedUsers(ctx context.Context, minInteractions int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	sub := r.DB.Model(&domain.Interaction{}).
		Select("user_id").
		Group("user_id").
		Having("COUNT(*) >= ?", minInteractions)

	var count int64
	err := r.DB.WithContext(ctx).
		Table("(?) AS engaged", sub).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count engaged users: %w", err)
	}

	return count, nil
}
