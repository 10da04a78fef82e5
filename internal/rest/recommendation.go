package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"instruCal/domain"
	"instruCal/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
		timeout     time.Duration
	}

	RecommendationService interface {
		GetRecommendations(ctx context.Context, userID uint, limit int) []domain.Recommendation
		RecordInteraction(ctx context.Context, userID uint, productID, kind string, metadata map[string]any)
		GetAllInteractions(ctx context.Context) ([]domain.Interaction, error)
		GetStats(ctx context.Context) (domain.InteractionStats, error)
	}

	InteractionRequest struct {
		ProductID string         `json:"product_id" validate:"required"`
		Kind      string         `json:"kind" validate:"required,oneof=view inquiry booking purchase"`
		Metadata  map[string]any `json:"metadata"`
	}
)

const defaultRecommendLimit = 5

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
		timeout:     10 * time.Second,
	}
}

// GET /api/v1/recommendations?n=5
//
// Always answers 200 with a list; scorer failures inside the engine
// degrade to fallbacks, never to an error response.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := defaultRecommendLimit
	if raw := c.QueryParam("n"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs := h.recoService.GetRecommendations(ctx, userID, limit)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/interactions
func (h *RecommendationHandler) RecordInteraction(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	// best-effort write path: the engine logs failures, callers always succeed
	h.recoService.RecordInteraction(ctx, userID, req.ProductID, req.Kind, req.Metadata)

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("interaction recorded"))
}

// GET /api/v1/admin/interactions
func (h *RecommendationHandler) GetAllInteractions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	interactions, err := h.recoService.GetAllInteractions(ctx)
	if err != nil {
		logger.Error("Failed to list interactions", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "successfully get all interactions",
		"interactions": interactions,
	})
}

// GET /api/v1/admin/interactions/stats
func (h *RecommendationHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.recoService.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to aggregate interaction stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get interaction stats",
		"stats":   stats,
	})
}
