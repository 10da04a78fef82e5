package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"instruCal/domain"
	"instruCal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (domain.Booking, error)
	GetBookingsByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	GetBookingByID(ctx context.Context, id uint) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint, status string) error
}

type BookingHandler struct {
	bookingService BookingService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewBookingHandler(bookingService BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type BookingCreateRequest struct {
	// Product accepts either a catalog id or a display name.
	Product   string    `json:"product" validate:"required"`
	ServiceAt time.Time `json:"service_at,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req BookingCreateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate booking request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	booking, err := h.bookingService.CreateBooking(ctx, &domain.Booking{
		UserID:     userID,
		ProductRef: req.Product,
		ServiceAt:  req.ServiceAt,
		Notes:      req.Notes,
	})
	if err != nil {
		logger.Error("Failed to create booking", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings lists the authenticated user's bookings, newest first
func (h *BookingHandler) GetMyBookings(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bookings, err := h.bookingService.GetBookingsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get bookings", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Bookings retrieved successfully",
		"bookings": bookings,
	})
}

func (h *BookingHandler) GetBookingByID(c echo.Context) error {
	id := c.Param("id")

	var bookingID uint
	if _, err := fmt.Sscan(id, &bookingID); err != nil {
		logger.Error("Invalid booking ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid booking ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	booking, err := h.bookingService.GetBookingByID(ctx, bookingID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	// non-admins may only read their own bookings
	userID, _ := c.Get("user_id").(uint)
	role, _ := c.Get("role").(string)
	if booking.UserID != userID && role != "admin" {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "forbidden"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Booking retrieved successfully",
		"booking": booking,
	})
}

// UpdateBookingStatus is an admin operation
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	id := c.Param("id")

	var bookingID uint
	if _, err := fmt.Sscan(id, &bookingID); err != nil {
		logger.Error("Invalid booking ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid booking ID"})
	}

	var req BookingStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate booking status request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.bookingService.UpdateBookingStatus(ctx, bookingID, req.Status); err != nil {
		if strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update booking status", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Booking status updated successfully",
	})
}
