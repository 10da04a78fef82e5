package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"instruCal/business/catalog"
	"instruCal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id uint) (domain.Booking, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// InteractionRecorder is the recommendation engine's write path. Booking
// creation feeds it best-effort; recording never fails the booking.
type InteractionRecorder interface {
	RecordInteraction(ctx context.Context, userID uint, productID, kind string, metadata map[string]any)
}

type BookingService struct {
	bookingRepo BookingRepository
	recorder    InteractionRecorder
}

func NewBookingService(bookingRepo BookingRepository, recorder InteractionRecorder) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		recorder:    recorder,
	}
}

var validStatuses = map[string]bool{
	domain.BookingPending:     true,
	domain.BookingConfirmed:   true,
	domain.BookingCompleted:   true,
	domain.BookingCancelled:   true,
	domain.BookingRescheduled: true,
}

func (s *BookingService) CreateBooking(ctx context.Context, booking *domain.Booking) (domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return domain.Booking{}, fmt.Errorf("context error: %w", err)
	}

	product, ok := catalog.FindByNameOrID(booking.ProductRef)
	if !ok {
		return domain.Booking{}, errors.New("product not found")
	}

	booking.ProductRef = product.ID
	booking.Status = domain.BookingPending
	if booking.ServiceAt.IsZero() {
		booking.ServiceAt = time.Now().AddDate(0, 0, 7)
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return domain.Booking{}, err
	}

	if s.recorder != nil {
		s.recorder.RecordInteraction(ctx, booking.UserID, product.ID, domain.InteractionBooking, map[string]any{
			"booking_id": booking.ID,
		})
	}

	return *booking, nil
}

func (s *BookingService) GetBookingsByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}

func (s *BookingService) GetBookingByID(ctx context.Context, id uint) (domain.Booking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uint, status string) error {
	if !validStatuses[status] {
		return errors.New("invalid booking status")
	}

	return s.bookingRepo.UpdateStatus(ctx, id, status)
}
