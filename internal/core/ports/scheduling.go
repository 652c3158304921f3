package ports

import (
	"context"
	"time"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// ShiftRepository defines persistence operations for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	// FindByUser lists a user's shifts, latest start first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Shift, error)
}

// CreateShiftInput carries the fields accepted by POST /shifts.
type CreateShiftInput struct {
	StartTime    time.Time
	EndTime      time.Time
	UserID       string
	Notes        string
	RestaurantID string
}

// ShiftService implements shift listing and creation.
type ShiftService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Shift, error)
	Create(ctx context.Context, in CreateShiftInput) (*domain.Shift, error)
}

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	// FindByUser lists a user's reservations, earliest slot first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

// CreateReservationInput carries the fields accepted by POST /reservations.
type CreateReservationInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	PartySize       int
	ReservationTime time.Time
	SpecialRequests string
	UserID          string
	RestaurantID    string
}

// ReservationService implements reservation listing and creation.
type ReservationService interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
}
