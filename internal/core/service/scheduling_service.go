package service

import (
	"context"
	"errors"
	"time"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// ShiftService implements shift listing and creation.
type ShiftService struct {
	shifts ports.ShiftRepository
	users  ports.UserRepository
}

func NewShiftService(shifts ports.ShiftRepository, users ports.UserRepository) *ShiftService {
	return &ShiftService{shifts: shifts, users: users}
}

func (s *ShiftService) ListByUser(ctx context.Context, userID string) ([]*domain.Shift, error) {
	return s.shifts.FindByUser(ctx, userID)
}

func (s *ShiftService) Create(ctx context.Context, in ports.CreateShiftInput) (*domain.Shift, error) {
	shift := &domain.Shift{
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Notes:        in.Notes,
		UserID:       in.UserID,
		RestaurantID: in.RestaurantID,
		CreatedAt:    time.Now().UTC(),
	}

	// Embed the assignee's name so listings don't need a second lookup.
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	} else {
		shift.User = &domain.ShiftUser{ID: user.ID, FirstName: user.FirstName, LastName: user.LastName}
	}

	return s.shifts.Create(ctx, shift)
}

// ReservationService implements reservation listing and creation.
type ReservationService struct {
	reservations ports.ReservationRepository
}

func NewReservationService(reservations ports.ReservationRepository) *ReservationService {
	return &ReservationService{reservations: reservations}
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservations.FindByUser(ctx, userID)
}

func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	return s.reservations.Create(ctx, &domain.Reservation{
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		PartySize:       in.PartySize,
		ReservationTime: in.ReservationTime,
		SpecialRequests: in.SpecialRequests,
		UserID:          in.UserID,
		RestaurantID:    in.RestaurantID,
		CreatedAt:       time.Now().UTC(),
	})
}
