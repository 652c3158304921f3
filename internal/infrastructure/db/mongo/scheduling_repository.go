package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

const (
	collectionShifts       = "shifts"
	collectionReservations = "reservations"
)

type ShiftRepository struct {
	col *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) *ShiftRepository {
	return &ShiftRepository{col: db.Collection(collectionShifts)}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if shift.ID == "" {
		shift.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// FindByUser lists a user's shifts, latest start first.
func (r *ShiftRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shifts := make([]*domain.Shift, 0)
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if reservation.ID == "" {
		reservation.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// FindByUser lists a user's reservations, earliest slot first.
func (r *ReservationRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "reservation_time", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reservations := make([]*domain.Reservation, 0)
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
