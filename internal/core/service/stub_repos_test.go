package service

import (
	"context"
	"strconv"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = "user-" + strconv.Itoa(r.nextID)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByRestaurant(_ context.Context, restaurantID string) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range r.users {
		if u.RestaurantID == restaurantID {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			u.PasswordHash = user.PasswordHash
			u.FirstName = user.FirstName
			u.LastName = user.LastName
			u.Role = user.Role
			u.RestaurantID = user.RestaurantID
			u.IsActive = user.IsActive
			u.UpdatedAt = user.UpdatedAt
			return cloneUser(u), nil
		}
	}
	return r.Create(context.Background(), user)
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, restaurantID string, role domain.Role) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok || u.RestaurantID != restaurantID {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id, restaurantID string) error {
	u, ok := r.users[id]
	if !ok || u.RestaurantID != restaurantID {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubRestaurantRepo is an in-memory ports.RestaurantRepository.
type stubRestaurantRepo struct {
	restaurants map[string]*domain.Restaurant
}

func newStubRestaurantRepo() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: make(map[string]*domain.Restaurant)}
}

func (r *stubRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) (*domain.Restaurant, error) {
	if restaurant.ID == "" {
		restaurant.ID = "rest-" + strconv.Itoa(len(r.restaurants)+1)
	}
	clone := *restaurant
	r.restaurants[restaurant.ID] = &clone
	return restaurant, nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id string) (*domain.Restaurant, error) {
	if rest, ok := r.restaurants[id]; ok {
		clone := *rest
		return &clone, nil
	}
	return nil, domain.ErrRestaurantNotFound
}

func (r *stubRestaurantRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0)
	for _, rest := range r.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, *rest)
		}
	}
	return out, nil
}
