package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

const (
	menuCacheKey = "menu:items"
	menuCacheTTL = 5 * time.Minute
)

// ErrInvalidPrice is returned when a submitted price is not a non-negative
// number.
var ErrInvalidPrice = errors.New("invalid price")

// MenuService implements menu CRUD with a Redis read cache in front of the
// repository. Writes invalidate the cache.
type MenuService struct {
	repo  ports.MenuRepository
	cache ports.Cache
	log   zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, cache ports.Cache, log zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, log: log}
}

func (s *MenuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	if cached, err := s.cache.Get(ctx, menuCacheKey); err == nil {
		var items []*domain.MenuItem
		if jsonErr := json.Unmarshal([]byte(cached), &items); jsonErr == nil {
			return items, nil
		}
		// Undecodable entry: fall through to the repository and rewrite it.
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.log.Warn().Err(err).Msg("menu cache read failed")
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, menuCacheKey, string(payload), menuCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("menu cache write failed")
		}
	}

	return items, nil
}

func (s *MenuService) Create(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		IsAvailable: available,
		ImageURL:    in.ImageURL,
		Allergens:   in.Allergens,
		Nutrition:   in.Nutrition,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in ports.MenuItemInput) (*domain.MenuItem, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = price
	existing.Category = in.Category
	if in.IsAvailable != nil {
		existing.IsAvailable = *in.IsAvailable
	}
	existing.ImageURL = in.ImageURL
	existing.Allergens = in.Allergens
	existing.Nutrition = in.Nutrition
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}

// parsePrice accepts the price as submitted (decimal string) and returns it as
// a float.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}
