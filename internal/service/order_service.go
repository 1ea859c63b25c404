package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"Platform/internal/cache"
	dom "Platform/internal/domain"
	"Platform/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrMissingDetails = errors.New("order details are required")
)

type OrderService struct {
	repo  repo.OrderRepo
	cache *cache.OrderCache
	sf    singleflight.Group
}

// NewOrderService creates an OrderService. If c is nil, caching is disabled.
func NewOrderService(r repo.OrderRepo, c *cache.OrderCache) *OrderService {
	return &OrderService{repo: r, cache: c}
}

func (s *OrderService) Create(ctx context.Context, userID int64, details string) (dom.Order, error) {
	details = strings.TrimSpace(details)
	if details == "" {
		return dom.Order{}, ErrMissingDetails
	}
	o, err := s.repo.Create(ctx, userID, details)
	if err != nil {
		return dom.Order{}, err
	}
	s.invalidateCache(ctx, userID)
	return o, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]dom.Order, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Order), nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// GetByID returns the order regardless of owner; the handler applies the
// ownership check after the fetch.
func (s *OrderService) GetByID(ctx context.Context, id int64) (dom.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Order{}, ErrNotFound
		}
		return dom.Order{}, err
	}
	return o, nil
}

func (s *OrderService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
