// Package storetest provides in-memory stores for tests. They follow the
// MongoDB stores' semantics: insertion order for unsorted lists, newest first
// for orders, ErrNotFound for unknown ids.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
)

type MenuStore struct {
	mu    sync.Mutex
	items []models.MenuItem
	// Err, when set, is returned by every call.
	Err error
}

var _ store.MenuStore = (*MenuStore)(nil)

func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

func (s *MenuStore) Insert(ctx context.Context, item models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.items {
		if existing.ID == item.ID {
			return store.ErrDuplicate
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *MenuStore) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *MenuStore) FindAvailable(ctx context.Context, category models.Category, limit int64) ([]models.MenuItem, error) {
	return s.filter(limit, func(item models.MenuItem) bool {
		return item.Available && (category == "" || item.Category == category)
	})
}

func (s *MenuStore) FindAll(ctx context.Context, limit int64) ([]models.MenuItem, error) {
	return s.filter(limit, func(models.MenuItem) bool { return true })
}

func (s *MenuStore) filter(limit int64, keep func(models.MenuItem) bool) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.MenuItem, 0)
	for _, item := range s.items {
		if int64(len(out)) >= limit {
			break
		}
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MenuStore) Update(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		stored := &s.items[i]
		stored.Name = item.Name
		stored.NameAr = item.NameAr
		stored.Description = item.Description
		stored.DescriptionAr = item.DescriptionAr
		stored.Price = item.Price
		stored.Category = item.Category
		stored.ImageURL = item.ImageURL
		stored.Available = item.Available
		updated := *stored
		return &updated, nil
	}
	return nil, store.ErrNotFound
}

func (s *MenuStore) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	n := int64(len(s.items))
	s.items = nil
	return n, nil
}

func (s *MenuStore) SetImageByName(ctx context.Context, name, imageURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for i := range s.items {
		if s.items[i].Name != name {
			continue
		}
		if s.items[i].ImageURL != nil && *s.items[i].ImageURL == imageURL {
			return false, nil
		}
		url := imageURL
		s.items[i].ImageURL = &url
		return true, nil
	}
	return false, nil
}

type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	Err    error
}

var _ store.OrderStore = (*OrderStore)(nil)

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Insert(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.orders {
		if existing.ID == order.ID {
			return store.ErrDuplicate
		}
	}
	s.orders = append(s.orders, order)
	return nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, order := range s.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *OrderStore) FindAll(ctx context.Context, limit int64) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	// Reverse insertion order first so equal timestamps list newest insert
	// first, as the _id tiebreak does in MongoDB.
	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = updatedAt
			updated := s.orders[i]
			return &updated, nil
		}
	}
	return nil, store.ErrNotFound
}

type StatusCheckStore struct {
	mu     sync.Mutex
	checks []models.StatusCheck
	Err    error
}

var _ store.StatusCheckStore = (*StatusCheckStore)(nil)

func NewStatusCheckStore() *StatusCheckStore {
	return &StatusCheckStore{}
}

func (s *StatusCheckStore) Insert(ctx context.Context, check models.StatusCheck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.checks = append(s.checks, check)
	return nil
}

func (s *StatusCheckStore) FindAll(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.StatusCheck, 0, len(s.checks))
	for _, check := range s.checks {
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, check)
	}
	return out, nil
}
