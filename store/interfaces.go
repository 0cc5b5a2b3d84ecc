package store

import (
	"context"
	"errors"
	"time"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// MenuStore persists menu items. List methods return at most limit records.
type MenuStore interface {
	Insert(ctx context.Context, item models.MenuItem) error
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	// FindAvailable lists available items, narrowed to one category unless
	// category is empty.
	FindAvailable(ctx context.Context, category models.Category, limit int64) ([]models.MenuItem, error)
	FindAll(ctx context.Context, limit int64) ([]models.MenuItem, error)
	// Update overwrites the mutable fields of the stored item with those of
	// item and returns the stored result.
	Update(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error)
	DeleteAll(ctx context.Context) (int64, error)
	SetImageByName(ctx context.Context, name, imageURL string) (bool, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	// FindAll lists orders newest first.
	FindAll(ctx context.Context, limit int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) (*models.Order, error)
}

type StatusCheckStore interface {
	Insert(ctx context.Context, check models.StatusCheck) error
	FindAll(ctx context.Context, limit int64) ([]models.StatusCheck, error)
}
