package services

import (
	"context"
	"fmt"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
)

type CatalogService struct {
	store store.MenuStore
	limit int64
	clock clock
}

func NewCatalogService(menuStore store.MenuStore, limit int64) *CatalogService {
	return &CatalogService{
		store: menuStore,
		limit: normalizeLimit(limit),
		clock: defaultClock(),
	}
}

func (s *CatalogService) Create(ctx context.Context, in models.MenuItemCreate) (*models.MenuItem, error) {
	if err := helper.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item := models.MenuItem{
		ID:        s.clock.newID(),
		CreatedAt: s.clock.stamp(),
	}
	in.Apply(&item)

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) ListAvailable(ctx context.Context) (models.Listing[models.MenuItem], error) {
	return s.listAvailable(ctx, "")
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) (models.Listing[models.MenuItem], error) {
	c := models.Category(category)
	if !c.Valid() {
		return models.Listing[models.MenuItem]{}, validationError("category: %q is not a valid category", category)
	}
	return s.listAvailable(ctx, c)
}

func (s *CatalogService) listAvailable(ctx context.Context, category models.Category) (models.Listing[models.MenuItem], error) {
	items, err := s.store.FindAvailable(ctx, category, s.limit+1)
	if err != nil {
		return models.Listing[models.MenuItem]{}, fmt.Errorf("list menu items: %w", err)
	}
	return capListing(items, s.limit, "menu_items"), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item %s: %w", id, err)
	}
	return item, nil
}

// Update overwrites every mutable field. The id and created_at of the stored
// item never change.
func (s *CatalogService) Update(ctx context.Context, id string, in models.MenuItemCreate) (*models.MenuItem, error) {
	if err := helper.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var patch models.MenuItem
	in.Apply(&patch)

	item, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update menu item %s: %w", id, err)
	}
	return item, nil
}

// ListAll includes unavailable items. Used by maintenance commands only.
func (s *CatalogService) ListAll(ctx context.Context) (models.Listing[models.MenuItem], error) {
	items, err := s.store.FindAll(ctx, s.limit+1)
	if err != nil {
		return models.Listing[models.MenuItem]{}, fmt.Errorf("list all menu items: %w", err)
	}
	return capListing(items, s.limit, "menu_items"), nil
}

func (s *CatalogService) Clear(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear menu: %w", err)
	}
	return n, nil
}

// SetImageByName reports whether a stored item actually changed.
func (s *CatalogService) SetImageByName(ctx context.Context, name, imageURL string) (bool, error) {
	if name == "" || imageURL == "" {
		return false, validationError("name and image url are required")
	}
	return s.store.SetImageByName(ctx, name, imageURL)
}
