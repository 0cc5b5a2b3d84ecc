package services

import (
	"context"
	"fmt"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
)

type StatusService struct {
	store store.StatusCheckStore
	limit int64
	clock clock
}

func NewStatusService(statusStore store.StatusCheckStore, limit int64) *StatusService {
	return &StatusService{
		store: statusStore,
		limit: normalizeLimit(limit),
		clock: defaultClock(),
	}
}

func (s *StatusService) Create(ctx context.Context, in models.StatusCheckCreate) (*models.StatusCheck, error) {
	if err := helper.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	check := models.StatusCheck{
		ID:         s.clock.newID(),
		ClientName: *in.ClientName,
		Timestamp:  s.clock.stamp(),
	}
	if err := s.store.Insert(ctx, check); err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	return &check, nil
}

func (s *StatusService) List(ctx context.Context) (models.Listing[models.StatusCheck], error) {
	checks, err := s.store.FindAll(ctx, s.limit+1)
	if err != nil {
		return models.Listing[models.StatusCheck]{}, fmt.Errorf("list status checks: %w", err)
	}
	return capListing(checks, s.limit, "status_checks"), nil
}
