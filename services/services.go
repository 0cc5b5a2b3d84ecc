package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = store.ErrNotFound
)

const DefaultListLimit int64 = 1000

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// clock stamps records. Times are UTC and cut to millisecond precision, the
// resolution MongoDB stores, so a returned record equals a later read.
type clock struct {
	now   func() time.Time
	newID func() string
}

func defaultClock() clock {
	return clock{now: time.Now, newID: uuid.NewString}
}

func (c clock) stamp() time.Time {
	return c.now().UTC().Truncate(time.Millisecond)
}

func normalizeLimit(limit int64) int64 {
	if limit < 1 {
		return DefaultListLimit
	}
	return limit
}

// capListing cuts records fetched with limit+1 down to limit, flagging and
// logging the overflow.
func capListing[T any](records []T, limit int64, what string) models.Listing[T] {
	listing := models.Listing[T]{Items: records, Limit: limit}
	if int64(len(records)) > limit {
		listing.Items = records[:limit]
		listing.Truncated = true
		slog.Warn("Listing truncated at limit", "resource", what, "limit", limit)
	}
	return listing
}
