package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/helper"
	"go.mongodb.org/mongo-driver/mongo"
)

// decodeAll drains cur into typed records. Documents that fail to decode or
// violate the schema are logged and skipped.
func decodeAll[T any](ctx context.Context, cur *mongo.Cursor, collection string) ([]T, error) {
	defer cur.Close(ctx)

	records := make([]T, 0)
	for cur.Next(ctx) {
		var rec T
		if err := cur.Decode(&rec); err != nil {
			slog.Warn("Skipping undecodable document", "collection", collection, "error", err)
			continue
		}
		if err := helper.ValidateStruct(rec); err != nil {
			slog.Warn("Skipping malformed document", "collection", collection, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("read %s cursor: %w", collection, err)
	}
	return records, nil
}

// decodeOne decodes a single result, mapping a missing document to
// ErrNotFound and a malformed one to an error.
func decodeOne[T any](res *mongo.SingleResult, collection string) (*T, error) {
	var rec T
	if err := res.Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("decode %s document: %w", collection, err)
	}
	if err := helper.ValidateStruct(rec); err != nil {
		return nil, fmt.Errorf("malformed %s document: %w", collection, err)
	}
	return &rec, nil
}

func insertErr(err error, collection string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert into %s: %w", collection, ErrDuplicate)
	}
	return fmt.Errorf("insert into %s: %w", collection, err)
}
