package store

import (
	"context"
	"fmt"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStatusCheckStore struct {
	collection *mongo.Collection
}

func NewStatusCheckStore(collection *mongo.Collection) StatusCheckStore {
	return &mongoStatusCheckStore{collection: collection}
}

func (s *mongoStatusCheckStore) Insert(ctx context.Context, check models.StatusCheck) error {
	_, err := s.collection.InsertOne(ctx, check)
	return insertErr(err, s.collection.Name())
}

func (s *mongoStatusCheckStore) FindAll(ctx context.Context, limit int64) ([]models.StatusCheck, error) {
	cur, err := s.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	return decodeAll[models.StatusCheck](ctx, cur, s.collection.Name())
}
