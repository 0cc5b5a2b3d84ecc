package store

import (
	"context"
	"fmt"
	"time"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOrderStore struct {
	collection *mongo.Collection
}

func NewOrderStore(collection *mongo.Collection) OrderStore {
	return &mongoOrderStore{collection: collection}
}

func (s *mongoOrderStore) Insert(ctx context.Context, order models.Order) error {
	_, err := s.collection.InsertOne(ctx, order)
	return insertErr(err, s.collection.Name())
}

func (s *mongoOrderStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	res := s.collection.FindOne(ctx, bson.M{"id": id})
	return decodeOne[models.Order](res, s.collection.Name())
}

func (s *mongoOrderStore) FindAll(ctx context.Context, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cur, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return decodeAll[models.Order](ctx, cur, s.collection.Name())
}

func (s *mongoOrderStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, updatedAt time.Time) (*models.Order, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: updatedAt},
	}}}

	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := s.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opt)
	return decodeOne[models.Order](res, s.collection.Name())
}
