package store

import (
	"context"
	"fmt"

	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoMenuStore struct {
	collection *mongo.Collection
}

func NewMenuStore(collection *mongo.Collection) MenuStore {
	return &mongoMenuStore{collection: collection}
}

func (s *mongoMenuStore) Insert(ctx context.Context, item models.MenuItem) error {
	_, err := s.collection.InsertOne(ctx, item)
	return insertErr(err, s.collection.Name())
}

func (s *mongoMenuStore) FindByID(ctx context.Context, id string) (*models.MenuItem, error) {
	res := s.collection.FindOne(ctx, bson.M{"id": id})
	return decodeOne[models.MenuItem](res, s.collection.Name())
}

func (s *mongoMenuStore) FindAvailable(ctx context.Context, category models.Category, limit int64) ([]models.MenuItem, error) {
	filter := bson.M{"available": true}
	if category != "" {
		filter["category"] = category
	}
	return s.find(ctx, filter, limit)
}

func (s *mongoMenuStore) FindAll(ctx context.Context, limit int64) ([]models.MenuItem, error) {
	return s.find(ctx, bson.M{}, limit)
}

func (s *mongoMenuStore) find(ctx context.Context, filter bson.M, limit int64) ([]models.MenuItem, error) {
	cur, err := s.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	return decodeAll[models.MenuItem](ctx, cur, s.collection.Name())
}

func (s *mongoMenuStore) Update(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "name_ar", Value: item.NameAr},
		{Key: "description", Value: item.Description},
		{Key: "description_ar", Value: item.DescriptionAr},
		{Key: "price", Value: item.Price},
		{Key: "category", Value: item.Category},
		{Key: "image_url", Value: item.ImageURL},
		{Key: "available", Value: item.Available},
	}}}

	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := s.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opt)
	return decodeOne[models.MenuItem](res, s.collection.Name())
}

func (s *mongoMenuStore) DeleteAll(ctx context.Context) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete menu items: %w", err)
	}
	return result.DeletedCount, nil
}

func (s *mongoMenuStore) SetImageByName(ctx context.Context, name, imageURL string) (bool, error) {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"name": name},
		bson.D{{Key: "$set", Value: bson.D{{Key: "image_url", Value: imageURL}}}},
	)
	if err != nil {
		return false, fmt.Errorf("update image for %q: %w", name, err)
	}
	return result.ModifiedCount > 0, nil
}
