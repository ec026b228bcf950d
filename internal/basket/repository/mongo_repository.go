package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/domain"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection("baskets"),
	}
}

func (m *MongoRepository) GetByUserName(ctx context.Context, userName string) (*domain.ShoppingCart, error) {
	var cart domain.ShoppingCart

	filter := bson.M{"user_name": userName}
	err := m.collection.FindOne(ctx, filter).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// Replace writes the whole document, creating it when absent. Partial updates
// are never performed on a basket.
func (m *MongoRepository) Replace(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	if cart.ID == "" {
		// user name is the natural document key; one basket per user
		cart.ID = cart.UserName
	}

	filter := bson.M{"user_name": cart.UserName}
	opts := options.Replace().SetUpsert(true)

	if _, err := m.collection.ReplaceOne(ctx, filter, cart, opts); err != nil {
		return nil, fmt.Errorf("failed to replace cart: %w", err)
	}

	return cart, nil
}

func (m *MongoRepository) DeleteByUserName(ctx context.Context, userName string) error {
	filter := bson.M{"user_name": userName}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCartNotFound
	}

	return nil
}

// CreateIndexes enforces one basket per user and expires abandoned baskets.
func (m *MongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(90 * 24 * 60 * 60), // 90 days TTL
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
