package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/model"
)

// InputRepo handles MongoDB operations for the global standardized input catalog
type InputRepo interface {
	GetByID(ctx context.Context, id string) (*model.StandardizedInput, error)
	GetByText(ctx context.Context, text string) (*model.StandardizedInput, error)
	GetOrCreate(ctx context.Context, text, description string) (*model.StandardizedInput, error)
	List(ctx context.Context) ([]*model.StandardizedInput, error)
}

type inputRepo struct {
	collection *mongo.Collection
}

// NewInputRepo creates a new standardized input repository
func NewInputRepo(db *mongo.Database) InputRepo {
	return &inputRepo{
		collection: db.Collection("standardized_inputs"),
	}
}

func (r *inputRepo) GetByID(ctx context.Context, id string) (*model.StandardizedInput, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var input model.StandardizedInput
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&input)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	input.ID = id
	return &input, nil
}

func (r *inputRepo) GetByText(ctx context.Context, text string) (*model.StandardizedInput, error) {
	var input model.StandardizedInput
	err := r.collection.FindOne(ctx, bson.M{"text": text}).Decode(&input)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &input, nil
}

// GetOrCreate deduplicates by text. The unique index on text makes the upsert
// race-safe when two imports hit the same entry.
func (r *inputRepo) GetOrCreate(ctx context.Context, text, description string) (*model.StandardizedInput, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": bson.M{"text": text, "description": description}}

	var input model.StandardizedInput
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"text": text}, update, opts).Decode(&input)
	if err != nil {
		return nil, err
	}
	return &input, nil
}

func (r *inputRepo) List(ctx context.Context) ([]*model.StandardizedInput, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "text", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inputs []*model.StandardizedInput
	if err := cursor.All(ctx, &inputs); err != nil {
		return nil, err
	}
	return inputs, nil
}
