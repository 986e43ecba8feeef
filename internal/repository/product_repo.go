package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cyberassess/internal/model"
)

// ProductRepo handles MongoDB operations for recommendable products
type ProductRepo interface {
	Create(ctx context.Context, product *model.Product) (string, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

type productRepo struct {
	collection *mongo.Collection
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *mongo.Database) ProductRepo {
	return &productRepo{
		collection: db.Collection("products"),
	}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) (string, error) {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	product.ID = oid.Hex()
	return product.ID, nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var product model.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	product.ID = id
	return &product, nil
}
