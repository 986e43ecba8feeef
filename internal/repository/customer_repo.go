package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/model"
)

// CustomerRepo handles MongoDB operations for customers
type CustomerRepo interface {
	Create(ctx context.Context, customer *model.Customer) (string, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context) ([]*model.Customer, error)
}

type customerRepo struct {
	collection *mongo.Collection
}

// NewCustomerRepo creates a new customer repository
func NewCustomerRepo(db *mongo.Database) CustomerRepo {
	return &customerRepo{
		collection: db.Collection("customers"),
	}
}

func (r *customerRepo) Create(ctx context.Context, customer *model.Customer) (string, error) {
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	customer.ID = oid.Hex()
	return customer.ID, nil
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var customer model.Customer
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	customer.ID = id
	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context) ([]*model.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []*model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
