package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cyberassess/internal/model"
)

// EmployeeRepo handles MongoDB operations for employees
type EmployeeRepo interface {
	Create(ctx context.Context, employee *model.Employee) (string, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByUsername(ctx context.Context, username string) (*model.Employee, error)
}

type employeeRepo struct {
	collection *mongo.Collection
}

// NewEmployeeRepo creates a new employee repository
func NewEmployeeRepo(db *mongo.Database) EmployeeRepo {
	return &employeeRepo{
		collection: db.Collection("employees"),
	}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) (string, error) {
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, employee)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	employee.ID = oid.Hex()
	return employee.ID, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var employee model.Employee
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	employee.ID = id
	return &employee, nil
}

func (r *employeeRepo) GetByUsername(ctx context.Context, username string) (*model.Employee, error) {
	var employee model.Employee
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&employee)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
