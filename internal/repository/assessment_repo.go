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

// AssessmentRepo handles MongoDB operations for assessments
type AssessmentRepo interface {
	GetOrCreateInProgress(ctx context.Context, customerID, employeeID string) (*model.Assessment, bool, error)
	GetByID(ctx context.Context, id string) (*model.Assessment, error)
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

// GetOrCreateInProgress resumes the in_progress assessment for the
// (customer, employee) pair or atomically creates one. Starting "again" must
// never fork a second run. The bool result reports whether an existing
// assessment was resumed.
func (r *assessmentRepo) GetOrCreateInProgress(ctx context.Context, customerID, employeeID string) (*model.Assessment, bool, error) {
	filter := bson.M{
		"customerId": customerID,
		"employeeId": employeeID,
		"status":     model.AssessmentStatusInProgress,
	}
	update := bson.M{"$setOnInsert": bson.M{
		"customerId":  customerID,
		"employeeId":  employeeID,
		"status":      model.AssessmentStatusInProgress,
		"dateStarted": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)

	var existing model.Assessment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&existing)
	if err == nil {
		return &existing, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	// Nothing existed before the upsert; read back the inserted document.
	var created model.Assessment
	if err := r.collection.FindOne(ctx, filter).Decode(&created); err != nil {
		return nil, false, err
	}
	return &created, false, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*model.Assessment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var assessment model.Assessment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	assessment.ID = id
	return &assessment, nil
}

func (r *assessmentRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "status": model.AssessmentStatusInProgress},
		bson.M{"$set": bson.M{
			"status":        model.AssessmentStatusCompleted,
			"dateCompleted": completedAt,
		}},
	)
	return err
}
