package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and query indexes the repositories rely
// on. The unique index on answers(assessmentId, questionId) is what makes the
// recorder's upsert safe under concurrent submissions.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("answers").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "assessmentId", Value: 1}, {Key: "questionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("question_options").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "questionId", Value: 1}, {Key: "inputId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("standardized_inputs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "text", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("questions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		return err
	}

	// Unique only while in_progress: completed runs for the same pair may
	// accumulate, but concurrent Start calls must not fork a second open one.
	_, err = db.Collection("assessments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "employeeId", Value: 1}},
		Options: options.Index().SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": "in_progress"}),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("employees").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
