package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/model"
)

// OptionRepo handles MongoDB operations for question-option links
type OptionRepo interface {
	Upsert(ctx context.Context, link *model.QuestionOption) error
	GetByQuestionAndInput(ctx context.Context, questionID, inputID string) (*model.QuestionOption, error)
	ListByQuestion(ctx context.Context, questionID string) ([]*model.QuestionOption, error)
}

type optionRepo struct {
	collection *mongo.Collection
}

// NewOptionRepo creates a new question-option repository
func NewOptionRepo(db *mongo.Database) OptionRepo {
	return &optionRepo{
		collection: db.Collection("question_options"),
	}
}

// Upsert writes the scoring metadata for one (question, input) pair. The
// unique index on the pair keeps repeated imports from duplicating links.
func (r *optionRepo) Upsert(ctx context.Context, link *model.QuestionOption) error {
	filter := bson.M{"questionId": link.QuestionID, "inputId": link.InputID}
	update := bson.M{"$set": bson.M{
		"scoreValue": link.ScoreValue,
		"preferred":  link.Preferred,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *optionRepo) GetByQuestionAndInput(ctx context.Context, questionID, inputID string) (*model.QuestionOption, error) {
	var link model.QuestionOption
	err := r.collection.FindOne(ctx, bson.M{"questionId": questionID, "inputId": inputID}).Decode(&link)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *optionRepo) ListByQuestion(ctx context.Context, questionID string) ([]*model.QuestionOption, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"questionId": questionID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []*model.QuestionOption
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}
