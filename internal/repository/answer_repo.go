package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/model"
)

// AnswerRepo handles MongoDB operations for answers
type AnswerRepo interface {
	Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error)
	GetByAssessment(ctx context.Context, assessmentID string) ([]*model.Answer, error)
	AnsweredQuestionIDs(ctx context.Context, assessmentID string) ([]string, error)
	CountByAssessment(ctx context.Context, assessmentID string) (int64, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

// Upsert writes the single answer row for (assessment, question). A second
// submission for the same pair overwrites text, option, flag and note in one
// atomic operation; the unique index guarantees no duplicate row even under
// concurrent submissions. DateAnswered is latest-write-wins.
func (r *answerRepo) Upsert(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	filter := bson.M{"assessmentId": answer.AssessmentID, "questionId": answer.QuestionID}
	update := bson.M{"$set": bson.M{
		"answerText":      answer.AnswerText,
		"selectedInputId": answer.SelectedInputID,
		"flagRequired":    answer.FlagRequired,
		"note":            answer.Note,
		"dateAnswered":    time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved model.Answer
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByAssessment returns answers in id order, which is insertion order. The
// CSV export depends on this ordering.
func (r *answerRepo) GetByAssessment(ctx context.Context, assessmentID string) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"assessmentId": assessmentID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []*model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// AnsweredQuestionIDs is the sequencer's one lookup: the set of question ids
// already answered in this assessment.
func (r *answerRepo) AnsweredQuestionIDs(ctx context.Context, assessmentID string) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "questionId", bson.M{"assessmentId": assessmentID})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

func (r *answerRepo) CountByAssessment(ctx context.Context, assessmentID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"assessmentId": assessmentID})
}
