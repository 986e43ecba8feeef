package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyberassess/internal/model"
)

// QuestionRepo handles MongoDB operations for questions
type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) (string, error)
	GetByID(ctx context.Context, id string) (*model.Question, error)
	GetByCategoryAndText(ctx context.Context, categoryID, text string) (*model.Question, error)
	List(ctx context.Context, categoryID string) ([]*model.Question, error)
	FirstUnanswered(ctx context.Context, categoryID string, answeredIDs []string) (*model.Question, error)
	Count(ctx context.Context, categoryID string) (int64, error)
	UpdateOrder(ctx context.Context, questionID, categoryID string, order int) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

// questionSort is the strict presentation order: order ascending with the id
// as the stable tiebreak, so sequencing stays deterministic on order ties.
var questionSort = bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) (string, error) {
	result, err := r.collection.InsertOne(ctx, question)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	question.ID = oid.Hex()
	return question.ID, nil
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var question model.Question
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	question.ID = id
	return &question, nil
}

func (r *questionRepo) GetByCategoryAndText(ctx context.Context, categoryID, text string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"categoryId": categoryID, "text": text}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) List(ctx context.Context, categoryID string) ([]*model.Question, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(questionSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// FirstUnanswered returns the first question in presentation order whose id
// is not in answeredIDs, optionally restricted to one category. Returns nil
// when everything in scope has been answered.
func (r *questionRepo) FirstUnanswered(ctx context.Context, categoryID string, answeredIDs []string) (*model.Question, error) {
	exclude := make([]primitive.ObjectID, 0, len(answeredIDs))
	for _, id := range answeredIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		exclude = append(exclude, oid)
	}

	filter := bson.M{"_id": bson.M{"$nin": exclude}}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}

	var question model.Question
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetSort(questionSort)).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) Count(ctx context.Context, categoryID string) (int64, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}
	return r.collection.CountDocuments(ctx, filter)
}

// UpdateOrder applies a new order value to a question, scoped to its stated
// category so a payload naming the wrong category cannot move a question.
func (r *questionRepo) UpdateOrder(ctx context.Context, questionID, categoryID string, order int) error {
	oid, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "categoryId": categoryID},
		bson.M{"$set": bson.M{"order": order}},
	)
	return err
}
