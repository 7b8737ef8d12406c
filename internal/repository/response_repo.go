package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"safetyvitals/internal/model"
)

// ResponseRepo handles MongoDB operations for survey responses
type ResponseRepo interface {
	InsertBatch(ctx context.Context, responses []*model.Response) error
	GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error)
	CountRespondents(ctx context.Context, surveyID string) (int, error)
	DeleteBySurveyID(ctx context.Context, surveyID string) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) InsertBatch(ctx context.Context, responses []*model.Response) error {
	if len(responses) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(responses))
	for _, resp := range responses {
		if resp.SubmittedAt.IsZero() {
			resp.SubmittedAt = now
		}
		docs = append(docs, resp)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *responseRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) CountRespondents(ctx context.Context, surveyID string) (int, error) {
	ids, err := r.collection.Distinct(ctx, "respondentId", bson.M{"surveyId": surveyID})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (r *responseRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
