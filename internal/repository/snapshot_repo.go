package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"safetyvitals/internal/model"
)

// SnapshotRepo persists final dashboard snapshots, written when a
// survey is closed so its numbers survive later template edits.
type SnapshotRepo interface {
	Save(ctx context.Context, snapshot *model.DashboardSnapshot) error
	GetBySurveyID(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error)
}

type snapshotRepo struct {
	collection *mongo.Collection
}

// NewSnapshotRepo creates a new snapshot repository
func NewSnapshotRepo(db *mongo.Database) SnapshotRepo {
	return &snapshotRepo{
		collection: db.Collection("dashboard_snapshots"),
	}
}

func (r *snapshotRepo) Save(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	filter := bson.M{"surveyId": snapshot.SurveyID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, snapshot, opts)
	return err
}

func (r *snapshotRepo) GetBySurveyID(ctx context.Context, surveyID string) (*model.DashboardSnapshot, error) {
	var snapshot model.DashboardSnapshot
	err := r.collection.FindOne(ctx, bson.M{"surveyId": surveyID}).Decode(&snapshot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
