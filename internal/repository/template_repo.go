package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"safetyvitals/internal/model"
)

// TemplateRepo handles MongoDB operations for option templates
type TemplateRepo interface {
	Create(ctx context.Context, tpl *model.OptionTemplate) error
	GetByID(ctx context.Context, id string) (*model.OptionTemplate, error)
	GetByOrgID(ctx context.Context, orgID string) ([]*model.OptionTemplate, error)
	GetByIDs(ctx context.Context, ids []string) ([]*model.OptionTemplate, error)
	Update(ctx context.Context, tpl *model.OptionTemplate) error
	Delete(ctx context.Context, id string) error
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new option template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("option_templates"),
	}
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.OptionTemplate) error {
	_, err := r.collection.InsertOne(ctx, tpl)
	return err
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.OptionTemplate, error) {
	var tpl model.OptionTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *templateRepo) GetByOrgID(ctx context.Context, orgID string) ([]*model.OptionTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"orgId": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.OptionTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.OptionTemplate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.OptionTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, tpl *model.OptionTemplate) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": tpl.ID}, tpl)
	return err
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
