package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"safetyvitals/internal/model"
)

// OrgRepo handles MongoDB operations for organizations and their admin users
type OrgRepo interface {
	Create(ctx context.Context, org *model.Organization) error
	GetByID(ctx context.Context, id string) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)

	CreateAdmin(ctx context.Context, user *model.AdminUser) error
	GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	GetAdminByID(ctx context.Context, id string) (*model.AdminUser, error)
}

type orgRepo struct {
	orgs   *mongo.Collection
	admins *mongo.Collection
}

// NewOrgRepo creates a new organization repository
func NewOrgRepo(db *mongo.Database) OrgRepo {
	return &orgRepo{
		orgs:   db.Collection("organizations"),
		admins: db.Collection("admin_users"),
	}
}

func (r *orgRepo) Create(ctx context.Context, org *model.Organization) error {
	org.CreatedAt = time.Now()
	_, err := r.orgs.InsertOne(ctx, org)
	return err
}

func (r *orgRepo) GetByID(ctx context.Context, id string) (*model.Organization, error) {
	var org model.Organization
	err := r.orgs.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *orgRepo) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	var org model.Organization
	err := r.orgs.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *orgRepo) CreateAdmin(ctx context.Context, user *model.AdminUser) error {
	user.CreatedAt = time.Now()
	_, err := r.admins.InsertOne(ctx, user)
	return err
}

func (r *orgRepo) GetAdminByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *orgRepo) GetAdminByID(ctx context.Context, id string) (*model.AdminUser, error) {
	var user model.AdminUser
	err := r.admins.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
