package model

import "time"

// Organization is a tenant. Every survey, template, and admin user
// belongs to exactly one organization.
type Organization struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Slug      string    `json:"slug" bson:"slug"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// AdminUser is an organization administrator account
type AdminUser struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OrgID        string    `json:"orgId" bson:"orgId"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
