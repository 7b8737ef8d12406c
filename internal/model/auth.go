package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for organization admin tokens
type AdminClaims struct {
	OrgID  string `json:"orgId"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token  string `json:"token"`
	OrgID  string `json:"orgId"`
	UserID string `json:"userId"`
}
