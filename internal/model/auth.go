package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims for an authenticated user
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token for subsequent requests
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
