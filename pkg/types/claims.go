package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload shared by the middleware and the handlers.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
