package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload shared between middleware and handlers.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}
