package models

import "github.com/golang-jwt/jwt/v5"

// ServiceClaims are the JWT claims carried by service tokens calling
// the wallet API.
type ServiceClaims struct {
	ClientID string `json:"client_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
