package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the payload carried by the signed bearer token. Every
// request re-derives its identity from these claims; nothing is trusted
// from client-held state.
type AdminClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
