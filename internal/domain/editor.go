package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o editor autenticado. Só existe um editor, configurado por ambiente.
type Claims struct {
	EditorEmail string `json:"editor_email"`
	jwt.RegisteredClaims
}
