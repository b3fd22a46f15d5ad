package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_verifier.go -package=auth

var (
	ErrUnauthenticated   = errors.New("missing bearer credential")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Verifier resolves a bearer credential to the identity provider's stable
// user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type IdentityClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.StandardClaims
}

// JWTVerifier checks access tokens signed by the identity provider with a
// shared HMAC secret.
type JWTVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrUnauthenticated
	}
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, v.keyFunc)
	if err != nil || !token.Valid {
		return "", ErrInvalidCredential
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return "", ErrInvalidCredential
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}

func (v *JWTVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return v.secret, nil
}
