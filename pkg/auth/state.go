package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/GlebRadaev/adhub/internal/domain"
)

const stateIssuer = "adhub-oauth"

var ErrInvalidState = errors.New("invalid oauth state")

type StateClaims struct {
	UserID       string `json:"uid"`
	ReturnOrigin string `json:"origin,omitempty"`
	Provider     string `json:"provider"`
	jwt.StandardClaims
}

// StateCodec turns an OAuthState into a signed, expiring string that can
// only be decoded by this service.
type StateCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateCodec(secret string, ttl time.Duration) *StateCodec {
	return &StateCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (c *StateCodec) Encode(state domain.OAuthState) (string, error) {
	if state.UserID == "" || state.Provider == "" {
		return "", ErrInvalidState
	}
	now := c.now()
	claims := StateClaims{
		UserID:       state.UserID,
		ReturnOrigin: state.ReturnOrigin,
		Provider:     state.Provider,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(c.ttl).Unix(),
			Issuer:    stateIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *StateCodec) Decode(raw string) (domain.OAuthState, error) {
	if raw == "" {
		return domain.OAuthState{}, ErrInvalidState
	}
	token, err := jwt.ParseWithClaims(raw, &StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidState
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.OAuthState{}, ErrInvalidState
	}
	claims, ok := token.Claims.(*StateClaims)
	if !ok || claims.Issuer != stateIssuer || claims.UserID == "" || claims.Provider == "" {
		return domain.OAuthState{}, ErrInvalidState
	}
	return domain.OAuthState{
		UserID:       claims.UserID,
		ReturnOrigin: claims.ReturnOrigin,
		Provider:     claims.Provider,
	}, nil
}
