package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"smartorders/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Claims carries the caller identity. Subject is the client id.
type Claims struct {
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *TokenService) Issue(p entities.Principal) (string, error) {
	if p.ClientID <= 0 {
		return "", fmt.Errorf("issue token: invalid client id %d", p.ClientID)
	}
	now := s.now()
	claims := Claims{
		Username:    p.Username,
		IsModerator: p.IsModerator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.ClientID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies token and returns the principal it was issued for.
func (s *TokenService) Parse(token string) (entities.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return entities.Principal{}, ErrInvalidToken
	}
	return claims.principal()
}

// PeekPrincipal reads the principal from token without checking its
// signature or expiry. Clients use it to learn who they are; servers must
// use Parse.
func PeekPrincipal(token string) (entities.Principal, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.principal()
}

func (c *Claims) principal() (entities.Principal, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entities.Principal{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	return entities.Principal{ClientID: id, Username: c.Username, IsModerator: c.IsModerator}, nil
}
