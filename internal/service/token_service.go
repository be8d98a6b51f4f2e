package service

import (
	"errors"
	"fmt"
	"time"

	"quizvault/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenLeeway = 30 * time.Second

// sessionClaims is the payload of a session token. Sessions issued by the
// previous backend carry the user id in "id" and no subject.
type sessionClaims struct {
	LegacyID string `json:"id,omitempty"`
	jwt.RegisteredClaims
}

func (c *sessionClaims) userID() (uuid.UUID, error) {
	raw := c.Subject
	if raw == "" {
		raw = c.LegacyID
	}
	if raw == "" {
		return uuid.Nil, errors.New("token has no user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("token user id: %w", err)
	}
	return id, nil
}

// JWTTokenService issues and checks HS256 session tokens.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	parser *jwt.Parser
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(tokenLeeway),
		),
	}
}

// Generate signs a session for userID and reports when it expires.
func (s *JWTTokenService) Generate(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, algorithm and expiry, then resolves the user id.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims sessionClaims
	if _, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("parsing session token: %w", err)
	}

	userID, err := claims.userID()
	if err != nil {
		return nil, err
	}
	return &ports.TokenClaims{UserID: userID}, nil
}
