// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"errors"
	"fmt"

	"quizvault/internal/core/ports"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var errNotConfigured = errors.New("google sign-in is not configured")

type tokenValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// IDTokenVerifier implements ports.GoogleIdentityVerifier. Tokens must be
// issued to clientID.
type IDTokenVerifier struct {
	validator tokenValidator
	clientID  string
}

// NewIDTokenVerifier builds a verifier backed by Google's published certs.
func NewIDTokenVerifier(ctx context.Context, clientID string, opts ...option.ClientOption) (*IDTokenVerifier, error) {
	v, err := idtoken.NewValidator(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create id token validator: %w", err)
	}
	return &IDTokenVerifier{validator: v, clientID: clientID}, nil
}

func (v *IDTokenVerifier) Verify(ctx context.Context, idToken string) (*ports.GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, errNotConfigured
	}

	payload, err := v.validator.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}

	identity := &ports.GoogleIdentity{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
	}
	if identity.Subject == "" || identity.Email == "" {
		return nil, errors.New("id token has no subject or email")
	}
	return identity, nil
}

func claimString(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}

// email_verified arrives as a bool from Google, but some issuers send "true".
func claimBool(claims map[string]interface{}, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
