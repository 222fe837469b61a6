package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and verifies the signed tokens carried in the `token` header.
type JWTService interface {
	// GenerateToken creates a signed token whose identifier is userID and whose
	// subject is email.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken checks signature, algorithm, issuer and expiry and returns the claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken otherwise.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token.
type Claims struct {
	// UserID is parsed from the jti claim.
	UserID uuid.UUID
	// Email is the sub claim.
	Email  string
	Issuer string

	IssuedAt time.Time
	// ExpiresAt is zero for tokens issued without a lifetime.
	ExpiresAt time.Time
}

// SubjectOf returns the email a valid token was issued for.
func SubjectOf(ctx context.Context, svc JWTService, token string) (string, error) {
	claims, err := svc.ValidateToken(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

// IDOf returns the user ID a valid token was issued for.
func IDOf(ctx context.Context, svc JWTService, token string) (uuid.UUID, error) {
	claims, err := svc.ValidateToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
