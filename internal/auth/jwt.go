package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

// JWTManager issues and verifies HS256 access tokens. Tokens carry the
// member id and the numeric role id the login service assigns.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
// An empty issuer disables the issuer check.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims matches the claim names of tokens issued by the login service.
type accessClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
	RoleID int   `json:"roleId"`
}

// GenerateAccessToken creates a signed HS256 JWT for a member and role id.
// Used by the token CLI and tests; production tokens come from the login service.
func (m *JWTManager) GenerateAccessToken(userID int64, roleID int) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		RoleID: roleID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates an access token and translates its numeric
// role id into a domain.Role. All failures wrap ErrInvalidToken.
func (m *JWTManager) Verify(_ context.Context, tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty: %w", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims: %w", ErrInvalidToken)
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return Identity{}, fmt.Errorf("invalid issuer %q: %w", claims.Issuer, ErrInvalidToken)
	}

	if claims.UserID <= 0 {
		return Identity{}, fmt.Errorf("invalid userId %d: %w", claims.UserID, ErrInvalidToken)
	}

	role, ok := domain.RoleFromID(claims.RoleID)
	if !ok {
		return Identity{}, fmt.Errorf("unknown roleId %d: %w", claims.RoleID, ErrInvalidToken)
	}

	return Identity{SubjectID: claims.UserID, Role: role}, nil
}
