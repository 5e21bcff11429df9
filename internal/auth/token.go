package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/breakbuddy/internal/domain"
)

// TokenTTL is fixed at 24 hours from issuance and is not configurable.
const TokenTTL = 24 * time.Hour

// TokenManager handles issuing and validating JWT bearer tokens. Tokens are
// stateless: once issued, validity depends only on signature and expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager around the process-wide signing key.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL, now: time.Now}
}

// Claims describes the JWT payload. Email and EmployeeID are set for
// employee tokens, ChefID for chef tokens.
type Claims struct {
	SubjectID  string      `json:"id"`
	Role       domain.Role `json:"role"`
	Email      string      `json:"email,omitempty"`
	EmployeeID string      `json:"employeeId,omitempty"`
	ChefID     string      `json:"chefId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the subject.
func (tm *TokenManager) GenerateToken(claims Claims) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.SubjectID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates signature and expiry and returns the claims. Any
// mismatch, malformed structure, or expired token is rejected outright.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
