package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/breakbuddy/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.GenerateToken(Claims{
		SubjectID:  "emp-1",
		Role:       domain.RoleEmployee,
		Email:      "ann@x.com",
		EmployeeID: "E100",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.SubjectID)
	assert.Equal(t, domain.RoleEmployee, claims.Role)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "E100", claims.EmployeeID)
	assert.Empty(t, claims.ChefID)
}

func TestParseTokenChefClaims(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.GenerateToken(Claims{
		SubjectID: "chef-1",
		Role:      domain.RoleChef,
		ChefID:    "chef001",
	})
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "chef-1", claims.SubjectID)
	assert.Equal(t, domain.RoleChef, claims.Role)
	assert.Equal(t, "chef001", claims.ChefID)
	assert.Empty(t, claims.Email)
}

func TestParseTokenWrongKey(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, _, err := tm.GenerateToken(Claims{SubjectID: "emp-1", Role: domain.RoleEmployee})
	require.NoError(t, err)

	// Rotating the signing key invalidates previously issued tokens.
	rotated := NewTokenManager("other-secret")
	_, err = rotated.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, bad := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := tm.ParseToken(bad)
		assert.Error(t, err, "token %q should be rejected", bad)
	}
}

func TestParseTokenTampered(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, _, err := tm.GenerateToken(Claims{SubjectID: "emp-1", Role: domain.RoleEmployee})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.GenerateToken(Claims{SubjectID: "emp-1", Role: domain.RoleEmployee})
	require.NoError(t, err)

	// Still valid immediately after issuance.
	_, err = tm.ParseToken(token)
	require.NoError(t, err)

	// Advance the clock past the 24h TTL.
	tm.now = func() time.Time { return time.Now().Add(TokenTTL + time.Minute) }
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}
