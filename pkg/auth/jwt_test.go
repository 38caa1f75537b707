package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, now *time.Time) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(Config{Secret: "test-secret"}, WithClock(func() time.Time { return *now }))
	require.NoError(t, err)
	return m
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	m := newTestManager(t, &now)

	token, issued, err := m.Issue("7f0c7a4e-4c55-4a84-9f0b-0b7b1f0c9b11", "clinic")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "7f0c7a4e-4c55-4a84-9f0b-0b7b1f0c9b11", claims.AccountID)
	assert.Equal(t, "clinic", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, now.Add(7*24*time.Hour).Equal(claims.ExpiresAt.Time))
}

func TestTokenLifetimeIsSevenDays(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
	now := issuedAt
	m := newTestManager(t, &now)

	token, _, err := m.Issue("a1", "patient")
	require.NoError(t, err)

	now = issuedAt.Add(7*24*time.Hour - time.Second)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	now = issuedAt.Add(7*24*time.Hour + time.Second)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsTampering(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, &now)

	token, _, err := m.Issue("a1", "patient")
	require.NoError(t, err)

	other, err := NewTokenManager(Config{Secret: "another-secret"})
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	_, err = m.Verify(parts[0] + "." + parts[1] + ".AAAA")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, &now)

	claims := &Claims{
		AccountID: "a1",
		Role:      "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresIdentityClaims(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, &now)

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(Config{})
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestExpiryIsExactlySevenDaysAfterIssue(t *testing.T) {
	issuedAt := time.Date(2025, 1, 10, 8, 30, 0, 900_000_000, time.UTC)
	now := issuedAt
	m := newTestManager(t, &now)

	token, claims, err := m.Issue("a1", "patient")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.True(t, issuedAt.Truncate(time.Second).Equal(claims.IssuedAt.Time))

	parsed, err := m.Verify(token)
	require.NoError(t, err)
	assert.True(t, parsed.ExpiresAt.Equal(claims.ExpiresAt.Time))

	now = claims.IssuedAt.Add(7*24*time.Hour - 100*time.Millisecond)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	now = claims.IssuedAt.Add(7*24*time.Hour + 100*time.Millisecond)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
