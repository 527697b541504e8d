package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(t *testing.T, secret string) *TokenService {
	t.Helper()
	s, err := NewTokenService(secret, 5*time.Hour)
	require.NoError(t, err)
	return s
}

func TestNewTokenServiceValidates(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	require.Error(t, err)

	_, err = NewTokenService("secret", 0)
	require.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := newTestTokens(t, "secret")

	token, err := s.Issue(map[string]any{"email": "a@x.com", "name": "Ada"})
	require.NoError(t, err)

	id, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email)
	assert.Equal(t, "Ada", id.Claims["name"])

	exp, err := id.Claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := id.Claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour, exp.Sub(iat.Time))
}

func TestIssueRequiresEmail(t *testing.T) {
	s := newTestTokens(t, "secret")

	_, err := s.Issue(map[string]any{"name": "Ada"})
	assert.ErrorIs(t, err, ErrMissingEmail)

	_, err = s.Issue(map[string]any{"email": 42})
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	token, err := newTestTokens(t, "secret").Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = newTestTokens(t, "other").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := newTestTokens(t, "secret")
	s.now = func() time.Time { return time.Now().Add(-6 * time.Hour) }

	token, err := s.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	s := newTestTokens(t, "secret")

	claims := jwt.MapClaims{"email": "a@x.com", "exp": jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	s := newTestTokens(t, "secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
