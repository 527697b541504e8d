package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(t *testing.T, tokens *TokenService) (http.Handler, *bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := IdentityFrom(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(id.Email))
	})
	return NewAuthenticator(tokens, nil).Middleware(next), &called
}

func TestMiddlewareMissingCookie(t *testing.T) {
	h, called := protected(t, newTestTokens(t, "secret"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/job-applications", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"unAuthorized access"}`, rec.Body.String())
	assert.False(t, *called)
}

func TestMiddlewareEmptyAndInvalidCookie(t *testing.T) {
	h, called := protected(t, newTestTokens(t, "secret"))

	for _, value := range []string{"", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/job-applications", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "cookie %q", value)
	}
	assert.False(t, *called)
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	tokens := newTestTokens(t, "secret")
	h, called := protected(t, tokens)

	token, err := tokens.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/job-applications", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", rec.Body.String())
	assert.True(t, *called)
}
