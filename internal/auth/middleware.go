package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/honeycarbs/jobnest/pkg/logging"
)

// CookieName is the cookie that carries the session token
const CookieName = "token"

// ErrUnauthorized is returned when a request carries no usable token
var ErrUnauthorized = errors.New("unauthorized")

type identityKey struct{}

// WithIdentity stores a verified identity in ctx
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity attached by the Authenticator
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Verifier checks a raw token string
type Verifier interface {
	Verify(token string) (Identity, error)
}

// Authenticator rejects requests without a valid token cookie
type Authenticator struct {
	verifier Verifier
	logger   *logging.Logger
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(verifier Verifier, logger *logging.Logger) *Authenticator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Authenticator{verifier: verifier, logger: logger}
}

// Middleware verifies the token cookie and attaches the identity to the
// request context. Failures stop the request with 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context(), a.logger)

		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			log.Debug("token cookie missing", "path", r.URL.Path)
			unauthorized(w)
			return
		}

		id, err := a.verifier.Verify(cookie.Value)
		if err != nil {
			log.Warn("token verification failed", "path", r.URL.Path, "err", err)
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "unAuthorized access"})
}
