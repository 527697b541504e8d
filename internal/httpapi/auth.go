package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/honeycarbs/jobnest/internal/auth"
)

type successBody struct {
	Success bool `json:"success"`
}

// issueToken signs the posted identity and sets it as the token cookie
func (h *handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	http.SetCookie(w, h.tokenCookie(token, int(h.tokens.TTL().Seconds())))
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

// logout expires the token cookie
func (h *handler) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.tokenCookie("", -1))
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *handler) tokenCookie(value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
	if h.secureCookies {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", errBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %v", errBadRequest, err)
	}
	return nil
}
