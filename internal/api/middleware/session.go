package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/api/shared"
)

// Session identification.
const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "examzen_session"
)

// SessionMiddleware binds every request to a note session. The session ID is
// taken from the X-Session-ID header, then the examzen_session cookie; when
// neither holds a valid UUID a new session is issued. The ID is always
// returned in the response header, and a cookie is set for new sessions.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := sessionFromRequest(r)
		if !ok {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set(SessionHeader, sessionID)
		next.ServeHTTP(w, r.WithContext(shared.WithSessionID(r.Context(), sessionID)))
	})
}

func sessionFromRequest(r *http.Request) (string, bool) {
	if id, ok := parseSessionID(r.Header.Get(SessionHeader)); ok {
		return id, true
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, ok := parseSessionID(c.Value); ok {
			return id, true
		}
	}
	return "", false
}

func parseSessionID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
