package web

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sessionIDKey = "sessionId"

type SessionValueNotFoundError struct {
	Key string
}

func (err SessionValueNotFoundError) Error() string {
	return fmt.Sprintf("session value for key '%s' not found", err.Key)
}

func (h *Handler) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := h.cookieStore.Get(r, h.sessionName)
	if err != nil {
		// A cookie signed with an old key still yields a usable empty session.
		if session != nil && session.IsNew {
			return session, nil
		}

		return nil, fmt.Errorf("error getting session: %w", err)
	}

	return session, nil
}

func getSessionString(session *sessions.Session, key string) (string, error) {
	value, ok := session.Values[key]
	if !ok {
		return "", &SessionValueNotFoundError{Key: key}
	}

	str, ok := value.(string)
	if !ok || str == "" {
		return "", &SessionValueNotFoundError{Key: key}
	}

	return str, nil
}

// sessionID returns the id views of this browser session are owned by,
// assigning a new one when the session has none. The cookie carries only this
// id, however many posts are mounted.
func sessionID(session *sessions.Session) string {
	id, err := getSessionString(session, sessionIDKey)
	if err == nil {
		return id
	}

	id = uuid.NewString()
	session.Values[sessionIDKey] = id

	return id
}

func saveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	err := session.Save(r, w)
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}
