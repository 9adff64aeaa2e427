package auth

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/braianorozco10/portfolio-server/internal/models"
)

// SessionKey is the fixed cookie name the browser keeps the session
// record under. The record is plain JSON (base64 only because cookie
// values cannot carry quotes): not signed, not expiring, never validated
// beyond parsing. Presence is what makes a visitor "logged in", which is
// a client-trusted gate and nothing more.
const SessionKey = "wt_session"

// NewSession creates the record written out after a successful login.
func NewSession(role models.Role, username string) models.Session {
	return models.Session{Role: role, Username: username, CreatedAt: time.Now()}
}

// EncodeSession serializes a session record for the cookie value.
func EncodeSession(s models.Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// DecodeSession parses a stored record. A malformed value means "no
// session", not an error; a wiped or corrupted record simply logs the
// visitor out.
func DecodeSession(raw string) (models.Session, bool) {
	if raw == "" {
		return models.Session{}, false
	}
	b, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return models.Session{}, false
	}
	var s models.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return models.Session{}, false
	}
	if s.Username == "" {
		return models.Session{}, false
	}
	return s, true
}
