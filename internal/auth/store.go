package auth

import (
	"github.com/braianorozco10/portfolio-server/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Credential is one account entry: a bcrypt hash and the role granted on
// a successful login.
type Credential struct {
	Hash string
	Role models.Role
}

// Store validates logins against an injected credential table. The table
// is fixed at construction; there is no registration path.
type Store struct {
	creds map[string]Credential
}

func NewStore(creds map[string]Credential) *Store {
	return &Store{creds: creds}
}

// NewDefaultStore builds the built-in account table (admin and users).
// Hash overrides replace the default password when non-empty.
func NewDefaultStore(adminHash, usersHash string) *Store {
	if adminHash == "" {
		adminHash = mustHash("1234")
	}
	if usersHash == "" {
		usersHash = mustHash("1234")
	}
	return NewStore(map[string]Credential{
		"admin": {Hash: adminHash, Role: models.RoleAdmin},
		"users": {Hash: usersHash, Role: models.RoleUsers},
	})
}

// Validate checks an exact-match username and its password. There is no
// rate limiting or lockout; the caller gets the role or nothing.
func (s *Store) Validate(username, password string) (models.Role, bool) {
	entry, ok := s.creds[username]
	if !ok {
		return "", false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entry.Hash), []byte(password)); err != nil {
		return "", false
	}
	return entry.Role, true
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
