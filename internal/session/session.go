// Package session reads the signed-in employee out of the app's
// key/value session storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserKey is the storage key holding the serialized session user.
const UserKey = "user"

var ErrNoSession = errors.New("no session user")

// Storage is the minimal key/value surface of the session store.
type Storage interface {
	GetItem(key string) (string, bool)
}

// UserContext identifies the acting user for the submission workflow.
// It is passed explicitly to the containers rather than read from
// ambient state.
type UserContext struct {
	Type  string `json:"type"`
	Email string `json:"email"`
}

// CurrentUser parses the "user" entry of the session storage.
func CurrentUser(s Storage) (UserContext, error) {
	raw, ok := s.GetItem(UserKey)
	if !ok || raw == "" {
		return UserContext{}, ErrNoSession
	}
	var u UserContext
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return UserContext{}, fmt.Errorf("parsing session user: %w", err)
	}
	return u, nil
}
