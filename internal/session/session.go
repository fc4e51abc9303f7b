// Package session holds the current user identity with a sliding 7-day
// expiry, persisted through the storage adapter.
package session

import (
	"log"
	"strconv"
	"time"

	"classroom/backend/internal/config"
	"classroom/backend/internal/models"
	"classroom/backend/internal/storage"
)

// Store is the session state object. It is hydrated once at startup and
// mutated only through Login and Logout.
type Store struct {
	// Now supplies the current time; tests override it to control expiry.
	Now func() time.Time

	adapter  *storage.Adapter
	user     *models.User
	hydrated bool
}

// NewStore creates a session store over the given adapter.
func NewStore(adapter *storage.Adapter) *Store {
	return &Store{
		Now:     time.Now,
		adapter: adapter,
	}
}

// Hydrate restores the session from storage. A stored session is valid only
// while now - loginTimestamp < 7 days; anything else (expired, partial, or
// corrupt) is treated as logged-out and both keys are cleared together.
func (s *Store) Hydrate() {
	defer func() { s.hydrated = true }()

	user := storage.Get(s.adapter, storage.KeyUser, models.User{})
	rawTimestamp := storage.Get(s.adapter, storage.KeyLoginTimestamp, "")

	if user.Username == "" || !user.Role.IsValid() || rawTimestamp == "" {
		s.clear()
		return
	}

	loginMs, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		log.Printf("ERROR: Failed to parse stored login timestamp: %v", err)
		s.clear()
		return
	}

	if s.Now().Sub(time.UnixMilli(loginMs)) >= config.SessionDuration {
		log.Printf("INFO: Session for %s expired, clearing stored user", user.Username)
		s.clear()
		return
	}

	s.user = &user
}

// Login sets the session to the given identity and writes a fresh login
// timestamp. Any existing session is overwritten unconditionally.
func (s *Store) Login(role models.Role, username string) {
	user := models.User{Username: username, Role: role}
	s.user = &user
	storage.Set(s.adapter, storage.KeyUser, user)
	storage.Set(s.adapter, storage.KeyLoginTimestamp, strconv.FormatInt(s.Now().UnixMilli(), 10))
}

// Logout clears the session and its timestamp. Chatroom and post storage is
// deliberately left untouched: logging out must not delete collaborative
// content.
func (s *Store) Logout() {
	s.clear()
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Hydrated reports whether Hydrate has run; dependent consumers treat a
// non-hydrated store as still loading.
func (s *Store) Hydrated() bool {
	return s.hydrated
}

func (s *Store) clear() {
	s.user = nil
	s.adapter.Remove(storage.KeyUser)
	s.adapter.Remove(storage.KeyLoginTimestamp)
}
