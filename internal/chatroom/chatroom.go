// Package chatroom owns the chatroom list and its membership. Every mutation
// immediately persists the full updated list, so consumers always observe
// the post-mutation state.
package chatroom

import (
	"strconv"
	"strings"
	"time"

	"classroom/backend/internal/models"
	"classroom/backend/internal/storage"

	"github.com/google/uuid"
)

// Sessions provides the current logged-in user to capability checks.
type Sessions interface {
	Current() (models.User, bool)
}

// Store is the chatroom state object.
type Store struct {
	// Now supplies the current time; tests override it for stable IDs.
	Now func() time.Time

	adapter  *storage.Adapter
	sessions Sessions
	rooms    []models.Chatroom
	hydrated bool
	lastID   int64
}

// NewStore creates a chatroom store over the given adapter and session
// source.
func NewStore(adapter *storage.Adapter, sessions Sessions) *Store {
	return &Store{
		Now:      time.Now,
		adapter:  adapter,
		sessions: sessions,
	}
}

// Hydrate loads the chatroom list from storage. When nothing is stored (or
// the stored blob is unparseable) the fixed seed set is installed and
// persisted immediately.
func (s *Store) Hydrate() {
	defer func() { s.hydrated = true }()

	rooms := storage.Get(s.adapter, storage.KeyChatrooms, []models.Chatroom(nil))
	if rooms == nil {
		s.rooms = defaultChatrooms()
		s.persist()
		return
	}
	s.rooms = rooms
}

// Hydrated reports whether Hydrate has run.
func (s *Store) Hydrated() bool {
	return s.hydrated
}

// Chatrooms returns the current chatroom list. The store owns the list;
// callers must not mutate it.
func (s *Store) Chatrooms() []models.Chatroom {
	return s.rooms
}

// Get returns the chatroom with the given id.
func (s *Store) Get(id string) (models.Chatroom, bool) {
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Chatroom{}, false
}

// Create appends a new chatroom with the current user as its sole admin
// member. The name must be non-empty and a session must be present.
func (s *Store) Create(name, description string) (models.Chatroom, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return models.Chatroom{}, models.ErrNoSession
	}
	if strings.TrimSpace(name) == "" {
		return models.Chatroom{}, models.ErrEmptyName
	}

	room := models.Chatroom{
		ID:          s.nextID(),
		Name:        name,
		Description: description,
		MemberCount: 1,
		PostCount:   0,
		Members: []models.Member{
			{ID: "1", Name: user.Username, Role: models.RoleAdmin, IsOnline: true},
		},
		CreatedAt: s.Now(),
	}

	s.rooms = append(s.rooms, room)
	s.persist()
	return room, nil
}

// AddMember adds a member to the chatroom. Only admins may add members.
func (s *Store) AddMember(chatroomID, name string, role models.Role) (models.Member, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return models.Member{}, models.ErrNoSession
	}
	if !user.IsAdmin() {
		return models.Member{}, models.ErrForbidden
	}

	for i := range s.rooms {
		if s.rooms[i].ID != chatroomID {
			continue
		}
		member := models.Member{
			ID:       uuid.New().String(),
			Name:     name,
			Role:     role,
			IsOnline: false,
		}
		s.rooms[i].Members = append(s.rooms[i].Members, member)
		s.rooms[i].MemberCount = len(s.rooms[i].Members)
		s.persist()
		return member, nil
	}
	return models.Member{}, models.ErrNotFound
}

// RemoveMember removes the member from the chatroom and recomputes
// MemberCount. Only admins may remove members. An unknown chatroom or
// member id is a no-op.
func (s *Store) RemoveMember(chatroomID, memberID string) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}
	if !user.IsAdmin() {
		return models.ErrForbidden
	}

	for i := range s.rooms {
		if s.rooms[i].ID != chatroomID {
			continue
		}
		members := s.rooms[i].Members[:0:0]
		for _, member := range s.rooms[i].Members {
			if member.ID != memberID {
				members = append(members, member)
			}
		}
		if len(members) == len(s.rooms[i].Members) {
			return nil
		}
		s.rooms[i].Members = members
		s.rooms[i].MemberCount = len(members)
		s.persist()
		return nil
	}
	return nil
}

func (s *Store) persist() {
	storage.Set(s.adapter, storage.KeyChatrooms, s.rooms)
}

// nextID issues an epoch-ms identifier, bumping forward when two creations
// land in the same millisecond.
func (s *Store) nextID() string {
	ms := s.Now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}
