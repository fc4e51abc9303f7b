// Package post owns the post list: creation, content edits, reactions,
// comments, and moderation status. Every mutation requires a valid session,
// bumps the post's UpdatedAt, and persists the complete list.
package post

import (
	"strconv"
	"time"

	"classroom/backend/internal/config"
	"classroom/backend/internal/models"
	"classroom/backend/internal/storage"
)

// Sessions provides the current logged-in user to capability checks.
type Sessions interface {
	Current() (models.User, bool)
}

// CreateInput carries the caller-supplied fields of a new post.
type CreateInput struct {
	ChatroomID string
	Content    string
	Categories []string
	Attachment string
}

// Store is the post state object.
type Store struct {
	// Now supplies the current time; tests override it for stable IDs and
	// timestamps.
	Now func() time.Time

	adapter  *storage.Adapter
	sessions Sessions
	posts    []models.Post
	hydrated bool
	lastID   int64
}

// NewStore creates a post store over the given adapter and session source.
func NewStore(adapter *storage.Adapter, sessions Sessions) *Store {
	return &Store{
		Now:      time.Now,
		adapter:  adapter,
		sessions: sessions,
	}
}

// Hydrate loads the post list from storage, installing the fixed seed set
// when nothing usable is stored. Date fields revive from their serialized
// form through the JSON layer.
func (s *Store) Hydrate() {
	defer func() { s.hydrated = true }()

	posts := storage.Get(s.adapter, storage.KeyPosts, []models.Post(nil))
	if posts == nil {
		s.posts = defaultPosts(s.Now())
		s.persist()
		return
	}
	s.posts = posts
}

// Hydrated reports whether Hydrate has run.
func (s *Store) Hydrated() bool {
	return s.hydrated
}

// Posts returns the current post list, newest first. The store owns the
// list; callers must not mutate it.
func (s *Store) Posts() []models.Post {
	return s.posts
}

// ForChatroom returns the posts belonging to the chatroom.
func (s *Store) ForChatroom(chatroomID string) []models.Post {
	var out []models.Post
	for _, p := range s.posts {
		if p.ChatroomID == chatroomID {
			out = append(out, p)
		}
	}
	return out
}

// CountForChatroom returns the live number of posts in the chatroom. The
// persisted Chatroom.PostCount is a static seed hint; this is the accurate
// value.
func (s *Store) CountForChatroom(chatroomID string) int {
	n := 0
	for _, p := range s.posts {
		if p.ChatroomID == chatroomID {
			n++
		}
	}
	return n
}

// Get returns the post with the given id.
func (s *Store) Get(id string) (models.Post, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Create prepends a new post authored by the current user. Admin posts are
// approved immediately; everyone else starts in pending. Empty categories
// default to ["General"].
func (s *Store) Create(input CreateInput) (models.Post, error) {
	user, ok := s.sessions.Current()
	if !ok {
		return models.Post{}, models.ErrNoSession
	}

	status := models.StatusPending
	if user.IsAdmin() {
		status = models.StatusApproved
	}

	categories := input.Categories
	if len(categories) == 0 {
		categories = []string{config.DefaultCategory}
	}

	now := s.Now()
	p := models.Post{
		ID:         s.nextID(),
		ChatroomID: input.ChatroomID,
		Content:    input.Content,
		Author:     user.Username,
		Categories: categories,
		Attachment: input.Attachment,
		Status:     status,
		Reactions:  []models.Reaction{},
		Comments:   []models.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.posts = append([]models.Post{p}, s.posts...)
	s.persist()
	return p, nil
}

// UpdateContent replaces the post body. Only the original author may edit.
func (s *Store) UpdateContent(postID, content string) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if s.posts[i].Author != user.Username {
			return models.ErrForbidden
		}
		s.posts[i].Content = content
		s.posts[i].UpdatedAt = s.Now()
		s.persist()
		return nil
	}
	return models.ErrNotFound
}

// AddReaction records the current user's reaction, replacing any prior
// reaction by the same user on that post.
func (s *Store) AddReaction(postID, emoji string) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		reactions := s.posts[i].Reactions[:0:0]
		for _, r := range s.posts[i].Reactions {
			if r.User != user.Username {
				reactions = append(reactions, r)
			}
		}
		now := s.Now()
		s.posts[i].Reactions = append(reactions, models.Reaction{
			Emoji:     emoji,
			User:      user.Username,
			Timestamp: now,
		})
		s.posts[i].UpdatedAt = now
		s.persist()
		return nil
	}
	return models.ErrNotFound
}

// AddComment appends a comment by the current user.
func (s *Store) AddComment(postID, content string) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		now := s.Now()
		s.posts[i].Comments = append(s.posts[i].Comments, models.Comment{
			Content:   content,
			User:      user.Username,
			Timestamp: now,
		})
		s.posts[i].UpdatedAt = now
		s.persist()
		return nil
	}
	return models.ErrNotFound
}

// DeleteComment removes the comment at the given position, shifting later
// comments down by one. Only the comment's author may delete it. An index
// that is out of range is a no-op; comments have no stable identity, so a
// stale index between two concurrent deletions cannot be detected here.
func (s *Store) DeleteComment(postID string, index int) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if index < 0 || index >= len(s.posts[i].Comments) {
			return nil
		}
		if s.posts[i].Comments[index].User != user.Username {
			return models.ErrForbidden
		}
		s.posts[i].Comments = append(s.posts[i].Comments[:index:index], s.posts[i].Comments[index+1:]...)
		s.posts[i].UpdatedAt = s.Now()
		s.persist()
		return nil
	}
	return models.ErrNotFound
}

// UpdateStatus sets the moderation status. Only admins may moderate.
func (s *Store) UpdateStatus(postID string, status models.Status) error {
	user, ok := s.sessions.Current()
	if !ok {
		return models.ErrNoSession
	}
	if !status.IsValid() {
		return models.ErrInvalidStatus
	}
	if !user.IsAdmin() {
		return models.ErrForbidden
	}

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].Status = status
		s.posts[i].UpdatedAt = s.Now()
		s.persist()
		return nil
	}
	return models.ErrNotFound
}

func (s *Store) persist() {
	storage.Set(s.adapter, storage.KeyPosts, s.posts)
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
