package models

import "time"

// Status is the moderation state of a post.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusNeedsWork Status = "needs-work"
)

// IsValid reports whether s is one of the known moderation statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsWork:
		return true
	}
	return false
}

// Reaction is a single emoji reaction on a post. A user holds at most one
// reaction per post; adding a new one replaces the previous.
type Reaction struct {
	Emoji string `json:"emoji"`
	User  string `json:"user"`
	// Timestamp is the real event time, stamped when the reaction is added.
	// Data written by older versions has no timestamp; readers fall back to
	// an index-derived approximation.
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Comment is one entry of a post's ordered, append-only comment sequence.
// Comments have no stable identity and are addressed by position.
type Comment struct {
	Content   string    `json:"content"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a moderated content unit within a chatroom.
type Post struct {
	// ID is the unique identifier of the post (epoch-ms based).
	ID string `json:"id"`
	// ChatroomID references the chatroom the post belongs to.
	ChatroomID string `json:"chatroomId"`
	// Content is the post body.
	Content string `json:"content"`
	// Author is the username of the creator.
	Author string `json:"author"`
	// Categories tags the post; never empty, defaults to ["General"].
	Categories []string `json:"categories"`
	// Attachment is an optional link to attached material.
	Attachment string `json:"attachment,omitempty"`
	// Status is the moderation state; settable only by admins.
	Status Status `json:"status"`
	// Reactions holds at most one entry per user.
	Reactions []Reaction `json:"reactions"`
	// Comments is the ordered comment sequence.
	Comments []Comment `json:"comments"`
	// CreatedAt is when the post was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed on every mutation of the post.
	UpdatedAt time.Time `json:"updatedAt"`
}
