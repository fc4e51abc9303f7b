package models

import "time"

// Member is a participant of a chatroom.
type Member struct {
	// ID identifies the member within the chatroom list.
	ID string `json:"id"`
	// Name is the member's display name.
	Name string `json:"name"`
	// Role mirrors the session role values ("admin" or "user").
	Role Role `json:"role"`
	// IsOnline is a display hint; it is not kept up to date by the store.
	IsOnline bool `json:"isOnline"`
}

// Chatroom is a named collaborative space with a membership list.
// The chatroom store owns the list exclusively; callers never mutate it
// directly.
type Chatroom struct {
	// ID is the unique identifier of the chatroom (epoch-ms based).
	ID string `json:"id"`
	// Name is the chatroom's display name.
	Name string `json:"name"`
	// Description is a short free-form summary.
	Description string `json:"description"`
	// MemberCount always equals len(Members) after every membership change.
	MemberCount int `json:"memberCount"`
	// PostCount is a static display hint set at creation; it is not
	// recomputed from the actual post list.
	PostCount int `json:"postCount"`
	// Members is the current membership list.
	Members []Member `json:"members"`
	// CreatedAt is when the chatroom was created.
	CreatedAt time.Time `json:"createdAt"`
}
