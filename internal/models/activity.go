package models

import "time"

// ActivityKind classifies a derived activity record.
type ActivityKind string

const (
	ActivityReaction ActivityKind = "reaction"
	ActivityComment  ActivityKind = "comment"
	ActivityStatus   ActivityKind = "status"
)

// Activity is a read-only projection of a post event for feed display.
// Records are derived from the post list on demand and never persisted.
// Ordering is approximate chronology, not an authoritative audit trail.
type Activity struct {
	ID        string
	Kind      ActivityKind
	PostID    string
	PostTitle string // post content truncated for display
	PostTag   string // first category, "General" when untagged
	User      string
	Content   string // emoji, comment text, or status value
	Timestamp time.Time
}
