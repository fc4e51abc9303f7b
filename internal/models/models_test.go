package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"classroom/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoleIsValid verifies the closed role vocabulary.
func TestRoleIsValid(t *testing.T) {
	assert.True(t, models.RoleAdmin.IsValid())
	assert.True(t, models.RoleUser.IsValid())
	assert.False(t, models.Role("owner").IsValid())
	assert.False(t, models.Role("").IsValid())
}

// TestStatusIsValid verifies the closed moderation status vocabulary.
func TestStatusIsValid(t *testing.T) {
	for _, s := range []models.Status{
		models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusNeedsWork,
	} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, models.Status("archived").IsValid())
}

// TestPostJSONShape verifies the persisted field names match the stored
// layout and that date fields round-trip through serialization.
func TestPostJSONShape(t *testing.T) {
	created := time.Date(2024, time.January, 16, 14, 30, 0, 0, time.UTC)
	p := models.Post{
		ID:         "2",
		ChatroomID: "1",
		Content:    "preview",
		Author:     "user",
		Categories: []string{"Blog"},
		Attachment: "https://example.com/a.png",
		Status:     models.StatusNeedsWork,
		Reactions:  []models.Reaction{{Emoji: "🔥", User: "admin", Timestamp: created}},
		Comments:   []models.Comment{{Content: "ok", User: "admin", Timestamp: created}},
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	for _, field := range []string{
		`"id"`, `"chatroomId"`, `"content"`, `"author"`, `"categories"`,
		`"attachment"`, `"status"`, `"reactions"`, `"comments"`,
		`"createdAt"`, `"updatedAt"`,
	} {
		assert.Contains(t, string(raw), field)
	}

	var revived models.Post
	require.NoError(t, json.Unmarshal(raw, &revived))
	assert.True(t, revived.CreatedAt.Equal(created))
	assert.True(t, revived.Comments[0].Timestamp.Equal(created))
}

// TestReactionJSON_OmitsZeroTimestamp keeps legacy compatible blobs for
// reactions that never recorded an event time.
func TestReactionJSON_OmitsZeroTimestamp(t *testing.T) {
	raw, err := json.Marshal(models.Reaction{Emoji: "👍", User: "user"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "timestamp")

	var legacy models.Reaction
	require.NoError(t, json.Unmarshal([]byte(`{"emoji":"👍","user":"user"}`), &legacy))
	assert.True(t, legacy.Timestamp.IsZero())
}

// TestUserIsAdmin covers the capability helper.
func TestUserIsAdmin(t *testing.T) {
	assert.True(t, models.User{Username: "a", Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, models.User{Username: "b", Role: models.RoleUser}.IsAdmin())
}
