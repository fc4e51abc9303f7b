package activity_test

import (
	"strings"
	"testing"
	"time"

	"classroom/backend/internal/activity"
	"classroom/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func samplePost() models.Post {
	return models.Post{
		ID:         "10",
		ChatroomID: "1",
		Content:    "Short update",
		Author:     "admin",
		Categories: []string{"Blog", "Portfolio"},
		Status:     models.StatusApproved,
		Reactions: []models.Reaction{
			{Emoji: "👍", User: "user", Timestamp: now.Add(-2 * time.Hour)},
			{Emoji: "🎉", User: "Alice Johnson"}, // legacy entry, no timestamp
		},
		Comments: []models.Comment{
			{Content: "Nice!", User: "user", Timestamp: now.Add(-1 * time.Hour)},
		},
		CreatedAt: now.Add(-48 * time.Hour),
		UpdatedAt: now.Add(-30 * time.Minute),
	}
}

// TestFromPosts_ExplodesPostEvents verifies each post yields one record per
// reaction and comment plus a single status record.
func TestFromPosts_ExplodesPostEvents(t *testing.T) {
	records := activity.FromPosts([]models.Post{samplePost()}, now)

	require.Len(t, records, 4)

	kinds := map[models.ActivityKind]int{}
	for _, rec := range records {
		kinds[rec.Kind]++
	}
	assert.Equal(t, 2, kinds[models.ActivityReaction])
	assert.Equal(t, 1, kinds[models.ActivityComment])
	assert.Equal(t, 1, kinds[models.ActivityStatus])
}

// TestFromPosts_UsesRealTimestampsWhenRecorded verifies reaction and
// comment records carry their stored event time.
func TestFromPosts_UsesRealTimestampsWhenRecorded(t *testing.T) {
	records := activity.FromPosts([]models.Post{samplePost()}, now)

	var reaction, comment, status models.Activity
	for _, rec := range records {
		switch {
		case rec.Kind == models.ActivityReaction && rec.User == "user":
			reaction = rec
		case rec.Kind == models.ActivityComment:
			comment = rec
		case rec.Kind == models.ActivityStatus:
			status = rec
		}
	}

	assert.True(t, reaction.Timestamp.Equal(now.Add(-2*time.Hour)))
	assert.True(t, comment.Timestamp.Equal(now.Add(-1*time.Hour)))
	assert.True(t, status.Timestamp.Equal(now.Add(-30*time.Minute)),
		"status records use the post's real UpdatedAt")
}

// TestFromPosts_SyntheticFallbackForLegacyData verifies entries without a
// stored timestamp get the deterministic index-derived approximation.
func TestFromPosts_SyntheticFallbackForLegacyData(t *testing.T) {
	records := activity.FromPosts([]models.Post{samplePost()}, now)

	var legacy models.Activity
	for _, rec := range records {
		if rec.Kind == models.ActivityReaction && rec.User == "Alice Johnson" {
			legacy = rec
		}
	}

	// Second reaction (index 1) falls back to now - 2 days.
	assert.True(t, legacy.Timestamp.Equal(now.Add(-48*time.Hour)))
}

// TestFromPosts_TitleAndTag verifies the display projection: content
// truncated to 50 characters and the first category as tag.
func TestFromPosts_TitleAndTag(t *testing.T) {
	long := samplePost()
	long.Content = strings.Repeat("x", 80)

	records := activity.FromPosts([]models.Post{long}, now)

	require.NotEmpty(t, records)
	assert.Equal(t, strings.Repeat("x", 50)+"...", records[0].PostTitle)
	assert.Equal(t, "Blog", records[0].PostTag)

	untagged := samplePost()
	untagged.Categories = nil
	records = activity.FromPosts([]models.Post{untagged}, now)
	assert.Equal(t, "General", records[0].PostTag)
}

// TestFilter_ByKindAndTag verifies both filter axes and the empty
// "no filter" convention.
func TestFilter_ByKindAndTag(t *testing.T) {
	records := activity.FromPosts([]models.Post{samplePost()}, now)

	assert.Len(t, activity.Filter(records, "", ""), 4)
	assert.Len(t, activity.Filter(records, models.ActivityReaction, ""), 2)
	assert.Len(t, activity.Filter(records, models.ActivityComment, "Blog"), 1)
	assert.Empty(t, activity.Filter(records, models.ActivityComment, "Docs"))
}

// TestSortNewestFirst verifies descending timestamp order.
func TestSortNewestFirst(t *testing.T) {
	records := activity.FromPosts([]models.Post{samplePost()}, now)

	activity.SortNewestFirst(records)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.After(records[i-1].Timestamp),
			"records must be ordered newest first")
	}
}

// TestGroupByDay_Labels verifies the Today / Yesterday / formatted-date
// bucketing in encounter order.
func TestGroupByDay_Labels(t *testing.T) {
	records := []models.Activity{
		{ID: "a", Timestamp: now.Add(-1 * time.Hour)},                      // Today
		{ID: "b", Timestamp: now.Add(-26 * time.Hour)},                     // Yesterday
		{ID: "c", Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}, // older
		{ID: "d", Timestamp: now.Add(-2 * time.Hour)},                      // Today again
	}
	activity.SortNewestFirst(records)

	groups := activity.GroupByDay(records, now)

	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Equal(t, "March 1, 2024", groups[2].Label)
}

// TestFromPosts_NoPosts verifies an empty input produces an empty feed.
func TestFromPosts_NoPosts(t *testing.T) {
	assert.Empty(t, activity.FromPosts(nil, now))
}
