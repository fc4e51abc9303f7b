package post

import (
	"time"

	"classroom/backend/internal/models"
)

// defaultPosts returns the fixed seed set installed on first run. Seed
// comments are stamped at seed time rather than a fixed date.
func defaultPosts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:         "1",
			ChatroomID: "1",
			Content:    "Welcome to The Hive! Let's start by sharing our ideas and collaborating on exciting projects.",
			Author:     "admin",
			Categories: []string{"General"},
			Status:     models.StatusApproved,
			Reactions: []models.Reaction{
				{Emoji: "👍", User: "user"},
				{Emoji: "🎉", User: "Alice Johnson"},
			},
			Comments: []models.Comment{
				{Content: "Excited to be here!", User: "user", Timestamp: now},
				{Content: "Looking forward to learning together", User: "Bob Smith", Timestamp: now},
			},
			CreatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			ChatroomID: "1",
			Content:    "I've been working on a new React component library. Here's a preview of the button component with various states and animations.",
			Author:     "user",
			Categories: []string{"Blog", "Portfolio"},
			Attachment: "https://example.com/component-preview.png",
			Status:     models.StatusNeedsWork,
			Reactions: []models.Reaction{
				{Emoji: "🔥", User: "admin"},
			},
			Comments: []models.Comment{
				{Content: "Great work! Consider adding more accessibility features.", User: "admin", Timestamp: now},
			},
			CreatedAt: time.Date(2024, time.January, 16, 14, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 16, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			ChatroomID: "2",
			Content:    "Here's our new project documentation. It includes project updates, milestones, and important discussions.",
			Author:     "admin",
			Categories: []string{"Landing Page", "Documentation"},
			Attachment: "https://example.com/project-docs",
			Status:     models.StatusApproved,
			Reactions: []models.Reaction{
				{Emoji: "✨", User: "user"},
				{Emoji: "👏", User: "David Wilson"},
			},
			Comments:  []models.Comment{},
			CreatedAt: time.Date(2024, time.January, 20, 9, 15, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.January, 20, 9, 15, 0, 0, time.UTC),
		},
	}
}
