package chatroom

import (
	"time"

	"classroom/backend/internal/models"
)

// defaultChatrooms returns the fixed seed set installed on first run.
func defaultChatrooms() []models.Chatroom {
	return []models.Chatroom{
		{
			ID:          "1",
			Name:        "The Hive",
			Description: "Collaboration and Ideas",
			MemberCount: 12,
			PostCount:   8,
			Members: []models.Member{
				{ID: "1", Name: "admin", Role: models.RoleAdmin, IsOnline: true},
				{ID: "2", Name: "user", Role: models.RoleUser, IsOnline: true},
				{ID: "3", Name: "Alice Johnson", Role: models.RoleUser, IsOnline: false},
				{ID: "4", Name: "Bob Smith", Role: models.RoleUser, IsOnline: true},
				{ID: "5", Name: "Carol Davis", Role: models.RoleUser, IsOnline: false},
			},
			CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Mission Control",
			Description: "Project updates and discussions",
			MemberCount: 8,
			PostCount:   5,
			Members: []models.Member{
				{ID: "1", Name: "admin", Role: models.RoleAdmin, IsOnline: true},
				{ID: "2", Name: "user", Role: models.RoleUser, IsOnline: true},
				{ID: "6", Name: "David Wilson", Role: models.RoleUser, IsOnline: true},
				{ID: "7", Name: "Eva Brown", Role: models.RoleUser, IsOnline: false},
			},
			CreatedAt: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
