package main

import (
	"log"
	"os"
	"time"

	"classroom/backend/internal/activity"
	"classroom/backend/internal/chatroom"
	"classroom/backend/internal/config"
	"classroom/backend/internal/models"
	"classroom/backend/internal/post"
	"classroom/backend/internal/session"
	"classroom/backend/internal/storage"

	"github.com/joho/godotenv"
)

// setupAdapter opens the local database, degrading to in-memory state when
// no durable storage is available.
func setupAdapter() (*storage.Adapter, func()) {
	path := os.Getenv(config.EnvDataPath)
	if path == "" {
		path = config.DefaultDataPath
	}

	backend, err := storage.OpenSQLite(path)
	if err != nil {
		log.Printf("ERROR: Failed to open storage at %s: %v (state will not persist)", path, err)
		return storage.NewAdapter(nil), func() {}
	}

	log.Printf("INFO: Using local storage at %s", path)
	return storage.NewAdapter(backend), func() { backend.Close() }
}

func main() {
	log.Println("Starting Classroom...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	adapter, closeStorage := setupAdapter()
	defer closeStorage()

	sessions := session.NewStore(adapter)
	rooms := chatroom.NewStore(adapter, sessions)
	posts := post.NewStore(adapter, sessions)

	sessions.Hydrate()
	rooms.Hydrate()
	posts.Hydrate()

	if _, ok := sessions.Current(); !ok {
		username := os.Getenv(config.EnvUsername)
		if username == "" {
			username = "admin"
		}
		role := models.Role(os.Getenv(config.EnvRole))
		if !role.IsValid() {
			role = models.RoleAdmin
		}
		sessions.Login(role, username)
	}

	user, _ := sessions.Current()
	log.Printf("INFO: Logged in as %s (%s)", user.Username, user.Role)

	now := time.Now()
	for _, room := range rooms.Chatrooms() {
		log.Printf("INFO: Chatroom %q: %d members, %d posts",
			room.Name, room.MemberCount, posts.CountForChatroom(room.ID))

		feed := activity.FromPosts(posts.ForChatroom(room.ID), now)
		activity.SortNewestFirst(feed)
		for _, group := range activity.GroupByDay(feed, now) {
			log.Printf("INFO:   %s: %d activity records", group.Label, len(group.Records))
		}
	}
}
