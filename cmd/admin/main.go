package main

import (
	"fmt"
	"log"
	"os"

	"classroom/backend/internal/chatroom"
	"classroom/backend/internal/config"
	"classroom/backend/internal/models"
	"classroom/backend/internal/post"
	"classroom/backend/internal/session"
	"classroom/backend/internal/storage"

	"github.com/joho/godotenv"
)

// Moderation CLI. Runs against the same local storage as the main binary
// with an admin session, so every capability check in the stores applies.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	path := os.Getenv(config.EnvDataPath)
	if path == "" {
		path = config.DefaultDataPath
	}
	backend, err := storage.OpenSQLite(path)
	if err != nil {
		log.Fatalf("failed to open storage at %s: %v", path, err)
	}
	defer backend.Close()
	adapter := storage.NewAdapter(backend)

	sessions := session.NewStore(adapter)
	rooms := chatroom.NewStore(adapter, sessions)
	posts := post.NewStore(adapter, sessions)
	sessions.Hydrate()
	rooms.Hydrate()
	posts.Hydrate()

	username := os.Getenv(config.EnvUsername)
	if username == "" {
		username = "admin"
	}
	sessions.Login(models.RoleAdmin, username)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: list-pending, set-status, add-member, remove-member")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list-pending":
		for _, p := range posts.Posts() {
			if p.Status == models.StatusPending {
				fmt.Printf("%s  [%s]  %s: %s\n", p.ID, p.ChatroomID, p.Author, p.Content)
			}
		}
	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <post_id> <pending|approved|rejected|needs-work>")
			os.Exit(1)
		}
		if err := posts.UpdateStatus(os.Args[2], models.Status(os.Args[3])); err != nil {
			log.Fatalf("Error updating status: %v", err)
		}
		fmt.Printf("Post %s is now %s.\n", os.Args[2], os.Args[3])
	case "add-member":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin add-member <chatroom_id> <name> [role]")
			os.Exit(1)
		}
		role := models.RoleUser
		if len(os.Args) > 4 {
			role = models.Role(os.Args[4])
			if !role.IsValid() {
				fmt.Println("Invalid role. Use admin or user.")
				os.Exit(1)
			}
		}
		member, err := rooms.AddMember(os.Args[2], os.Args[3], role)
		if err != nil {
			log.Fatalf("Error adding member: %v", err)
		}
		fmt.Printf("Member %s (%s) added to chatroom %s.\n", member.Name, member.ID, os.Args[2])
	case "remove-member":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin remove-member <chatroom_id> <member_id>")
			os.Exit(1)
		}
		if err := rooms.RemoveMember(os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error removing member: %v", err)
		}
		fmt.Printf("Member %s removed from chatroom %s.\n", os.Args[3], os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
