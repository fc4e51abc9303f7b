package config

import "time"

const (
	// Session
	SessionDuration = 7 * 24 * time.Hour

	// Posts
	DefaultCategory = "General"
	PostTitleMaxLen = 50

	// Environment variables read by cmd
	EnvDataPath = "CLASSROOM_DATA_PATH"
	EnvUsername = "CLASSROOM_USERNAME"
	EnvRole     = "CLASSROOM_ROLE"

	DefaultDataPath = "classroom.db"
)
