package models

import "errors"

var (
	// ErrNoSession is returned by store operations that require a logged-in
	// user when no valid session is present.
	ErrNoSession = errors.New("no active session")
	// ErrForbidden is returned when the current session lacks the capability
	// for the requested operation (non-admin moderating, non-author editing).
	ErrForbidden = errors.New("operation not permitted for current user")
	// ErrNotFound is returned when the referenced chatroom or post does not
	// exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyName rejects creation of chatrooms without a name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrInvalidStatus rejects unknown moderation status values.
	ErrInvalidStatus = errors.New("invalid post status")
)
