package entity

import "errors"

// Domain errors, grouped by the HTTP status they map to. The mapping itself
// lives in the HTTP layer; everything not listed here surfaces as a 500 with
// a generic message.
var (
	// Validation (400)
	ErrTitleBodyRequired     = errors.New("title and body required")
	ErrCommentBodyRequired   = errors.New("comment body required")
	ErrEmailPasswordRequired = errors.New("email and password required")
	ErrInvalidCredentials    = errors.New("invalid credentials")

	// Forbidden (403)
	ErrNotPostOwner = errors.New("you can only modify your own posts")

	// Not found (404)
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
)
