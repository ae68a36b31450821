package domain

import "errors"

// Post is a record owned by the remote API. It is only ever decoded from
// responses and never mutated locally.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// NewPost is the payload for creating or replacing a post.
type NewPost struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

var (
	ErrInvalidLimit = errors.New("limit must not be negative")
	ErrInvalidID    = errors.New("post id must be positive")
)
