package entity

import "time"

// PostView is the response shape for posts: the stored entity joined with
// the author's display name and counts derived at read time. AuthorName is
// null when the author no longer resolves.
type PostView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
	AuthorID     string    `json:"authorId"`
	AuthorName   *string   `json:"authorName"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
}

type CommentView struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
	AuthorID   string    `json:"authorId"`
	AuthorName *string   `json:"authorName"`
}
