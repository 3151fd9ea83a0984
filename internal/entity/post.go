package entity

import "time"

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy is the single ownership predicate used by every mutation path.
func (p *Post) OwnedBy(principal Principal) bool {
	return p.AuthorID == principal.ID
}
