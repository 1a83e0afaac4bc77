// internal/domain/comment.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a single comment posted against a registered domain. Comments are
// immutable after creation.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Author    string    `db:"author" json:"author"`
	Body      string    `db:"body" json:"body"`
	DomainID  uuid.UUID `db:"domain_id" json:"domain_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewComment creates a new Comment instance tagged with the given domain.
func NewComment(author, body string, domainID uuid.UUID) *Comment {
	return &Comment{
		ID:        uuid.New(),
		Author:    author,
		Body:      body,
		DomainID:  domainID,
		CreatedAt: time.Now().UTC(),
	}
}
