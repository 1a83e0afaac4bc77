// internal/domain/domain.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Domain represents a site registered by a user. Its value is matched exactly
// against the resolved request origin to scope comment reads and writes.
type Domain struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Value     string    `db:"value" json:"value"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewDomain creates a new Domain instance owned by the given user.
func NewDomain(value string, userID uuid.UUID) *Domain {
	return &Domain{
		ID:        uuid.New(),
		Value:     value,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}
