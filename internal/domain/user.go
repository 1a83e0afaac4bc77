// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered site owner. The password field holds a bcrypt
// hash and is never serialized into API responses.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewUser creates a new User instance with a fresh ID. The password must
// already be hashed by the caller.
func NewUser(username, hashedPassword string) *User {
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
	}
}
