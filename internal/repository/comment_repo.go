// internal/repository/comment_repo.go
package repository

import (
	"context"

	"commentbox/internal/domain"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	// CreateComment inserts a new comment using the provided DBExecutor.
	CreateComment(ctx context.Context, q DBExecutor, c *domain.Comment) error
	// ListByDomainValue retrieves all comments whose domain's registered
	// value equals the given value, oldest first. An unknown value yields an
	// empty slice, not an error.
	ListByDomainValue(ctx context.Context, q DBExecutor, value string) ([]domain.Comment, error)
}
