// internal/repository/postgres/comment_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"commentbox/internal/domain"
	"commentbox/internal/repository"
)

// CommentRepository implements repository.CommentRepository for PostgreSQL.
type CommentRepository struct{}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sqlx.DB) repository.CommentRepository {
	return &CommentRepository{}
}

// CreateComment inserts a new comment.
func (r *CommentRepository) CreateComment(ctx context.Context, q repository.DBExecutor, c *domain.Comment) error {
	query := `INSERT INTO comments (id, author, body, domain_id, created_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query, c.ID, c.Author, c.Body, c.DomainID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListByDomainValue retrieves all comments belonging to the domain registered
// with the given value, oldest first. The join keeps comments scoped to
// exactly one domain; a value with no registered domain matches nothing.
func (r *CommentRepository) ListByDomainValue(ctx context.Context, q repository.DBExecutor, value string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	query := `SELECT c.id, c.author, c.body, c.domain_id, c.created_at
              FROM comments c
              JOIN domains d ON d.id = c.domain_id
              WHERE d.value = $1
              ORDER BY c.created_at ASC`
	err := q.SelectContext(ctx, &comments, query, value)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for domain %q: %w", value, err)
	}
	return comments, nil
}
