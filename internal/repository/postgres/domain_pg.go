// internal/repository/postgres/domain_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"commentbox/internal/domain"
	"commentbox/internal/repository"
	"commentbox/internal/util"
)

// DomainRepository implements repository.DomainRepository for PostgreSQL.
type DomainRepository struct{}

// NewDomainRepository creates a new DomainRepository.
func NewDomainRepository(db *sqlx.DB) repository.DomainRepository {
	return &DomainRepository{}
}

// CreateDomain inserts a new registered domain.
func (r *DomainRepository) CreateDomain(ctx context.Context, q repository.DBExecutor, d *domain.Domain) error {
	query := `INSERT INTO domains (id, value, user_id, created_at)
              VALUES ($1, $2, $3, $4)`
	_, err := q.ExecContext(ctx, query, d.ID, d.Value, d.UserID, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create domain: %w", err)
	}
	return nil
}

// GetDomainByValue retrieves a domain by its exact registered value.
func (r *DomainRepository) GetDomainByValue(ctx context.Context, q repository.DBExecutor, value string) (*domain.Domain, error) {
	var d domain.Domain
	query := `SELECT id, value, user_id, created_at FROM domains WHERE value = $1`
	err := q.GetContext(ctx, &d, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get domain by value %q: %w", value, err)
	}
	return &d, nil
}
