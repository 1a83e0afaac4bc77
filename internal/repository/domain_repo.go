// internal/repository/domain_repo.go
package repository

import (
	"context"

	"commentbox/internal/domain"
)

// DomainRepository defines the interface for registered-domain data operations.
type DomainRepository interface {
	// CreateDomain adds a new domain using the provided DBExecutor.
	CreateDomain(ctx context.Context, q DBExecutor, d *domain.Domain) error
	// GetDomainByValue retrieves a domain by its exact registered value.
	// Returns util.ErrNotFound when no domain matches.
	GetDomainByValue(ctx context.Context, q DBExecutor, value string) (*domain.Domain, error)
}
