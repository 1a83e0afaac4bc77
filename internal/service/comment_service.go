// internal/service/comment_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"commentbox/internal/domain"
	"commentbox/internal/repository"
	"commentbox/internal/util"
)

// CommentService defines the business logic for origin-scoped comments.
type CommentService interface {
	// ListByOrigin returns the comments registered against the domain whose
	// value equals the resolved origin host, oldest first. An unresolved or
	// unregistered origin yields an empty list.
	ListByOrigin(ctx context.Context, originHost string) ([]domain.Comment, error)
	// Create posts a comment against the domain matching the origin host.
	// If no domain matches, it fails with a 404 naming the unmatched origin
	// and no comment row is created.
	Create(ctx context.Context, originHost, author, body string) (*domain.Comment, error)
}

type commentService struct {
	dbExecutor  repository.DBExecutor
	commentRepo repository.CommentRepository
	domainRepo  repository.DomainRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	dbExecutor repository.DBExecutor,
	commentRepo repository.CommentRepository,
	domainRepo repository.DomainRepository,
) CommentService {
	return &commentService{
		dbExecutor:  dbExecutor,
		commentRepo: commentRepo,
		domainRepo:  domainRepo,
	}
}

func (s *commentService) ListByOrigin(ctx context.Context, originHost string) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListByDomainValue(ctx, s.dbExecutor, originHost)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, originHost, author, body string) (*domain.Comment, error) {
	d, err := s.domainRepo.GetDomainByValue(ctx, s.dbExecutor, originHost)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.NewNotFoundError(fmt.Sprintf("Domain not registered: %q", originHost))
		}
		return nil, fmt.Errorf("create comment: failed to resolve domain: %w", err)
	}

	comment := domain.NewComment(author, body, d.ID)
	if err := s.commentRepo.CreateComment(ctx, s.dbExecutor, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}
