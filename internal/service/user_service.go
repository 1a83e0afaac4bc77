// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"commentbox/internal/domain"
	"commentbox/internal/repository"
	"commentbox/internal/util"
	"commentbox/pkg/db"
)

// bcryptCost trades hashing strength for widget-friendly response latency.
const bcryptCost = 7

// UserService defines the business logic for user registration.
type UserService interface {
	// Register creates a user and their first domain atomically. The
	// password arrives in plaintext, is hashed before storage, and is never
	// persisted or returned in plaintext. A failed domain insert rolls the
	// user insert back with it.
	Register(ctx context.Context, username, password, domainValue string) (*domain.User, *domain.Domain, error)
}

type userService struct {
	dbBeginner db.DBTxBeginner
	userRepo   repository.UserRepository
	domainRepo repository.DomainRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbBeginner db.DBTxBeginner,
	userRepo repository.UserRepository,
	domainRepo repository.DomainRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) UserService {
	return &userService{
		dbBeginner: dbBeginner,
		userRepo:   userRepo,
		domainRepo: domainRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

func (s *userService) Register(ctx context.Context, username, password, domainValue string) (*domain.User, *domain.Domain, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	user := domain.NewUser(username, string(hashed))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if errors.Is(err, util.ErrDuplicateEntry) {
			return nil, nil, &util.Error{
				Status:  http.StatusBadRequest,
				Message: "Username already taken",
			}
		}
		return nil, nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	newDomain := domain.NewDomain(domainValue, user.ID)
	if err := s.domainRepo.CreateDomain(ctx, txExecutor, newDomain); err != nil {
		// The deferred rollback removes the user row with the failed domain
		// insert, so no registration ever leaves a user without a domain.
		return nil, nil, fmt.Errorf("register: failed to create domain: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return user, newDomain, nil
}
