package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
)

// AccountService implements registration, login and profile lookup against
// the user directory. New accounts always start as plain members; role
// changes happen out of band.
type AccountService struct {
	directory ports.UserDirectory
	tokens    *TokenService
}

func NewAccountService(directory ports.UserDirectory, tokens *TokenService) *AccountService {
	return &AccountService{directory: directory, tokens: tokens}
}

func (s *AccountService) Register(ctx context.Context, username, password, email, displayName string) (*domain.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
		DisplayName:  displayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.directory.Create(ctx, user)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// A suspended or banned account cannot obtain a fresh token.
	if err := CheckSuspension(user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AccountService) Profile(ctx context.Context, username string) (*domain.User, error) {
	return s.directory.FindByUsername(ctx, username)
}
