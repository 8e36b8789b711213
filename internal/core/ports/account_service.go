package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

type AccountService interface {
	Register(ctx context.Context, username, password, email, displayName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, username string) (*domain.User, error)
}
