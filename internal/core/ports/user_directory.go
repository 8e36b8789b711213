package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

// UserDirectory is the principal-lookup collaborator consumed by the
// authentication gates. The core only ever reads principals through it.
type UserDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
