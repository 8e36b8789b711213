package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

// ForumRepository persists forum threads.
type ForumRepository interface {
	List(ctx context.Context, limit int64) ([]domain.ForumThread, error)
	Create(ctx context.Context, thread *domain.ForumThread) (*domain.ForumThread, error)
	Delete(ctx context.Context, threadID string) error
}
