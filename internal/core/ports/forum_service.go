package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

type ForumService interface {
	List(ctx context.Context) ([]domain.ForumThread, error)
	Create(ctx context.Context, author, title, body string) (*domain.ForumThread, error)
	Delete(ctx context.Context, threadID string) error
}
