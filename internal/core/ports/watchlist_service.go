package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

type WatchlistService interface {
	List(ctx context.Context, username string) ([]domain.WatchlistEntry, error)
	Add(ctx context.Context, username, titleID, titleName, notes string) (*domain.WatchlistEntry, error)
	Remove(ctx context.Context, username, entryID string) error
}
