package ports

import (
	"context"

	"github.com/screenhive/platform/internal/core/domain"
)

// WatchlistRepository persists watchlist entries keyed by owner username.
type WatchlistRepository interface {
	ListByUsername(ctx context.Context, username string) ([]domain.WatchlistEntry, error)
	Add(ctx context.Context, entry *domain.WatchlistEntry) (*domain.WatchlistEntry, error)
	Remove(ctx context.Context, username, entryID string) error
}
