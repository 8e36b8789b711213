package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
)

// WatchlistService manages a member's saved titles.
type WatchlistService struct {
	repo ports.WatchlistRepository
}

func NewWatchlistService(repo ports.WatchlistRepository) *WatchlistService {
	return &WatchlistService{repo: repo}
}

func (s *WatchlistService) List(ctx context.Context, username string) ([]domain.WatchlistEntry, error) {
	return s.repo.ListByUsername(ctx, username)
}

func (s *WatchlistService) Add(ctx context.Context, username, titleID, titleName, notes string) (*domain.WatchlistEntry, error) {
	entry := &domain.WatchlistEntry{
		ID:        uuid.NewString(),
		Username:  username,
		TitleID:   titleID,
		TitleName: titleName,
		Notes:     notes,
		AddedAt:   time.Now().UTC(),
	}
	return s.repo.Add(ctx, entry)
}

func (s *WatchlistService) Remove(ctx context.Context, username, entryID string) error {
	return s.repo.Remove(ctx, username, entryID)
}
