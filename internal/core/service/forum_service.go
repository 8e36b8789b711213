package service

import (
	"context"
	"time"

	"github.com/screenhive/platform/internal/core/domain"
	"github.com/screenhive/platform/internal/core/ports"
)

const defaultThreadListLimit = 50

// ForumService manages community discussion threads.
type ForumService struct {
	repo ports.ForumRepository
}

func NewForumService(repo ports.ForumRepository) *ForumService {
	return &ForumService{repo: repo}
}

func (s *ForumService) List(ctx context.Context) ([]domain.ForumThread, error) {
	return s.repo.List(ctx, defaultThreadListLimit)
}

func (s *ForumService) Create(ctx context.Context, author, title, body string) (*domain.ForumThread, error) {
	now := time.Now().UTC()
	thread := &domain.ForumThread{
		Title:     title,
		Body:      body,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, thread)
}

func (s *ForumService) Delete(ctx context.Context, threadID string) error {
	return s.repo.Delete(ctx, threadID)
}
