package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// NewsService enforces identity and existence checks before News writes.
type NewsService struct {
	repo   ports.NewsRepository
	logger zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, logger: logger}
}

func (s *NewsService) FindAll(ctx context.Context) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{}, nil)
}

func (s *NewsService) FindPage(ctx context.Context, page ports.Page) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{}, &page)
}

func (s *NewsService) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) FindByTitle(ctx context.Context, title string) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{Title: title}, nil)
}

func (s *NewsService) FindByTitleContains(ctx context.Context, title string) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{TitleContains: title}, nil)
}

func (s *NewsService) FindByText(ctx context.Context, text string) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{Text: text}, nil)
}

func (s *NewsService) FindByTextContains(ctx context.Context, text string) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{TextContains: text}, nil)
}

func (s *NewsService) FindByUserID(ctx context.Context, userID int64) ([]*domain.News, error) {
	return s.repo.List(ctx, ports.NewsFilter{UserID: userID}, nil)
}

func (s *NewsService) Save(ctx context.Context, n *domain.News) error {
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Msg("failed to create news")
		return fmt.Errorf("save news: %w", err)
	}
	s.logger.Info().Int64("news_id", n.ID).Int64("user_id", n.UserID).Msg("news created")
	return nil
}

// CheckUpdate validates path/payload identity first, then existence.
func (s *NewsService) CheckUpdate(ctx context.Context, pathID, id int64) (*domain.News, error) {
	if pathID != id {
		return nil, domain.PathMismatch(pathID, id)
	}
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *NewsService) Update(ctx context.Context, pathID int64, n *domain.News) error {
	if n == nil {
		return fmt.Errorf("%w: missing news payload", domain.ErrBadRequestParameters)
	}
	if pathID != n.ID {
		return domain.PathMismatch(pathID, n.ID)
	}
	exists, err := s.repo.Exists(ctx, n.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewsNotFound(n.ID)
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return err
	}
	s.logger.Info().Int64("news_id", n.ID).Msg("news updated")
	return nil
}

// DeleteByID removes the News together with its comments.
func (s *NewsService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewsNotFound(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("news_id", id).Msg("news deleted")
	return nil
}
