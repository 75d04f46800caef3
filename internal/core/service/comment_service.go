package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// CommentService enforces identity and existence checks before Comment writes.
type CommentService struct {
	repo   ports.CommentRepository
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger}
}

func (s *CommentService) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{}, nil)
}

func (s *CommentService) FindPage(ctx context.Context, page ports.Page) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{}, &page)
}

func (s *CommentService) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByNewsID lists the comments of one News; a nil page returns all of them.
func (s *CommentService) FindByNewsID(ctx context.Context, newsID int64, page *ports.Page) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{NewsID: newsID}, page)
}

func (s *CommentService) FindByUserID(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{UserID: userID}, nil)
}

func (s *CommentService) FindByText(ctx context.Context, text string) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{Text: text}, nil)
}

func (s *CommentService) FindByTextContains(ctx context.Context, text string) ([]*domain.Comment, error) {
	return s.repo.List(ctx, ports.CommentFilter{TextContains: text}, nil)
}

func (s *CommentService) Save(ctx context.Context, c *domain.Comment) error {
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Int64("news_id", c.NewsID).Msg("failed to create comment")
		return fmt.Errorf("save comment: %w", err)
	}
	s.logger.Info().Int64("comment_id", c.ID).Int64("news_id", c.NewsID).Msg("comment created")
	return nil
}

func (s *CommentService) CheckUpdate(ctx context.Context, pathID, id int64) (*domain.Comment, error) {
	if pathID != id {
		return nil, domain.PathMismatch(pathID, id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CommentService) Update(ctx context.Context, pathID int64, c *domain.Comment) error {
	if c == nil {
		return fmt.Errorf("%w: missing comment payload", domain.ErrBadRequestParameters)
	}
	if pathID != c.ID {
		return domain.PathMismatch(pathID, c.ID)
	}
	exists, err := s.repo.Exists(ctx, c.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.CommentNotFound(c.ID)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	s.logger.Info().Int64("comment_id", c.ID).Msg("comment updated")
	return nil
}

func (s *CommentService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.CommentNotFound(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("comment_id", id).Msg("comment deleted")
	return nil
}
