package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// UserService guards username uniqueness and update identity.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Save stores a new user. The credential must already be hashed.
func (s *UserService) Save(ctx context.Context, u *domain.User) error {
	taken, err := s.repo.ExistsByUsername(ctx, u.Username)
	if err != nil {
		return err
	}
	if taken {
		return domain.UsernameReserved(u.Username)
	}

	u.Active = true
	if err := s.repo.Create(ctx, u); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("user created")
	return nil
}

// CheckUpdate validates existence first, then path/payload identity.
func (s *UserService) CheckUpdate(ctx context.Context, pathID, id int64) (*domain.User, error) {
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pathID != id {
		return nil, domain.PathMismatch(pathID, id)
	}
	return stored, nil
}

func (s *UserService) Update(ctx context.Context, pathID int64, u *domain.User) error {
	if u == nil {
		return fmt.Errorf("%w: missing user payload", domain.ErrBadRequestParameters)
	}
	stored, err := s.CheckUpdate(ctx, pathID, u.ID)
	if err != nil {
		return err
	}

	if stored.Username != u.Username {
		taken, err := s.repo.ExistsByUsername(ctx, u.Username)
		if err != nil {
			return err
		}
		if taken {
			return domain.UsernameReserved(u.Username)
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", u.ID).Msg("user updated")
	return nil
}

// DeleteByID removes the user along with everything it authored.
func (s *UserService) DeleteByID(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.UserNotFound(id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
