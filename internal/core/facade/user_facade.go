package facade

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

type UserFacade struct {
	users    ports.UserService
	news     ports.NewsService
	comments ports.CommentService
	hasher   ports.PasswordHasher
	logger   zerolog.Logger
}

func NewUserFacade(
	users ports.UserService,
	news ports.NewsService,
	comments ports.CommentService,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) *UserFacade {
	return &UserFacade{users: users, news: news, comments: comments, hasher: hasher, logger: logger}
}

func (f *UserFacade) FindAll(ctx context.Context) ([]ports.UserSummary, error) {
	items, err := f.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.UserSummary, len(items))
	for i, u := range items {
		out[i] = toUserSummary(u)
	}
	return out, nil
}

// FindByID embeds summaries of everything the user authored.
func (f *UserFacade) FindByID(ctx context.Context, id int64) (*ports.UserDetail, error) {
	u, err := f.users.FindByID(ctx, id)
	if err != nil {
		if absent(err) {
			return nil, nil
		}
		return nil, err
	}
	news, err := f.news.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := f.comments.FindByUserID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDetail(u, news, comments), nil
}

// Save creates a user on behalf of an administrator. A user created without
// roles becomes a SUBSCRIBER.
func (f *UserFacade) Save(ctx context.Context, in ports.UserInput, actor *domain.User) (*ports.UserSummary, error) {
	if !domain.CanCreateUser(actor) {
		return nil, domain.Deny("create user", actor, 0)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrBadRequestParameters)
	}

	hash, err := f.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	roles := in.Roles
	if roles.Empty() {
		roles = domain.NewRoles(domain.RoleSubscriber)
	}

	u := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := f.users.Save(ctx, u); err != nil {
		return nil, err
	}
	out := toUserSummary(u)
	return &out, nil
}

// Update lets users edit themselves. Only an administrator may change roles
// or the active flag; an empty password keeps the stored credential.
func (f *UserFacade) Update(ctx context.Context, pathID int64, in ports.UserInput, actor *domain.User) error {
	stored, err := f.users.CheckUpdate(ctx, pathID, in.ID)
	if err != nil {
		return err
	}
	if !domain.CanModifyUser(actor, stored.ID) {
		f.logger.Debug().Int64("user_id", stored.ID).Msg("user update denied")
		return domain.Deny("update user", actor, stored.ID)
	}

	updated := *stored
	updated.Username = in.Username
	if in.Password != "" {
		hash, err := f.hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		updated.PasswordHash = hash
	}
	if actor.Roles.Has(domain.RoleAdmin) {
		updated.Active = in.Active
		if !in.Roles.Empty() {
			updated.Roles = in.Roles
		}
	}
	return f.users.Update(ctx, pathID, &updated)
}

func (f *UserFacade) DeleteByID(ctx context.Context, id int64, actor *domain.User) error {
	stored, err := f.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyUser(actor, stored.ID) {
		f.logger.Debug().Int64("user_id", id).Msg("user delete denied")
		return domain.Deny("delete user", actor, stored.ID)
	}
	return f.users.DeleteByID(ctx, id)
}
