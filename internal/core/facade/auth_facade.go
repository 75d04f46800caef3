package facade

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// AuthFacade implements self-registration and credential checks.
type AuthFacade struct {
	users  ports.UserService
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthFacade(users ports.UserService, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthFacade {
	return &AuthFacade{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an active SUBSCRIBER account.
func (f *AuthFacade) Register(ctx context.Context, in ports.RegistrationInput) (*ports.UserSummary, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrBadRequestParameters)
	}

	hash, err := f.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Active:       true,
		Roles:        domain.NewRoles(domain.RoleSubscriber),
	}
	if err := f.users.Save(ctx, u); err != nil {
		return nil, err
	}
	out := toUserSummary(u)
	return &out, nil
}

func (f *AuthFacade) Login(ctx context.Context, username, password string) (string, *ports.UserSummary, error) {
	u, err := f.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := f.tokens.Issue(u)
	if err != nil {
		return "", nil, err
	}
	out := toUserSummary(u)
	return token, &out, nil
}

// Authenticate returns domain.ErrInvalidCredentials for unknown users, wrong
// passwords and deactivated accounts alike.
func (f *AuthFacade) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	u, err := f.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := f.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.Active {
		f.logger.Debug().Str("username", username).Msg("inactive account rejected")
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin creates an active ADMIN account unless the username is already
// held. It reports whether a row was created.
func (f *AuthFacade) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, fmt.Errorf("%w: admin username and password are required", domain.ErrBadRequestParameters)
	}

	if _, err := f.users.FindByUsername(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hash, err := f.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	u := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Active:       true,
		Roles:        domain.NewRoles(domain.RoleAdmin),
	}
	if err := f.users.Save(ctx, u); err != nil {
		if errors.Is(err, domain.ErrUsernameReserved) {
			return false, nil
		}
		return false, err
	}
	f.logger.Info().Str("username", username).Int64("user_id", u.ID).Msg("bootstrap admin created")
	return true, nil
}
