package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

const userColumns = "id, username, password_hash, active, roles"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create maps a unique index violation to domain.ErrUsernameReserved, closing
// the race between the service's existence check and the insert.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, active, roles) VALUES ($1, $2, $3, $4) RETURNING id`,
		u.Username, u.PasswordHash, u.Active, pq.Array(u.Roles.Names()),
	).Scan(&u.ID)
	if code, _ := pqCode(err); code == codeUniqueViolation {
		return domain.UsernameReserved(u.Username)
	}
	return err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = $1, password_hash = $2, active = $3, roles = $4 WHERE id = $5`,
		u.Username, u.PasswordHash, u.Active, pq.Array(u.Roles.Names()), u.ID,
	)
	if code, _ := pqCode(err); code == codeUniqueViolation {
		return domain.UsernameReserved(u.Username)
	}
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.UserNotFound(u.ID)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.UserNotFound(id)
	}
	return u, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return u, err
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Delete removes, in order: the user's comments, comments on the user's news,
// the user's news, the user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		steps := []string{
			`DELETE FROM comments WHERE user_id = $1`,
			`DELETE FROM comments WHERE news_id IN (SELECT id FROM news WHERE user_id = $1)`,
			`DELETE FROM news WHERE user_id = $1`,
		}
		for _, stmt := range steps {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return domain.UserNotFound(id)
		}
		return nil
	})
}

func scanUser(s scanner) (*domain.User, error) {
	var (
		u     domain.User
		names pq.StringArray
	)
	if err := s.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Active, &names); err != nil {
		return nil, err
	}
	roles, err := domain.ParseRoles(names)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", u.ID, err)
	}
	u.Roles = roles
	return &u, nil
}
