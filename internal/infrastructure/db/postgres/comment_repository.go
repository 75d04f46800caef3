package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.CommentRepository = (*CommentRepository)(nil)

const (
	commentColumns        = "id, created_at, text, user_id, news_id"
	commentNewsConstraint = "comments_news_id_fkey"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (created_at, text, user_id, news_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.CreatedAt.UTC(), c.Text, c.UserID, c.NewsID,
	).Scan(&c.ID)
	if code, constraint := pqCode(err); code == codeForeignKeyViolation {
		if constraint == commentNewsConstraint {
			return domain.NewsNotFound(c.NewsID)
		}
		return domain.UserNotFound(c.UserID)
	}
	return err
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, c.Text, c.ID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.CommentNotFound(c.ID)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.CommentNotFound(id)
	}
	return c, err
}

func (r *CommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, id)
}

func (r *CommentRepository) List(ctx context.Context, f ports.CommentFilter, page *ports.Page) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w where
	w.eq("text", f.Text)
	w.contains("text", f.TextContains)
	w.id("news_id", f.NewsID)
	w.id("user_id", f.UserID)

	query := `SELECT ` + commentColumns + ` FROM comments` + w.String() + ` ORDER BY created_at, id`
	if page != nil {
		query += w.limit(page.Size, page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.CommentNotFound(id)
	}
	return nil
}

func scanComment(s scanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := s.Scan(&c.ID, &c.CreatedAt, &c.Text, &c.UserID, &c.NewsID); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}
