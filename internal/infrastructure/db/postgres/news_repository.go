package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.NewsRepository = (*NewsRepository)(nil)

const newsColumns = "id, created_at, title, text, user_id"

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO news (created_at, title, text, user_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.CreatedAt.UTC(), n.Title, n.Text, n.UserID,
	).Scan(&n.ID)
	if code, _ := pqCode(err); code == codeForeignKeyViolation {
		return domain.UserNotFound(n.UserID)
	}
	return err
}

func (r *NewsRepository) Update(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE news SET title = $1, text = $2 WHERE id = $3`, n.Title, n.Text, n.ID)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.NewsNotFound(n.ID)
	}
	return nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
	n, err := scanNews(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewsNotFound(id)
	}
	return n, err
}

func (r *NewsRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM news WHERE id = $1)`, id)
}

func (r *NewsRepository) List(ctx context.Context, f ports.NewsFilter, page *ports.Page) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w where
	w.eq("title", f.Title)
	w.contains("title", f.TitleContains)
	w.eq("text", f.Text)
	w.contains("text", f.TextContains)
	w.id("user_id", f.UserID)

	query := `SELECT ` + newsColumns + ` FROM news` + w.String() + ` ORDER BY created_at, id`
	if page != nil {
		query += w.limit(page.Size, page.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Delete removes the comments, then the News, in one transaction.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE news_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return domain.NewsNotFound(id)
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNews(s scanner) (*domain.News, error) {
	var n domain.News
	if err := s.Scan(&n.ID, &n.CreatedAt, &n.Title, &n.Text, &n.UserID); err != nil {
		return nil, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return &n, nil
}
