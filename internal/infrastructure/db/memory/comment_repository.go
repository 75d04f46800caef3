package memory

import (
	"context"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Create(_ context.Context, c *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.news[c.NewsID]; !ok {
		return domain.NewsNotFound(c.NewsID)
	}
	if _, ok := r.s.users[c.UserID]; !ok {
		return domain.UserNotFound(c.UserID)
	}
	c.ID = r.s.next("comment")
	r.s.comments[c.ID] = *c
	return nil
}

func (r *CommentRepository) Update(_ context.Context, c *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.comments[c.ID]
	if !ok {
		return domain.CommentNotFound(c.ID)
	}
	stored.Text = c.Text
	r.s.comments[c.ID] = stored
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, domain.CommentNotFound(id)
	}
	return &c, nil
}

func (r *CommentRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.comments[id]
	return ok, nil
}

func (r *CommentRepository) List(_ context.Context, f ports.CommentFilter, page *ports.Page) ([]*domain.Comment, error) {
	r.s.mu.RLock()
	rows := make([]commentRow, 0, len(r.s.comments))
	for _, c := range r.s.comments {
		if f.NewsID != 0 && c.NewsID != f.NewsID {
			continue
		}
		if f.UserID != 0 && c.UserID != f.UserID {
			continue
		}
		if !matches(c.Text, f.Text, f.TextContains) {
			continue
		}
		rows = append(rows, commentRow(c))
	}
	r.s.mu.RUnlock()

	sortRows(rows)
	rows = paginate(rows, page)

	out := make([]*domain.Comment, len(rows))
	for i := range rows {
		c := domain.Comment(rows[i])
		out[i] = &c
	}
	return out, nil
}

func (r *CommentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return domain.CommentNotFound(id)
	}
	delete(r.s.comments, id)
	return nil
}
