package memory

import (
	"context"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.NewsRepository = (*NewsRepository)(nil)

type NewsRepository struct {
	s *Store
}

func (r *NewsRepository) Create(_ context.Context, n *domain.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[n.UserID]; !ok {
		return domain.UserNotFound(n.UserID)
	}
	n.ID = r.s.next("news")
	r.s.news[n.ID] = *n
	return nil
}

func (r *NewsRepository) Update(_ context.Context, n *domain.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.news[n.ID]
	if !ok {
		return domain.NewsNotFound(n.ID)
	}
	stored.Title = n.Title
	stored.Text = n.Text
	r.s.news[n.ID] = stored
	return nil
}

func (r *NewsRepository) FindByID(_ context.Context, id int64) (*domain.News, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.news[id]
	if !ok {
		return nil, domain.NewsNotFound(id)
	}
	return &n, nil
}

func (r *NewsRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.news[id]
	return ok, nil
}

func (r *NewsRepository) List(_ context.Context, f ports.NewsFilter, page *ports.Page) ([]*domain.News, error) {
	r.s.mu.RLock()
	rows := make([]newsRow, 0, len(r.s.news))
	for _, n := range r.s.news {
		if f.UserID != 0 && n.UserID != f.UserID {
			continue
		}
		if !matches(n.Title, f.Title, f.TitleContains) || !matches(n.Text, f.Text, f.TextContains) {
			continue
		}
		rows = append(rows, newsRow(n))
	}
	r.s.mu.RUnlock()

	sortRows(rows)
	rows = paginate(rows, page)

	out := make([]*domain.News, len(rows))
	for i := range rows {
		n := domain.News(rows[i])
		out[i] = &n
	}
	return out, nil
}

// Delete removes the comments first, then the News, under one lock.
func (r *NewsRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.news[id]; !ok {
		return domain.NewsNotFound(id)
	}
	r.s.deleteNewsLocked(id)
	return nil
}

func (s *Store) deleteNewsLocked(id int64) {
	for cid, c := range s.comments {
		if c.NewsID == id {
			delete(s.comments, cid)
		}
	}
	delete(s.news, id)
}
