// Package memory is a process-local storage backend for development and tests.
// All three repositories share one Store so cascades run under a single lock.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// Store holds every table behind one mutex.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]domain.User
	news     map[int64]domain.News
	comments map[int64]domain.Comment
	seq      map[string]int64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		news:     make(map[int64]domain.News),
		comments: make(map[int64]domain.Comment),
		seq:      make(map[string]int64),
	}
}

// Repositories returns the three repository views over s.
func (s *Store) Repositories() (*NewsRepository, *CommentRepository, *UserRepository) {
	return &NewsRepository{s: s}, &CommentRepository{s: s}, &UserRepository{s: s}
}

func (s *Store) next(kind string) int64 {
	s.seq[kind]++
	return s.seq[kind]
}

type ordered interface {
	created() time.Time
	id() int64
}

type newsRow domain.News

func (n newsRow) created() time.Time { return n.CreatedAt }
func (n newsRow) id() int64          { return n.ID }

type commentRow domain.Comment

func (c commentRow) created() time.Time { return c.CreatedAt }
func (c commentRow) id() int64          { return c.ID }

func sortRows[T ordered](rows []T) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.created().Equal(b.created()) {
			return a.created().Before(b.created())
		}
		return a.id() < b.id()
	})
}

func paginate[T any](rows []T, page *ports.Page) []T {
	if page == nil {
		return rows
	}
	start := page.Offset()
	if start < 0 || start >= len(rows) || page.Size <= 0 {
		return []T{}
	}
	end := start + page.Size
	if end < start || end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func matches(value, exact, contains string) bool {
	if exact != "" && value != exact {
		return false
	}
	if contains != "" && !strings.Contains(value, contains) {
		return false
	}
	return true
}

// Ping always succeeds; it satisfies the readiness probe.
func (s *Store) Ping(_ context.Context) error { return nil }
