package ports

import (
	"context"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

// Page selects a window of an ordered result set. Number is 0-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int { return p.Number * p.Size }

// NewsFilter narrows a News listing. Empty fields do not filter.
// Contains variants are case-sensitive substring matches.
type NewsFilter struct {
	Title         string
	TitleContains string
	Text          string
	TextContains  string
	UserID        int64
}

// CommentFilter narrows a Comment listing. Empty fields do not filter.
type CommentFilter struct {
	Text         string
	TextContains string
	NewsID       int64
	UserID       int64
}

// Every List call returns rows ordered by creation time ascending, ties
// broken by id. A nil page returns every matching row.

// NewsRepository persists News rows.
type NewsRepository interface {
	// Create assigns the id and stores the row.
	Create(ctx context.Context, n *domain.News) error
	// Update overwrites title and text. Returns domain.ErrNewsNotFound when absent.
	Update(ctx context.Context, n *domain.News) error
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter NewsFilter, page *Page) ([]*domain.News, error)
	// Delete removes the News and every Comment referencing it as one store operation.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository persists Comment rows.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	// Update overwrites the text. Returns domain.ErrCommentNotFound when absent.
	Update(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter CommentFilter, page *Page) ([]*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository persists User rows.
type UserRepository interface {
	// Create assigns the id. A username collision may surface as domain.ErrUsernameReserved.
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes the user, its comments, its news and their comments as one store operation.
	Delete(ctx context.Context, id int64) error
}

// IDSequence hands out monotonically increasing ids per entity kind.
type IDSequence interface {
	Next(ctx context.Context, kind string) (int64, error)
}
