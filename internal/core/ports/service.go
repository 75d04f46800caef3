package ports

import (
	"context"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

// NewsService is the consistency layer above NewsRepository.
type NewsService interface {
	FindAll(ctx context.Context) ([]*domain.News, error)
	FindPage(ctx context.Context, page Page) ([]*domain.News, error)
	FindByID(ctx context.Context, id int64) (*domain.News, error)
	FindByTitle(ctx context.Context, title string) ([]*domain.News, error)
	FindByTitleContains(ctx context.Context, title string) ([]*domain.News, error)
	FindByText(ctx context.Context, text string) ([]*domain.News, error)
	FindByTextContains(ctx context.Context, text string) ([]*domain.News, error)
	FindByUserID(ctx context.Context, userID int64) ([]*domain.News, error)
	Save(ctx context.Context, n *domain.News) error
	// CheckUpdate runs the update consistency checks and returns the stored row.
	CheckUpdate(ctx context.Context, pathID, id int64) (*domain.News, error)
	Update(ctx context.Context, pathID int64, n *domain.News) error
	DeleteByID(ctx context.Context, id int64) error
}

// CommentService is the consistency layer above CommentRepository.
type CommentService interface {
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	FindPage(ctx context.Context, page Page) ([]*domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByNewsID(ctx context.Context, newsID int64, page *Page) ([]*domain.Comment, error)
	FindByUserID(ctx context.Context, userID int64) ([]*domain.Comment, error)
	FindByText(ctx context.Context, text string) ([]*domain.Comment, error)
	FindByTextContains(ctx context.Context, text string) ([]*domain.Comment, error)
	Save(ctx context.Context, c *domain.Comment) error
	CheckUpdate(ctx context.Context, pathID, id int64) (*domain.Comment, error)
	Update(ctx context.Context, pathID int64, c *domain.Comment) error
	DeleteByID(ctx context.Context, id int64) error
}

// UserService is the consistency layer above UserRepository.
type UserService interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Save expects an already hashed credential.
	Save(ctx context.Context, u *domain.User) error
	CheckUpdate(ctx context.Context, pathID, id int64) (*domain.User, error)
	Update(ctx context.Context, pathID int64, u *domain.User) error
	DeleteByID(ctx context.Context, id int64) error
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
