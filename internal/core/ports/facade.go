package ports

import (
	"context"
	"time"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

// --- Inputs (transport → facade) ---

type NewsInput struct {
	ID     int64
	Title  string
	Text   string
	UserID int64 // informational, ownership is read from storage
}

type CommentInput struct {
	ID     int64
	Text   string
	UserID int64
	NewsID int64
}

type UserInput struct {
	ID       int64
	Username string
	Password string // plain text, empty keeps the stored credential on update
	Active   bool
	Roles    domain.Roles
}

type RegistrationInput struct {
	Username string
	Password string
}

// --- Projections (facade → transport) ---

// NewsSummary is the flat News projection used in lists.
type NewsSummary struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Text      string
	UserID    int64
}

// NewsComment is a comment embedded in a NewsDetail.
type NewsComment struct {
	ID        int64
	CreatedAt time.Time
	Text      string
	UserID    int64
}

type NewsDetail struct {
	NewsSummary
	Comments []NewsComment
}

// CommentSummary is the flat Comment projection used in lists.
type CommentSummary struct {
	ID        int64
	CreatedAt time.Time
	Text      string
	UserID    int64
	NewsID    int64
}

// CommentDetail embeds a snapshot of the parent News.
type CommentDetail struct {
	ID        int64
	CreatedAt time.Time
	Text      string
	UserID    int64
	News      NewsSummary
}

type UserSummary struct {
	ID       int64
	Username string
	Active   bool
	Roles    domain.Roles
}

type UserNews struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Text      string
}

type UserComment struct {
	ID        int64
	CreatedAt time.Time
	Text      string
}

type UserDetail struct {
	UserSummary
	News     []UserNews
	Comments []UserComment
}

// NewsSearch selects one search variant; the first non-empty field wins.
type NewsSearch struct {
	Title         string
	TitleContains string
	Text          string
	TextContains  string
}

// CommentSearch selects one search variant; the first non-empty field wins.
type CommentSearch struct {
	Text         string
	TextContains string
}

// --- Facades ---
//
// Every mutating call takes the acting user explicitly. FindByID returns
// (nil, nil) when the row does not exist.

type NewsFacade interface {
	FindAll(ctx context.Context) ([]NewsSummary, error)
	FindPage(ctx context.Context, page Page) ([]NewsSummary, error)
	Search(ctx context.Context, q NewsSearch) ([]NewsSummary, error)
	FindByID(ctx context.Context, id int64) (*NewsDetail, error)
	FindByIDWithCommentPage(ctx context.Context, id int64, page Page) (*NewsDetail, error)
	Save(ctx context.Context, in NewsInput, actor *domain.User) (*NewsSummary, error)
	Update(ctx context.Context, pathID int64, in NewsInput, actor *domain.User) error
	DeleteByID(ctx context.Context, id int64, actor *domain.User) error
}

type CommentFacade interface {
	FindAll(ctx context.Context) ([]CommentSummary, error)
	FindPage(ctx context.Context, page Page) ([]CommentSummary, error)
	Search(ctx context.Context, q CommentSearch) ([]CommentSummary, error)
	FindByID(ctx context.Context, id int64) (*CommentDetail, error)
	Save(ctx context.Context, in CommentInput, actor *domain.User) (*CommentSummary, error)
	Update(ctx context.Context, pathID int64, in CommentInput, actor *domain.User) error
	DeleteByID(ctx context.Context, id int64, actor *domain.User) error
}

type UserFacade interface {
	FindAll(ctx context.Context) ([]UserSummary, error)
	FindByID(ctx context.Context, id int64) (*UserDetail, error)
	Save(ctx context.Context, in UserInput, actor *domain.User) (*UserSummary, error)
	Update(ctx context.Context, pathID int64, in UserInput, actor *domain.User) error
	DeleteByID(ctx context.Context, id int64, actor *domain.User) error
}

// AuthFacade covers the unauthenticated entry points.
type AuthFacade interface {
	Register(ctx context.Context, in RegistrationInput) (*UserSummary, error)
	Login(ctx context.Context, username, password string) (string, *UserSummary, error)
	// Authenticate resolves and verifies credentials for HTTP Basic requests.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
