package facade

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

type NewsFacade struct {
	news     ports.NewsService
	comments ports.CommentService
	now      Clock
	logger   zerolog.Logger
}

func NewNewsFacade(news ports.NewsService, comments ports.CommentService, logger zerolog.Logger) *NewsFacade {
	return &NewsFacade{news: news, comments: comments, now: utcNow, logger: logger}
}

func (f *NewsFacade) FindAll(ctx context.Context) ([]ports.NewsSummary, error) {
	items, err := f.news.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toNewsSummaries(items), nil
}

func (f *NewsFacade) FindPage(ctx context.Context, page ports.Page) ([]ports.NewsSummary, error) {
	items, err := f.news.FindPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return toNewsSummaries(items), nil
}

func (f *NewsFacade) Search(ctx context.Context, q ports.NewsSearch) ([]ports.NewsSummary, error) {
	var (
		items []*domain.News
		err   error
	)
	switch {
	case q.Title != "":
		items, err = f.news.FindByTitle(ctx, q.Title)
	case q.TitleContains != "":
		items, err = f.news.FindByTitleContains(ctx, q.TitleContains)
	case q.Text != "":
		items, err = f.news.FindByText(ctx, q.Text)
	case q.TextContains != "":
		items, err = f.news.FindByTextContains(ctx, q.TextContains)
	default:
		items, err = f.news.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toNewsSummaries(items), nil
}

// FindByID embeds every comment of the News.
func (f *NewsFacade) FindByID(ctx context.Context, id int64) (*ports.NewsDetail, error) {
	return f.findByID(ctx, id, nil)
}

// FindByIDWithCommentPage embeds one page of comments; the News itself is not paged.
func (f *NewsFacade) FindByIDWithCommentPage(ctx context.Context, id int64, page ports.Page) (*ports.NewsDetail, error) {
	return f.findByID(ctx, id, &page)
}

func (f *NewsFacade) findByID(ctx context.Context, id int64, page *ports.Page) (*ports.NewsDetail, error) {
	n, err := f.news.FindByID(ctx, id)
	if err != nil {
		if absent(err) {
			return nil, nil
		}
		return nil, err
	}
	comments, err := f.comments.FindByNewsID(ctx, id, page)
	if err != nil {
		return nil, err
	}
	return toNewsDetail(n, comments), nil
}

// Save creates a News owned by the actor, stamped with the current time.
func (f *NewsFacade) Save(ctx context.Context, in ports.NewsInput, actor *domain.User) (*ports.NewsSummary, error) {
	if !domain.CanCreateNews(actor) {
		return nil, domain.Deny("create news", actor, 0)
	}

	n := &domain.News{
		CreatedAt: f.now(),
		Title:     in.Title,
		Text:      in.Text,
		UserID:    actor.ID,
	}
	if err := f.news.Save(ctx, n); err != nil {
		return nil, err
	}
	out := toNewsSummary(n)
	return &out, nil
}

// Update rewrites title and text. Owner, date and comments are kept.
func (f *NewsFacade) Update(ctx context.Context, pathID int64, in ports.NewsInput, actor *domain.User) error {
	stored, err := f.news.CheckUpdate(ctx, pathID, in.ID)
	if err != nil {
		return err
	}
	if !domain.CanModifyNews(actor, stored.UserID) {
		f.logger.Debug().Int64("news_id", stored.ID).Msg("news update denied")
		return domain.Deny("update news", actor, stored.UserID)
	}

	stored.Title = in.Title
	stored.Text = in.Text
	return f.news.Update(ctx, pathID, stored)
}

func (f *NewsFacade) DeleteByID(ctx context.Context, id int64, actor *domain.User) error {
	stored, err := f.news.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyNews(actor, stored.UserID) {
		f.logger.Debug().Int64("news_id", id).Msg("news delete denied")
		return domain.Deny("delete news", actor, stored.UserID)
	}
	return f.news.DeleteByID(ctx, id)
}
