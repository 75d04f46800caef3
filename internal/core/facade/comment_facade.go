package facade

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

type CommentFacade struct {
	comments ports.CommentService
	news     ports.NewsService
	now      Clock
	logger   zerolog.Logger
}

func NewCommentFacade(comments ports.CommentService, news ports.NewsService, logger zerolog.Logger) *CommentFacade {
	return &CommentFacade{comments: comments, news: news, now: utcNow, logger: logger}
}

func (f *CommentFacade) FindAll(ctx context.Context) ([]ports.CommentSummary, error) {
	items, err := f.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCommentSummaries(items), nil
}

func (f *CommentFacade) FindPage(ctx context.Context, page ports.Page) ([]ports.CommentSummary, error) {
	items, err := f.comments.FindPage(ctx, page)
	if err != nil {
		return nil, err
	}
	return toCommentSummaries(items), nil
}

func (f *CommentFacade) Search(ctx context.Context, q ports.CommentSearch) ([]ports.CommentSummary, error) {
	var (
		items []*domain.Comment
		err   error
	)
	switch {
	case q.Text != "":
		items, err = f.comments.FindByText(ctx, q.Text)
	case q.TextContains != "":
		items, err = f.comments.FindByTextContains(ctx, q.TextContains)
	default:
		items, err = f.comments.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toCommentSummaries(items), nil
}

// FindByID embeds a snapshot of the parent News.
func (f *CommentFacade) FindByID(ctx context.Context, id int64) (*ports.CommentDetail, error) {
	c, err := f.comments.FindByID(ctx, id)
	if err != nil {
		if absent(err) {
			return nil, nil
		}
		return nil, err
	}
	parent, err := f.news.FindByID(ctx, c.NewsID)
	if err != nil {
		if absent(err) {
			// orphaned by a non-atomic cascade
			f.logger.Warn().Int64("comment_id", id).Int64("news_id", c.NewsID).Msg("comment references missing news")
			return nil, nil
		}
		return nil, err
	}
	return toCommentDetail(c, parent), nil
}

// Save resolves the referenced News before building the Comment row.
func (f *CommentFacade) Save(ctx context.Context, in ports.CommentInput, actor *domain.User) (*ports.CommentSummary, error) {
	parent, err := f.news.FindByID(ctx, in.NewsID)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateComment(actor) {
		return nil, domain.Deny("create comment", actor, 0)
	}

	c := &domain.Comment{
		CreatedAt: f.now(),
		Text:      in.Text,
		UserID:    actor.ID,
		NewsID:    parent.ID,
	}
	if err := f.comments.Save(ctx, c); err != nil {
		return nil, err
	}
	out := toCommentSummary(c)
	return &out, nil
}

// Update rewrites the text only.
func (f *CommentFacade) Update(ctx context.Context, pathID int64, in ports.CommentInput, actor *domain.User) error {
	stored, err := f.comments.CheckUpdate(ctx, pathID, in.ID)
	if err != nil {
		return err
	}
	if !domain.CanModifyComment(actor, stored.UserID) {
		f.logger.Debug().Int64("comment_id", stored.ID).Msg("comment update denied")
		return domain.Deny("update comment", actor, stored.UserID)
	}

	stored.Text = in.Text
	return f.comments.Update(ctx, pathID, stored)
}

func (f *CommentFacade) DeleteByID(ctx context.Context, id int64, actor *domain.User) error {
	stored, err := f.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModifyComment(actor, stored.UserID) {
		f.logger.Debug().Int64("comment_id", id).Msg("comment delete denied")
		return domain.Deny("delete comment", actor, stored.UserID)
	}
	return f.comments.DeleteByID(ctx, id)
}
