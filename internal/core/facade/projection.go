package facade

import (
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// --- Domain → projection mappers ---

func toNewsSummary(n *domain.News) ports.NewsSummary {
	return ports.NewsSummary{
		ID:        n.ID,
		CreatedAt: n.CreatedAt,
		Title:     n.Title,
		Text:      n.Text,
		UserID:    n.UserID,
	}
}

func toNewsSummaries(items []*domain.News) []ports.NewsSummary {
	out := make([]ports.NewsSummary, len(items))
	for i, n := range items {
		out[i] = toNewsSummary(n)
	}
	return out
}

func toNewsDetail(n *domain.News, comments []*domain.Comment) *ports.NewsDetail {
	embedded := make([]ports.NewsComment, len(comments))
	for i, c := range comments {
		embedded[i] = ports.NewsComment{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			Text:      c.Text,
			UserID:    c.UserID,
		}
	}
	return &ports.NewsDetail{NewsSummary: toNewsSummary(n), Comments: embedded}
}

func toCommentSummary(c *domain.Comment) ports.CommentSummary {
	return ports.CommentSummary{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Text:      c.Text,
		UserID:    c.UserID,
		NewsID:    c.NewsID,
	}
}

func toCommentSummaries(items []*domain.Comment) []ports.CommentSummary {
	out := make([]ports.CommentSummary, len(items))
	for i, c := range items {
		out[i] = toCommentSummary(c)
	}
	return out
}

func toCommentDetail(c *domain.Comment, parent *domain.News) *ports.CommentDetail {
	return &ports.CommentDetail{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Text:      c.Text,
		UserID:    c.UserID,
		News:      toNewsSummary(parent),
	}
}

func toUserSummary(u *domain.User) ports.UserSummary {
	return ports.UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Active:   u.Active,
		Roles:    u.Roles,
	}
}

func toUserDetail(u *domain.User, news []*domain.News, comments []*domain.Comment) *ports.UserDetail {
	d := &ports.UserDetail{
		UserSummary: toUserSummary(u),
		News:        make([]ports.UserNews, len(news)),
		Comments:    make([]ports.UserComment, len(comments)),
	}
	for i, n := range news {
		d.News[i] = ports.UserNews{ID: n.ID, CreatedAt: n.CreatedAt, Title: n.Title, Text: n.Text}
	}
	for i, c := range comments {
		d.Comments[i] = ports.UserComment{ID: c.ID, CreatedAt: c.CreatedAt, Text: c.Text}
	}
	return d
}
