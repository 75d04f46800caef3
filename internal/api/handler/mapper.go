package handler

import (
	"fmt"

	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// --- Projection → DTO mappers ---

func toNewsSimpleDto(n ports.NewsSummary) newsSimpleDto {
	return newsSimpleDto{
		ID:     n.ID,
		Date:   wire.FormatTime(n.CreatedAt),
		Title:  n.Title,
		Text:   n.Text,
		UserID: n.UserID,
	}
}

func toNewsSimpleDtoList(items []ports.NewsSummary) *newsSimpleDtoList {
	out := &newsSimpleDtoList{News: make([]newsSimpleDto, len(items))}
	for i, n := range items {
		out.News[i] = toNewsSimpleDto(n)
	}
	return out
}

func toNewsDto(d *ports.NewsDetail) *newsDto {
	out := &newsDto{
		ID:       d.ID,
		Date:     wire.FormatTime(d.CreatedAt),
		Title:    d.Title,
		Text:     d.Text,
		UserID:   d.UserID,
		Comments: make([]newsCommentDto, len(d.Comments)),
	}
	for i, c := range d.Comments {
		out.Comments[i] = newsCommentDto{ID: c.ID, Date: wire.FormatTime(c.CreatedAt), Text: c.Text, UserID: c.UserID}
	}
	return out
}

func toCommentSimpleDto(c ports.CommentSummary) commentSimpleDto {
	return commentSimpleDto{
		ID:     c.ID,
		Date:   wire.FormatTime(c.CreatedAt),
		Text:   c.Text,
		UserID: c.UserID,
		NewsID: c.NewsID,
	}
}

func toCommentSimpleDtoList(items []ports.CommentSummary) *commentSimpleDtoList {
	out := &commentSimpleDtoList{Comments: make([]commentSimpleDto, len(items))}
	for i, c := range items {
		out.Comments[i] = toCommentSimpleDto(c)
	}
	return out
}

func toCommentDto(d *ports.CommentDetail) *commentDto {
	return &commentDto{
		ID:     d.ID,
		Date:   wire.FormatTime(d.CreatedAt),
		Text:   d.Text,
		UserID: d.UserID,
		News: commentNewsDto{
			ID:     d.News.ID,
			Date:   wire.FormatTime(d.News.CreatedAt),
			Title:  d.News.Title,
			Text:   d.News.Text,
			UserID: d.News.UserID,
		},
	}
}

func toUserSimpleDto(u ports.UserSummary) userSimpleDto {
	return userSimpleDto{
		ID:       u.ID,
		Username: u.Username,
		Active:   u.Active,
		Roles:    u.Roles.Names(),
	}
}

func toUserSimpleDtoList(items []ports.UserSummary) *userSimpleDtoList {
	out := &userSimpleDtoList{Users: make([]userSimpleDto, len(items))}
	for i, u := range items {
		out.Users[i] = toUserSimpleDto(u)
	}
	return out
}

func toUserDto(d *ports.UserDetail) *userDto {
	out := &userDto{
		ID:       d.ID,
		Username: d.Username,
		Active:   d.Active,
		Roles:    d.Roles.Names(),
		News:     make([]userNewsDto, len(d.News)),
		Comments: make([]userCommentDto, len(d.Comments)),
	}
	for i, n := range d.News {
		out.News[i] = userNewsDto{ID: n.ID, Date: wire.FormatTime(n.CreatedAt), Title: n.Title, Text: n.Text}
	}
	for i, c := range d.Comments {
		out.Comments[i] = userCommentDto{ID: c.ID, Date: wire.FormatTime(c.CreatedAt), Text: c.Text}
	}
	return out
}

// --- DTO → facade input mappers ---

func toNewsInput(m *newsSimpleDto) ports.NewsInput {
	return ports.NewsInput{ID: m.ID, Title: m.Title, Text: m.Text, UserID: m.UserID}
}

func toCommentInput(m *commentSimpleDto) ports.CommentInput {
	return ports.CommentInput{ID: m.ID, Text: m.Text, UserID: m.UserID, NewsID: m.NewsID}
}

func toUserInput(m *userSimpleDto) (ports.UserInput, error) {
	roles, err := domain.ParseRoles(m.Roles)
	if err != nil {
		return ports.UserInput{}, fmt.Errorf("%w: %v", domain.ErrBadRequestParameters, err)
	}
	return ports.UserInput{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
		Active:   m.Active,
		Roles:    roles,
	}, nil
}
