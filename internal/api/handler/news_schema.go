package handler

import (
	"github.com/newsdesk/newsroom/internal/api/wire"
)

// newsSimpleDto is the flat News message, used for input and list output.
type newsSimpleDto struct {
	ID     int64  `json:"id"`
	Date   string `json:"date,omitempty"`
	Title  string `json:"title" validate:"required"`
	Text   string `json:"text" validate:"required"`
	UserID int64  `json:"userId,omitempty"`
}

func (m *newsSimpleDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Title)
	b = wire.AppendString(b, 4, m.Text)
	b = wire.AppendInt64(b, 5, m.UserID)
	return b
}

func (m *newsSimpleDto) UnmarshalProto(b []byte) error {
	return wire.Range(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.ID = f.Int64()
		case 2:
			m.Date = f.String()
		case 3:
			m.Title = f.String()
		case 4:
			m.Text = f.String()
		case 5:
			m.UserID = f.Int64()
		}
		return nil
	})
}

type newsSimpleDtoList struct {
	News []newsSimpleDto `json:"news"`
}

func (m *newsSimpleDtoList) MarshalProto() []byte {
	var b []byte
	for i := range m.News {
		b = wire.AppendMessage(b, 1, &m.News[i])
	}
	return b
}

// newsCommentDto is a comment embedded in newsDto.
type newsCommentDto struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	UserID int64  `json:"userId"`
}

func (m *newsCommentDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Text)
	b = wire.AppendInt64(b, 4, m.UserID)
	return b
}

type newsDto struct {
	ID       int64            `json:"id"`
	Date     string           `json:"date"`
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	UserID   int64            `json:"userId"`
	Comments []newsCommentDto `json:"comments"`
}

func (m *newsDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Title)
	b = wire.AppendString(b, 4, m.Text)
	b = wire.AppendInt64(b, 5, m.UserID)
	for i := range m.Comments {
		b = wire.AppendMessage(b, 6, &m.Comments[i])
	}
	return b
}
