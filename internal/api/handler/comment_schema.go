package handler

import (
	"github.com/newsdesk/newsroom/internal/api/wire"
)

// commentSimpleDto is the flat Comment message, used for input and list output.
type commentSimpleDto struct {
	ID     int64  `json:"id"`
	Date   string `json:"date,omitempty"`
	Text   string `json:"text" validate:"required"`
	UserID int64  `json:"userId,omitempty"`
	NewsID int64  `json:"newsId"`
}

func (m *commentSimpleDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Text)
	b = wire.AppendInt64(b, 4, m.UserID)
	b = wire.AppendInt64(b, 5, m.NewsID)
	return b
}

func (m *commentSimpleDto) UnmarshalProto(b []byte) error {
	return wire.Range(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.ID = f.Int64()
		case 2:
			m.Date = f.String()
		case 3:
			m.Text = f.String()
		case 4:
			m.UserID = f.Int64()
		case 5:
			m.NewsID = f.Int64()
		}
		return nil
	})
}

type commentSimpleDtoList struct {
	Comments []commentSimpleDto `json:"comments"`
}

func (m *commentSimpleDtoList) MarshalProto() []byte {
	var b []byte
	for i := range m.Comments {
		b = wire.AppendMessage(b, 1, &m.Comments[i])
	}
	return b
}

// commentNewsDto is the parent News snapshot embedded in commentDto.
type commentNewsDto struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	UserID int64  `json:"userId"`
}

func (m *commentNewsDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Title)
	b = wire.AppendString(b, 4, m.Text)
	b = wire.AppendInt64(b, 5, m.UserID)
	return b
}

type commentDto struct {
	ID     int64          `json:"id"`
	Date   string         `json:"date"`
	Text   string         `json:"text"`
	UserID int64          `json:"userId"`
	News   commentNewsDto `json:"news"`
}

func (m *commentDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Text)
	b = wire.AppendInt64(b, 4, m.UserID)
	b = wire.AppendMessage(b, 5, &m.News)
	return b
}
