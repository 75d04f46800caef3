package handler

import (
	"fmt"

	"github.com/newsdesk/newsroom/internal/api/wire"
	"github.com/newsdesk/newsroom/internal/core/domain"
)

// userSimpleDto is the flat User message. Password is accepted on input and
// never written on output.
type userSimpleDto struct {
	ID       int64    `json:"id"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password,omitempty"`
	Active   bool     `json:"active"`
	Roles    []string `json:"roles"`
}

func (m *userSimpleDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Username)
	b = wire.AppendBool(b, 4, m.Active)
	b = wire.AppendPackedEnums(b, 5, roleEnums(m.Roles))
	return b
}

func (m *userSimpleDto) UnmarshalProto(b []byte) error {
	return wire.Range(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.ID = f.Int64()
		case 2:
			m.Username = f.String()
		case 3:
			m.Password = f.String()
		case 4:
			m.Active = f.Bool()
		case 5:
			vs, err := f.Enums()
			if err != nil {
				return err
			}
			for _, v := range vs {
				r := domain.Role(v)
				if v > 255 || !r.Valid() {
					return fmt.Errorf("%w: %d", domain.ErrUnknownRole, v)
				}
				m.Roles = append(m.Roles, r.String())
			}
		}
		return nil
	})
}

func roleEnums(names []string) []uint64 {
	out := make([]uint64, 0, len(names))
	for _, n := range names {
		if r, err := domain.ParseRole(n); err == nil {
			out = append(out, uint64(r))
		}
	}
	return out
}

type userSimpleDtoList struct {
	Users []userSimpleDto `json:"users"`
}

func (m *userSimpleDtoList) MarshalProto() []byte {
	var b []byte
	for i := range m.Users {
		b = wire.AppendMessage(b, 1, &m.Users[i])
	}
	return b
}

type userNewsDto struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (m *userNewsDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Title)
	b = wire.AppendString(b, 4, m.Text)
	return b
}

type userCommentDto struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
}

func (m *userCommentDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Date)
	b = wire.AppendString(b, 3, m.Text)
	return b
}

type userDto struct {
	ID       int64            `json:"id"`
	Username string           `json:"username"`
	Active   bool             `json:"active"`
	Roles    []string         `json:"roles"`
	News     []userNewsDto    `json:"news"`
	Comments []userCommentDto `json:"comments"`
}

func (m *userDto) MarshalProto() []byte {
	var b []byte
	b = wire.AppendInt64(b, 1, m.ID)
	b = wire.AppendString(b, 2, m.Username)
	b = wire.AppendBool(b, 4, m.Active)
	b = wire.AppendPackedEnums(b, 5, roleEnums(m.Roles))
	for i := range m.News {
		b = wire.AppendMessage(b, 6, &m.News[i])
	}
	for i := range m.Comments {
		b = wire.AppendMessage(b, 7, &m.Comments[i])
	}
	return b
}
