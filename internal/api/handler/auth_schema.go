package handler

import (
	"github.com/newsdesk/newsroom/internal/api/wire"
)

type registrationRequestDto struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=4"`
}

func (m *registrationRequestDto) UnmarshalProto(b []byte) error {
	return wire.Range(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.Username = f.String()
		case 2:
			m.Password = f.String()
		}
		return nil
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (m *loginRequest) UnmarshalProto(b []byte) error {
	return wire.Range(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m.Username = f.String()
		case 2:
			m.Password = f.String()
		}
		return nil
	})
}

type loginResponse struct {
	Token string        `json:"token"`
	User  userSimpleDto `json:"user"`
}

func (m *loginResponse) MarshalProto() []byte {
	var b []byte
	b = wire.AppendString(b, 1, m.Token)
	b = wire.AppendMessage(b, 2, &m.User)
	return b
}
