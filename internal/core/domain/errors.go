package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrNewsNotFound    = fmt.Errorf("news %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
)

var ErrBadRequestParameters = errors.New("bad request parameters")
var ErrUsernameReserved = errors.New("username is already taken")
var ErrNotEnoughRights = errors.New("not enough rights")
var ErrMalformedQueryParameter = errors.New("malformed query parameter")
var ErrInvalidCredentials = errors.New("invalid credentials")

func NewsNotFound(id int64) error {
	return fmt.Errorf("%w: can't find news with id = %d", ErrNewsNotFound, id)
}

func CommentNotFound(id int64) error {
	return fmt.Errorf("%w: can't find comment with id = %d", ErrCommentNotFound, id)
}

func UserNotFound(id int64) error {
	return fmt.Errorf("%w: can't find user with id = %d", ErrUserNotFound, id)
}

func UsernameReserved(username string) error {
	return fmt.Errorf("%w: %s", ErrUsernameReserved, username)
}

// PathMismatch is returned when the id in the request path differs from the payload id.
func PathMismatch(pathID, bodyID int64) error {
	return fmt.Errorf("%w: path variable id %d must be equal to payload id %d", ErrBadRequestParameters, pathID, bodyID)
}

// NotEnoughRightsError carries the acting and target ids of a denied operation.
type NotEnoughRightsError struct {
	Op       string
	ActorID  int64
	TargetID int64
}

func (e *NotEnoughRightsError) Error() string {
	if e.TargetID == 0 {
		return fmt.Sprintf("user with id %d cannot %s", e.ActorID, e.Op)
	}
	return fmt.Sprintf("user with id %d cannot %s of user with id %d", e.ActorID, e.Op, e.TargetID)
}

func (e *NotEnoughRightsError) Is(target error) bool {
	return target == ErrNotEnoughRights
}
