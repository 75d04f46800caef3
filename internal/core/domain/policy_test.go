package domain

import (
	"errors"
	"testing"
)

func user(id int64, roles ...Role) *User {
	return &User{ID: id, Active: true, Roles: NewRoles(roles...)}
}

func TestCanCreateNews(t *testing.T) {
	cases := []struct {
		name  string
		actor *User
		want  bool
	}{
		{"admin", user(1, RoleAdmin), true},
		{"journalist", user(2, RoleJournalist), true},
		{"subscriber", user(3, RoleSubscriber), false},
		{"no roles", user(4), false},
		{"nil actor", nil, false},
	}
	for _, tc := range cases {
		if got := CanCreateNews(tc.actor); got != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestCanModifyNews(t *testing.T) {
	cases := []struct {
		name    string
		actor   *User
		ownerID int64
		want    bool
	}{
		{"owner journalist", user(2, RoleJournalist), 2, true},
		{"non-owner journalist", user(2, RoleJournalist), 5, false},
		{"owner subscriber", user(4, RoleSubscriber), 4, false},
		{"owner journalist also subscriber", user(4, RoleJournalist, RoleSubscriber), 4, false},
		{"admin non-owner", user(1, RoleAdmin), 4, true},
		{"admin also subscriber", user(1, RoleAdmin, RoleSubscriber), 4, true},
		{"owner without roles", user(7), 7, true},
		{"nil actor", nil, 4, false},
	}
	for _, tc := range cases {
		if got := CanModifyNews(tc.actor, tc.ownerID); got != tc.want {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestCanCreateComment(t *testing.T) {
	for _, r := range AllRoles {
		if !CanCreateComment(user(1, r)) {
			t.Errorf("role %s must be able to comment", r)
		}
	}
	if CanCreateComment(user(1)) {
		t.Error("actor without roles must not comment")
	}
}

func TestCanModifyComment(t *testing.T) {
	if !CanModifyComment(user(4, RoleSubscriber), 4) {
		t.Error("subscriber owner must modify own comment")
	}
	if CanModifyComment(user(4, RoleJournalist), 5) {
		t.Error("non-owner journalist must be denied")
	}
	if !CanModifyComment(user(1, RoleAdmin), 5) {
		t.Error("admin must modify any comment")
	}
}

func TestCanModifyUser(t *testing.T) {
	if !CanModifyUser(user(3, RoleSubscriber), 3) {
		t.Error("user must modify itself")
	}
	if CanModifyUser(user(3, RoleJournalist), 4) {
		t.Error("journalist must not modify another user")
	}
	if !CanModifyUser(user(1, RoleAdmin), 4) {
		t.Error("admin must modify any user")
	}
	if CanCreateUser(user(3, RoleJournalist)) || !CanCreateUser(user(1, RoleAdmin)) {
		t.Error("only admin creates users")
	}
}

func TestDeny(t *testing.T) {
	err := Deny("update news", user(4, RoleSubscriber), 9)
	if !errors.Is(err, ErrNotEnoughRights) {
		t.Fatalf("expected ErrNotEnoughRights, got %v", err)
	}
	var nre *NotEnoughRightsError
	if !errors.As(err, &nre) || nre.ActorID != 4 || nre.TargetID != 9 {
		t.Fatalf("unexpected error payload: %+v", nre)
	}
	if err.Error() != "user with id 4 cannot update news of user with id 9" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNotFoundWrapping(t *testing.T) {
	err := NewsNotFound(7)
	if !errors.Is(err, ErrNewsNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("news not found must match both sentinels: %v", err)
	}
	if errors.Is(err, ErrCommentNotFound) {
		t.Fatal("news not found must not match comment sentinel")
	}
}
