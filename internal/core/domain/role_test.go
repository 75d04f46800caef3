package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoles_SetSemantics(t *testing.T) {
	set := NewRoles(RoleSubscriber, RoleAdmin, RoleSubscriber)

	if !set.Has(RoleAdmin) || !set.Has(RoleSubscriber) {
		t.Fatalf("expected admin and subscriber in %s", set)
	}
	if set.Has(RoleJournalist) {
		t.Fatalf("journalist must not be in %s", set)
	}
	if got := set.Names(); !reflect.DeepEqual(got, []string{"ADMIN", "SUBSCRIBER"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if len(set.List()) != 2 {
		t.Fatalf("duplicates must collapse, got %v", set.List())
	}
}

func TestRoles_InvalidRoleIgnored(t *testing.T) {
	set := NewRoles(Role(42))
	if !set.Empty() {
		t.Fatalf("invalid role must not be added, got %08b", uint8(set))
	}
	if set.Has(Role(42)) {
		t.Fatal("Has must be false for an invalid role")
	}
}

func TestParseRoles(t *testing.T) {
	set, err := ParseRoles([]string{"admin", " JOURNALIST "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set != NewRoles(RoleAdmin, RoleJournalist) {
		t.Fatalf("unexpected set: %s", set)
	}

	if _, err := ParseRoles([]string{"EDITOR"}); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRole_String(t *testing.T) {
	if RoleJournalist.String() != "JOURNALIST" {
		t.Errorf("unexpected name %q", RoleJournalist.String())
	}
	if Role(9).String() != "Role(9)" {
		t.Errorf("unexpected name %q", Role(9).String())
	}
}
