package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is a capability held by a User. The set of roles is closed.
type Role uint8

const (
	RoleAdmin Role = iota
	RoleJournalist
	RoleSubscriber
)

var roleNames = [...]string{
	RoleAdmin:      "ADMIN",
	RoleJournalist: "JOURNALIST",
	RoleSubscriber: "SUBSCRIBER",
}

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleAdmin, RoleJournalist, RoleSubscriber}

var ErrUnknownRole = errors.New("unknown role")

func (r Role) Valid() bool { return int(r) < len(roleNames) }

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// ParseRole converts a persisted role name back to a Role.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, r := range AllRoles {
		if roleNames[r] == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Roles is an unordered set of roles stored as a bitmask.
type Roles uint8

// NewRoles builds a set, silently collapsing duplicates.
func NewRoles(rs ...Role) Roles {
	var set Roles
	for _, r := range rs {
		set = set.With(r)
	}
	return set
}

// ParseRoles converts persisted role names into a set.
func ParseRoles(names []string) (Roles, error) {
	var set Roles
	for _, n := range names {
		r, err := ParseRole(n)
		if err != nil {
			return 0, err
		}
		set = set.With(r)
	}
	return set, nil
}

func (s Roles) With(r Role) Roles {
	if !r.Valid() {
		return s
	}
	return s | 1<<r
}

func (s Roles) Has(r Role) bool {
	return r.Valid() && s&(1<<r) != 0
}

// HasAny reports whether at least one of rs is in the set.
func (s Roles) HasAny(rs ...Role) bool {
	for _, r := range rs {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s Roles) Empty() bool { return s == 0 }

// List returns the members in declaration order.
func (s Roles) List() []Role {
	out := make([]Role, 0, len(AllRoles))
	for _, r := range AllRoles {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Names returns the persisted names of the members in declaration order.
func (s Roles) Names() []string {
	list := s.List()
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.String()
	}
	return out
}

func (s Roles) String() string {
	return "[" + strings.Join(s.Names(), ",") + "]"
}
