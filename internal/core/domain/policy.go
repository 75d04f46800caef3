package domain

// Authorization rules. Every function is pure: it sees the fully resolved
// actor and the owning user id read from storage, never payload values.

func CanCreateNews(actor *User) bool {
	return actor != nil && actor.Roles.HasAny(RoleAdmin, RoleJournalist)
}

// CanModifyNews forbids a SUBSCRIBER from editing news it owns; only ADMIN
// overrides ownership.
func CanModifyNews(actor *User, ownerID int64) bool {
	if actor == nil {
		return false
	}
	if actor.Roles.Has(RoleAdmin) {
		return true
	}
	return actor.ID == ownerID && !actor.Roles.Has(RoleSubscriber)
}

func CanCreateComment(actor *User) bool {
	return actor != nil && actor.Roles.HasAny(RoleAdmin, RoleJournalist, RoleSubscriber)
}

func CanModifyComment(actor *User, ownerID int64) bool {
	return actor != nil && (actor.ID == ownerID || actor.Roles.Has(RoleAdmin))
}

func CanCreateUser(actor *User) bool {
	return actor != nil && actor.Roles.Has(RoleAdmin)
}

func CanModifyUser(actor *User, targetID int64) bool {
	return actor != nil && (actor.ID == targetID || actor.Roles.Has(RoleAdmin))
}

// Deny builds the error returned for a failed authorization check.
func Deny(op string, actor *User, targetID int64) error {
	var actorID int64
	if actor != nil {
		actorID = actor.ID
	}
	return &NotEnoughRightsError{Op: op, ActorID: actorID, TargetID: targetID}
}
