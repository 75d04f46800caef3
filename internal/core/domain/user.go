package domain

// User models an account and the actor of every authorized operation.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Active       bool
	Roles        Roles
}

// Is reports identity equality; users are equal when their ids are.
func (u *User) Is(other *User) bool {
	return u != nil && other != nil && u.ID == other.ID
}
