package domain

import "time"

// News is an article owned by exactly one user.
type News struct {
	ID        int64
	CreatedAt time.Time
	Title     string
	Text      string
	UserID    int64
}

// Comment belongs to exactly one News and one User.
type Comment struct {
	ID        int64
	CreatedAt time.Time
	Text      string
	UserID    int64
	NewsID    int64
}
