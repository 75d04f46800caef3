package mongo

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/newsdesk/newsroom/internal/core/domain"
)

type newsDoc struct {
	ID        int64     `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	Title     string    `bson:"title"`
	Text      string    `bson:"text"`
	UserID    int64     `bson:"user_id"`
}

func newsToDoc(n *domain.News) newsDoc {
	return newsDoc{ID: n.ID, CreatedAt: n.CreatedAt.UTC(), Title: n.Title, Text: n.Text, UserID: n.UserID}
}

func (d newsDoc) toDomain() *domain.News {
	return &domain.News{ID: d.ID, CreatedAt: d.CreatedAt.UTC(), Title: d.Title, Text: d.Text, UserID: d.UserID}
}

type commentDoc struct {
	ID        int64     `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	Text      string    `bson:"text"`
	UserID    int64     `bson:"user_id"`
	NewsID    int64     `bson:"news_id"`
}

func commentToDoc(c *domain.Comment) commentDoc {
	return commentDoc{ID: c.ID, CreatedAt: c.CreatedAt.UTC(), Text: c.Text, UserID: c.UserID, NewsID: c.NewsID}
}

func (d commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{ID: d.ID, CreatedAt: d.CreatedAt.UTC(), Text: d.Text, UserID: d.UserID, NewsID: d.NewsID}
}

type userDoc struct {
	ID           int64    `bson:"_id"`
	Username     string   `bson:"username"`
	PasswordHash string   `bson:"password_hash"`
	Active       bool     `bson:"active"`
	Roles        []string `bson:"roles"`
}

func userToDoc(u *domain.User) userDoc {
	return userDoc{ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash, Active: u.Active, Roles: u.Roles.Names()}
}

func (d userDoc) toDomain() (*domain.User, error) {
	roles, err := domain.ParseRoles(d.Roles)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", d.ID, err)
	}
	return &domain.User{ID: d.ID, Username: d.Username, PasswordHash: d.PasswordHash, Active: d.Active, Roles: roles}, nil
}

// match adds an exact and a case-sensitive substring predicate on field.
func match(filter bson.M, field, exact, contains string) {
	switch {
	case exact != "" && contains != "":
		filter["$and"] = append(asSlice(filter["$and"]),
			bson.M{field: exact},
			bson.M{field: bson.M{"$regex": regexp.QuoteMeta(contains)}},
		)
	case exact != "":
		filter[field] = exact
	case contains != "":
		filter[field] = bson.M{"$regex": regexp.QuoteMeta(contains)}
	}
}

func asSlice(v interface{}) bson.A {
	if a, ok := v.(bson.A); ok {
		return a
	}
	return bson.A{}
}
