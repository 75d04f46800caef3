package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

// ----------------------------------------------------------------------------
// Query building
// ----------------------------------------------------------------------------

func TestNewsFilter(t *testing.T) {
	got := newsFilter(ports.NewsFilter{TitleContains: "a.b", UserID: 3})
	title, ok := got["title"].(bson.M)
	if !ok || title["$regex"] != `a\.b` {
		t.Fatalf("expected quoted regex, got %#v", got["title"])
	}
	if got["user_id"] != int64(3) {
		t.Fatalf("user_id = %#v", got["user_id"])
	}
	if _, ok := got["text"]; ok {
		t.Fatalf("empty filter values must not constrain")
	}
}

func TestMatch_ExactAndContains(t *testing.T) {
	filter := bson.M{}
	match(filter, "text", "hello world", "world")
	and, ok := filter["$and"].(bson.A)
	if !ok || len(and) != 2 {
		t.Fatalf("expected $and with two clauses, got %#v", filter)
	}
}

func TestCommentFilter(t *testing.T) {
	got := commentFilter(ports.CommentFilter{Text: "hi", NewsID: 7})
	if got["text"] != "hi" || got["news_id"] != int64(7) {
		t.Fatalf("unexpected filter: %#v", got)
	}
}

func TestListOptions(t *testing.T) {
	opts := listOptions(&ports.Page{Number: 3, Size: 5})
	if opts.Skip == nil || *opts.Skip != 15 {
		t.Fatalf("skip = %v", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 5 {
		t.Fatalf("limit = %v", opts.Limit)
	}
	if all := listOptions(nil); all.Limit != nil || all.Skip != nil {
		t.Fatalf("nil page must not limit")
	}
}

func TestUserDoc_RoundTrip(t *testing.T) {
	u := &domain.User{ID: 4, Username: "alice", PasswordHash: "h", Active: true, Roles: domain.NewRoles(domain.RoleJournalist)}
	back, err := userToDoc(u).toDomain()
	if err != nil {
		t.Fatal(err)
	}
	if *back != *u {
		t.Fatalf("got %+v, want %+v", back, u)
	}

	if _, err := (userDoc{Roles: []string{"EDITOR"}}).toDomain(); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

// ----------------------------------------------------------------------------
// Integration (requires a live MongoDB)
// ----------------------------------------------------------------------------

func TestIntegration_UserCascade(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, db, err := Connect(ctx, Config{URI: uri, Database: fmt.Sprintf("newsroom_test_%d", time.Now().UnixNano())})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	}()

	store := NewStore(client, db, NewCounters(db), false)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	news, comments, users := store.Repositories()

	alice := &domain.User{Username: "alice", PasswordHash: "h", Active: true, Roles: domain.NewRoles(domain.RoleJournalist)}
	bob := &domain.User{Username: "bob", PasswordHash: "h", Active: true, Roles: domain.NewRoles(domain.RoleSubscriber)}
	for _, u := range []*domain.User{alice, bob} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	if err := users.Create(ctx, &domain.User{Username: "alice"}); !errors.Is(err, domain.ErrUsernameReserved) {
		t.Fatalf("expected ErrUsernameReserved, got %v", err)
	}

	n := &domain.News{CreatedAt: time.Now().UTC(), Title: "t", Text: "x", UserID: alice.ID}
	if err := news.Create(ctx, n); err != nil {
		t.Fatalf("create news: %v", err)
	}
	c := &domain.Comment{CreatedAt: time.Now().UTC(), Text: "c", UserID: bob.ID, NewsID: n.ID}
	if err := comments.Create(ctx, c); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := users.Delete(ctx, alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if ok, _ := news.Exists(ctx, n.ID); ok {
		t.Fatalf("news survived owner delete")
	}
	if ok, _ := comments.Exists(ctx, c.ID); ok {
		t.Fatalf("comment survived news delete")
	}
}
