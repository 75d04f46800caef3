// Package mongo is the document storage backend. Ids are integers drawn from
// a ports.IDSequence so they match the other backends.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsdesk/newsroom/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers    = "users"
	collectionNews     = "news"
	collectionComments = "comments"
	collectionCounters = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Store groups the collections and the cascade strategy.
//
// With transactions enabled (replica set required) cascades run inside one
// session transaction. Without them the deletes are issued children first, so
// a failure part way can leave children removed while the parent survives,
// but never the reverse.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	seq          ports.IDSequence
	transactions bool
}

func NewStore(client *mongo.Client, db *mongo.Database, seq ports.IDSequence, transactions bool) *Store {
	return &Store{client: client, db: db, seq: seq, transactions: transactions}
}

// Repositories returns the three repository views over s.
func (s *Store) Repositories() (*NewsRepository, *CommentRepository, *UserRepository) {
	return &NewsRepository{s: s, col: s.db.Collection(collectionNews)},
		&CommentRepository{s: s, col: s.db.Collection(collectionComments)},
		&UserRepository{s: s, col: s.db.Collection(collectionUsers)}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the username unique index and the listing indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byCollection := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionNews: {
			{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		collectionComments: {
			{Keys: bson.D{{Key: "news_id", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}
	for name, indexes := range byCollection {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}

// cascade runs fn as one unit when transactions are enabled.
func (s *Store) cascade(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *Store) exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// listOptions orders by creation then id and applies the optional page.
func listOptions(page *ports.Page) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if page != nil {
		opts.SetSkip(int64(page.Offset())).SetLimit(int64(page.Size))
	}
	return opts
}

// Counters is an IDSequence kept in a Mongo collection, used when no Redis
// address is configured.
type Counters struct {
	col *mongo.Collection
}

var _ ports.IDSequence = (*Counters)(nil)

func NewCounters(db *mongo.Database) *Counters {
	return &Counters{col: db.Collection(collectionCounters)}
}

func (c *Counters) Next(ctx context.Context, kind string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		Value int64 `bson:"value"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := c.col.FindOneAndUpdate(ctx, bson.M{"_id": kind}, bson.M{"$inc": bson.M{"value": 1}}, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", kind, err)
	}
	return doc.Value, nil
}
