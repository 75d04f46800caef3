package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/ports"
	"github.com/newsdesk/newsroom/internal/infrastructure/db/memory"
	mongostore "github.com/newsdesk/newsroom/internal/infrastructure/db/mongo"
	"github.com/newsdesk/newsroom/internal/infrastructure/db/postgres"
	redisstore "github.com/newsdesk/newsroom/internal/infrastructure/db/redis"
	"github.com/newsdesk/newsroom/internal/infrastructure/http/handlers"
	"github.com/newsdesk/newsroom/internal/pkg/config"
)

// storage is the selected backend: three repositories, the probes for the
// readiness endpoint and a close hook.
type storage struct {
	news     ports.NewsRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	pingers  map[string]handlers.Pinger
	closers  []func(context.Context) error
}

func (s *storage) Close(ctx context.Context) {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i](ctx)
	}
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Storage {
	case config.DriverMemory:
		store := memory.NewStore()
		news, comments, users := store.Repositories()
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return &storage{
			news: news, comments: comments, users: users,
			pingers: map[string]handlers.Pinger{"memory": store},
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN, MaxOpenConns: cfg.Postgres.MaxOpenConns})
		if err != nil {
			return nil, err
		}
		log.Info().Msg("connected to postgres")
		return &storage{
			news:     postgres.NewNewsRepository(db),
			comments: postgres.NewCommentRepository(db),
			users:    postgres.NewUserRepository(db),
			pingers:  map[string]handlers.Pinger{"postgres": handlers.PingFunc(db.PingContext)},
			closers:  []func(context.Context) error{func(context.Context) error { return db.Close() }},
		}, nil

	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
}

// openMongo draws ids from Redis when REDIS_ADDR is set and from a counters
// collection otherwise.
func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	s := &storage{
		closers: []func(context.Context) error{client.Disconnect},
		pingers: map[string]handlers.Pinger{},
	}

	var seq ports.IDSequence = mongostore.NewCounters(db)
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
		sequence := redisstore.NewSequence(rdb)
		s.pingers["redis"] = sequence
		seq = sequence
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis id sequence")
	}

	store := mongostore.NewStore(client, db, seq, cfg.Mongo.Transactions)
	if err := store.EnsureIndexes(ctx); err != nil {
		s.Close(ctx)
		return nil, err
	}
	s.news, s.comments, s.users = store.Repositories()
	s.pingers["mongodb"] = store
	log.Info().Bool("transactions", cfg.Mongo.Transactions).Msg("connected to mongodb")
	return s, nil
}
