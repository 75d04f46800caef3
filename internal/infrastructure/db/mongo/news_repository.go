package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.NewsRepository = (*NewsRepository)(nil)

type NewsRepository struct {
	s   *Store
	col *mongo.Collection
}

// Create verifies the owner exists, then inserts with a sequence id.
func (r *NewsRepository) Create(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := r.s.exists(ctx, collectionUsers, bson.M{"_id": n.UserID})
	if err != nil {
		return err
	}
	if !ok {
		return domain.UserNotFound(n.UserID)
	}

	id, err := r.s.seq.Next(ctx, collectionNews)
	if err != nil {
		return err
	}
	n.ID = id
	_, err = r.col.InsertOne(ctx, newsToDoc(n))
	return err
}

func (r *NewsRepository) Update(ctx context.Context, n *domain.News) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, n.ID, bson.M{"$set": bson.M{"title": n.Title, "text": n.Text}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewsNotFound(n.ID)
	}
	return nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc newsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewsNotFound(id)
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *NewsRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.s.exists(ctx, collectionNews, bson.M{"_id": id})
}

func (r *NewsRepository) List(ctx context.Context, f ports.NewsFilter, page *ports.Page) ([]*domain.News, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, newsFilter(f), listOptions(page))
	if err != nil {
		return nil, err
	}
	var docs []newsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.News, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func newsFilter(f ports.NewsFilter) bson.M {
	filter := bson.M{}
	match(filter, "title", f.Title, f.TitleContains)
	match(filter, "text", f.Text, f.TextContains)
	if f.UserID != 0 {
		filter["user_id"] = f.UserID
	}
	return filter
}

// Delete removes the comments first, then the News.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.s.cascade(ctx, func(ctx context.Context) error {
		if _, err := r.s.db.Collection(collectionComments).DeleteMany(ctx, bson.M{"news_id": id}); err != nil {
			return err
		}
		res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return domain.NewsNotFound(id)
		}
		return nil
	})
}
