package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	s   *Store
	col *mongo.Collection
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ok, err := r.s.exists(ctx, collectionNews, bson.M{"_id": c.NewsID})
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewsNotFound(c.NewsID)
	}
	if ok, err = r.s.exists(ctx, collectionUsers, bson.M{"_id": c.UserID}); err != nil {
		return err
	}
	if !ok {
		return domain.UserNotFound(c.UserID)
	}

	id, err := r.s.seq.Next(ctx, collectionComments)
	if err != nil {
		return err
	}
	c.ID = id
	_, err = r.col.InsertOne(ctx, commentToDoc(c))
	return err
}

func (r *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, c.ID, bson.M{"$set": bson.M{"text": c.Text}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.CommentNotFound(c.ID)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.CommentNotFound(id)
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.s.exists(ctx, collectionComments, bson.M{"_id": id})
}

func (r *CommentRepository) List(ctx context.Context, f ports.CommentFilter, page *ports.Page) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, commentFilter(f), listOptions(page))
	if err != nil {
		return nil, err
	}
	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Comment, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func commentFilter(f ports.CommentFilter) bson.M {
	filter := bson.M{}
	match(filter, "text", f.Text, f.TextContains)
	if f.NewsID != 0 {
		filter["news_id"] = f.NewsID
	}
	if f.UserID != 0 {
		filter["user_id"] = f.UserID
	}
	return filter
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.CommentNotFound(id)
	}
	return nil
}
