package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	s   *Store
	col *mongo.Collection
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.s.seq.Next(ctx, collectionUsers)
	if err != nil {
		return err
	}
	u.ID = id
	if _, err := r.col.InsertOne(ctx, userToDoc(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.UsernameReserved(u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userToDoc(u)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.UsernameReserved(u.Username)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.UserNotFound(u.ID)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := r.findOne(ctx, bson.M{"_id": id})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.UserNotFound(id)
	}
	return u, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := r.findOne(ctx, bson.M{"username": username})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return u, err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain()
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.s.exists(ctx, collectionUsers, bson.M{"_id": id})
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.s.exists(ctx, collectionUsers, bson.M{"username": username})
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Delete removes the user's comments, the comments on its news, its news and
// finally the user.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	news := r.s.db.Collection(collectionNews)
	comments := r.s.db.Collection(collectionComments)

	return r.s.cascade(ctx, func(ctx context.Context) error {
		if _, err := comments.DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
			return err
		}
		newsIDs, err := news.Distinct(ctx, "_id", bson.M{"user_id": id})
		if err != nil {
			return err
		}
		if len(newsIDs) > 0 {
			if _, err := comments.DeleteMany(ctx, bson.M{"news_id": bson.M{"$in": newsIDs}}); err != nil {
				return err
			}
			if _, err := news.DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
				return err
			}
		}
		res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return domain.UserNotFound(id)
		}
		return nil
	})
}
