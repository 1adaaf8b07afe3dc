// Package mongodb 是基于 mongo-driver 的用户存储。
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"UserCenter/internal/user/domain"
)

const DefaultCollection = "users"

type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func New(client *mongo.Client, database, collection string) *Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

func (s *Store) Get(ctx context.Context, key, value string) ([]domain.User, error) {
	cur, err := s.coll.Find(ctx, bson.D{{Key: key, Value: value}})
	if err != nil {
		return nil, classify(err)
	}
	users := make([]domain.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, classify(err)
	}
	return users, nil
}

func (s *Store) Update(ctx context.Context, id string, body map[string]any) (domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user domain.User
	err := s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "user_id", Value: id}},
		updateDoc(body, time.Now().UTC()),
		opts,
	).Decode(&user)
	if err != nil {
		return domain.User{}, classify(err)
	}
	return user, nil
}

// updateDoc 生成 $set 文档；user_id 不进入 $set，updated_at 总是刷新。
func updateDoc(body map[string]any, now time.Time) bson.D {
	set := bson.M(domain.UpdateFields(body))
	set["updated_at"] = now
	return bson.D{{Key: "$set", Value: set}}
}

func (s *Store) GetProfile(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.D{{Key: "user_id", Value: id}}).Decode(&user)
	if err != nil {
		return domain.User{}, classify(err)
	}
	return user, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// classify 服务端返回的错误和“无文档”归为上游错误，其余（网络、编解码）归为内部错误。
func classify(err error) error {
	var se mongo.ServerError
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.Upstream(err.Error())
	case errors.As(err, &se):
		return domain.Upstream(err.Error())
	default:
		return domain.Internal(err.Error()).WithCause(err)
	}
}
