package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geocoder89/infohub/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store keeps each board collection as one document keyed by _id.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type blobDoc struct {
	Key   string           `bson:"_id"`
	Value primitive.Binary `bson:"value"`
}

func New(uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))

	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)

	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection("kv_blobs"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc blobDoc

	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return doc.Value.Data, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	doc := blobDoc{
		Key:   key,
		Value: primitive.Binary{Data: value},
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))

	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})

	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return nil
}
