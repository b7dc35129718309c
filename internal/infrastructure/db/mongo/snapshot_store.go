package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/promptvault/prompt-library/internal/core/ports"
)

const snapshotCollection = "snapshots"

// SnapshotStore persists snapshots as one document per key.
type SnapshotStore struct {
	coll *mongo.Collection
}

func NewSnapshotStore(db *mongo.Database) *SnapshotStore {
	return &SnapshotStore{coll: db.Collection(snapshotCollection)}
}

type snapshotDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("mongo find snapshot %s: %w", key, err)
	}
	return doc.Value, nil
}

func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.coll.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		snapshotDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo upsert snapshot %s: %w", key, err)
	}
	return nil
}

func (s *SnapshotStore) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete snapshot %s: %w", key, err)
	}
	return nil
}
