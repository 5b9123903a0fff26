package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// sessionDoc is the collection schema: one document per session key.
type sessionDoc struct {
	Key       string     `bson:"_id"`
	Data      []byte     `bson:"data"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// SessionStore implements session.Store on a MongoDB collection. Mongo's
// TTL monitor reclaims expired documents in the background, but it runs on
// a coarse schedule, so Get also filters by deadline to keep expiration
// exact.
type SessionStore struct {
	coll *mongo.Collection
}

// NewSessionStore wraps a collection of session documents. Call
// EnsureIndexes once at startup so the TTL monitor can do its work.
func NewSessionStore(db *mongo.Database, collection string) *SessionStore {
	return &SessionStore{coll: db.Collection(collection)}
}

// EnsureIndexes creates the TTL index on expires_at. Idempotent.
func (s *SessionStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

// Get retrieves the payload stored under key.
func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	filter := bson.D{
		{Key: "_id", Value: key},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "expires_at", Value: nil}},
			bson.D{{Key: "expires_at", Value: bson.D{{Key: "$gt", Value: time.Now()}}}},
		}},
	}

	var doc sessionDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return doc.Data, nil
}

// Set stores the payload under key, replacing any previous document and
// resetting the expiration deadline.
func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	doc := sessionDoc{
		Key:       key,
		Data:      value,
		UpdatedAt: time.Now(),
	}
	if ttl > 0 {
		t := time.Now().Add(ttl)
		doc.ExpiresAt = &t
	}

	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes key. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}})
	return err
}
