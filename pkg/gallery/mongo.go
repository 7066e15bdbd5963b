package gallery

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/mosaic/pkg/errors"
)

// Default MongoDB names.
const (
	DefaultDatabase   = "mosaic"
	DefaultCollection = "gallery"
)

// MongoOptions configures a [MongoStore].
type MongoOptions struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration // per-operation timeout, default 10s
}

// MongoStore persists records in a MongoDB collection, one document per
// record keyed by its ID.
type MongoStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoStore connects to MongoDB and pings the primary.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "gallery: mongo uri is required")
	}
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongo")
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongo")
	}

	return &MongoStore{
		client:  client,
		coll:    client.Database(opts.Database).Collection(opts.Collection),
		timeout: opts.Timeout,
	}, nil
}

// Save implements [Store].
func (s *MongoStore) Save(ctx context.Context, rec Record) error {
	if err := errors.ValidateRecordID(rec.ID); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "insert record %s", rec.ID)
	}
	return nil
}

// Get implements [Store].
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rec Record
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return Record{}, errors.New(errors.ErrCodeNotFound, "record %s not found", id)
	}
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStore, err, "find record %s", id)
	}
	return rec, nil
}

// List implements [Store].
func (s *MongoStore) List(ctx context.Context, limit int) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(listLimit(limit)))
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list records")
	}
	var out []Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode records")
	}
	return out, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
