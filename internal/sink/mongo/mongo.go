// Package mongo stores decoded records in a MongoDB collection. Importing it
// registers the "mongo" sink type.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lugondev/solcodec/internal/config"
	"github.com/lugondev/solcodec/internal/sink"
)

func init() {
	sink.RegisterFactory("mongo", func(ctx context.Context, cfg *config.Config) (sink.Sink, error) {
		return NewSink(ctx, &cfg.MongoDB)
	})
}

// document is the stored form of a RecordModel. Data is parsed into BSON so
// it can be queried by field.
type document struct {
	*sink.RecordModel `bson:",inline"`
	Data              bson.D `bson:"data,omitempty"`
}

func toDocument(m *sink.RecordModel) (document, error) {
	doc := document{RecordModel: m}
	if len(m.Data) > 0 {
		if err := bson.UnmarshalExtJSON(m.Data, false, &doc.Data); err != nil {
			return document{}, fmt.Errorf("failed to convert record %d: %w", m.Index, err)
		}
	}
	return doc, nil
}

type Sink struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

func NewSink(ctx context.Context, cfg *config.MongoDBConfig) (*Sink, error) {
	timeout := time.Duration(cfg.Timeout) * time.Second
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	s := &Sink{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		timeout:    timeout,
	}
	if err := s.createIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return s, nil
}

func (s *Sink) createIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "program", Value: 1}, {Key: "shape", Value: 1}}},
		{Keys: bson.D{{Key: "decoded_at", Value: -1}}},
	}
	_, err := s.collection.Indexes().CreateMany(ctx, models)
	return err
}

// Write inserts records with one unordered InsertMany.
func (s *Sink) Write(ctx context.Context, records []*sink.RecordModel) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]any, len(records))
	for i, m := range records {
		doc, err := toDocument(m)
		if err != nil {
			return err
		}
		docs[i] = doc
	}

	_, err := s.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (s *Sink) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.client.Disconnect(ctx)
}
