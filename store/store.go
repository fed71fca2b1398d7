package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultTimeout = 5 * time.Second
	mongoLogPrefix = "mongo"
)

// ErrCounterRegression rejects a snapshot whose cumulative counters moved
// backwards against the stored high-water marks.
var ErrCounterRegression = errors.New("cumulative counter decreased in import batch")

// CoachStore is the full persistence surface of the service, composed from
// per-concern interfaces.
type CoachStore interface {
	DailySampleStore
	ReadinessStore
	TrainingStore
	SettingsStore
	ImportStore

	Ping() error
	Close() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a CoachStore backed by the given mongo client.
func NewMongoStore(client *mongo.Client, database string) CoachStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
