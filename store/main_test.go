package store

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connectTestMongo connects to the local test mongo. Suites are skipped, not
// failed, when no instance is listening, so the pure-function tests still run
// everywhere.
func connectTestMongo(t *testing.T, connURI string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(connURI)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(context.Background()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongo not reachable at %s: %s", connURI, err)
	}
	return client, nil
}
