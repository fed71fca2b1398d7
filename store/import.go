package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// ImportStore tracks the high-water cumulative counters of snapshot imports
// so a regressed export can be rejected before any partial write.
type ImportStore interface {
	GetCumulativeCounters(accountNumber string) (map[string]float64, error)
	SetCumulativeCounters(accountNumber string, counters map[string]float64) error
}

func (m *mongoDB) GetCumulativeCounters(accountNumber string) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SnapshotImportCollection)

	var row struct {
		Counters map[string]float64 `bson:"counters"`
	}
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Counters, nil
}

// SetCumulativeCounters advances the named counters only. A counter omitted
// from one batch keeps its stored high-water mark, so a later regressed value
// for it is still caught.
func (m *mongoDB) SetCumulativeCounters(accountNumber string, counters map[string]float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().Unix()}
	for name, value := range counters {
		set["counters."+name] = value
	}

	c := m.client.Database(m.database).Collection(schema.SnapshotImportCollection)
	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	return err
}
