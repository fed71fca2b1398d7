package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// ReadinessStore persists one readiness result per (account, date). Writes
// are upserts so recomputing a date is idempotent.
type ReadinessStore interface {
	UpsertReadiness(accountNumber string, result schema.ReadinessResult) error
	GetReadiness(accountNumber, dateISO string) (*schema.ReadinessResult, error)
	GetReadinessAverage(accountNumber string, start, end string) (float64, error)
}

func (m *mongoDB) UpsertReadiness(accountNumber string, result schema.ReadinessResult) error {
	c := m.client.Database(m.database).Collection(schema.ReadinessCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result.AccountNumber = accountNumber
	result.LastUpdate = time.Now().Unix()

	query := bson.M{"account_number": accountNumber, "date": result.Date}
	update := bson.M{
		"$set": result,
		"$setOnInsert": bson.M{
			"created_at": time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

func (m *mongoDB) GetReadiness(accountNumber, dateISO string) (*schema.ReadinessResult, error) {
	c := m.client.Database(m.database).Collection(schema.ReadinessCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var result schema.ReadinessResult
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber, "date": dateISO}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetReadinessAverage averages the stored composite scores over an inclusive
// date range.
func (m *mongoDB) GetReadinessAverage(accountNumber string, start, end string) (float64, error) {
	c := m.client.Database(m.database).Collection(schema.ReadinessCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Aggregate(ctx, []bson.D{
		AggregationMatch(bson.M{
			"account_number": accountNumber,
			"date":           bson.M{"$gte": start, "$lte": end},
		}),
		AggregationProject(bson.M{
			"account_number": 1,
			"score":          1,
		}),
		AggregationGroup("$account_number", bson.D{
			bson.E{Key: "avg", Value: bson.M{"$avg": "$score"}},
		}),
	})
	if err != nil {
		return 0, err
	}
	if !cursor.Next(ctx) {
		return 0, nil
	}

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, err
	}

	return result.Avg, nil
}
