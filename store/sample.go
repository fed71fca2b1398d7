package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// DailySampleStore reads and writes per-date physiological samples and the
// proxy-source session records backing confidence grading.
type DailySampleStore interface {
	GetSampleWindow(accountNumber string, end time.Time, days int) (map[string]schema.DailySample, error)
	CountMeasuredProxySessions(accountNumber string, end time.Time, days int) (int, error)
	UpsertDailySamples(accountNumber string, samples []schema.DailySample) error
	UpsertProxySessions(accountNumber string, sessions []schema.ProxySession) error
}

// GetSampleWindow returns the trailing window of daily samples ending at end
// (inclusive), keyed by date. Missing dates are simply absent from the map.
func (m *mongoDB) GetSampleWindow(accountNumber string, end time.Time, days int) (map[string]schema.DailySample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	start := end.AddDate(0, 0, -(days - 1))
	c := m.client.Database(m.database).Collection(schema.DailySampleCollection)

	cursor, err := c.Find(ctx, bson.M{
		"account_number": accountNumber,
		"date": bson.M{
			"$gte": start.Format("2006-01-02"),
			"$lte": end.Format("2006-01-02"),
		},
	})
	if err != nil {
		return nil, err
	}

	var rows []schema.DailySample
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	window := make(map[string]schema.DailySample, len(rows))
	for _, r := range rows {
		window[r.Date] = r
	}
	return window, nil
}

// CountMeasuredProxySessions counts non-imputed proxy-source sessions in the
// trailing window. The companion day count for confidence grading comes from
// the daily sample rows, not from here.
func (m *mongoDB) CountMeasuredProxySessions(accountNumber string, end time.Time, days int) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	start := end.AddDate(0, 0, -(days - 1))
	c := m.client.Database(m.database).Collection(schema.ProxySessionCollection)

	count, err := c.CountDocuments(ctx, bson.M{
		"account_number": accountNumber,
		"imputed":        false,
		"date": bson.M{
			"$gte": start.Format("2006-01-02"),
			"$lte": end.Format("2006-01-02"),
		},
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// UpsertDailySamples writes a validated batch, one upsert per date. Samples
// are immutable per date in spirit: re-imports overwrite with the same data.
func (m *mongoDB) UpsertDailySamples(accountNumber string, samples []schema.DailySample) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.DailySampleCollection)
	for _, s := range samples {
		s.AccountNumber = accountNumber
		_, err := c.UpdateOne(ctx,
			bson.M{"account_number": accountNumber, "date": s.Date},
			bson.M{"$set": s},
			options.Update().SetUpsert(true))
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"date":   s.Date,
				"error":  err,
			}).Error("upsert daily sample")
			return err
		}
	}
	return nil
}

func (m *mongoDB) UpsertProxySessions(accountNumber string, sessions []schema.ProxySession) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProxySessionCollection)
	for _, s := range sessions {
		s.AccountNumber = accountNumber
		_, err := c.UpdateOne(ctx,
			bson.M{"account_number": accountNumber, "date": s.Date, "imputed": s.Imputed},
			bson.M{"$set": s},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
