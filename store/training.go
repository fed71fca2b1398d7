package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// TrainingStore reads the domain logs behind the three outcome reports:
// strength rep history, cardio zone minutes and sleep logs.
type TrainingStore interface {
	GetAllRepEntries(accountNumber string) ([]schema.RepEntry, error)
	GetMovementBaselines(accountNumber string) ([]schema.MovementBaseline, error)
	GetZoneMinutes(accountNumber, dateISO string) (*schema.ZoneMinutes, error)
	GetSleepLog(accountNumber, dateISO string) (*schema.SleepLog, error)
}

// GetAllRepEntries returns the whole rep history; the adaptation classifier
// needs the first-ever session for training age, not just a trailing window.
func (m *mongoDB) GetAllRepEntries(accountNumber string) ([]schema.RepEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RepEntryCollection)
	cursor, err := c.Find(ctx, bson.M{"account_number": accountNumber})
	if err != nil {
		return nil, err
	}

	var entries []schema.RepEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (m *mongoDB) GetMovementBaselines(accountNumber string) ([]schema.MovementBaseline, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var settings schema.AccountSettings
	c := m.client.Database(m.database).Collection(schema.SettingsCollection)
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings.MovementBaselines, nil
}

func (m *mongoDB) GetZoneMinutes(accountNumber, dateISO string) (*schema.ZoneMinutes, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CardioSessionCollection)

	var row struct {
		Zones schema.ZoneMinutes `bson:"zones"`
	}
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber, "date": dateISO}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.Zones, nil
}

func (m *mongoDB) GetSleepLog(accountNumber, dateISO string) (*schema.SleepLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SleepLogCollection)

	var row schema.SleepLog
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber, "date": dateISO}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
