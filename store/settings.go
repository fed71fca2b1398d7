package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

// SettingsStore is the narrow read interface for per-account plan settings.
// The resolver and classifiers never reach into settings themselves; callers
// read here and pass values in explicitly.
type SettingsStore interface {
	GetWeeklyPlan(accountNumber string, domain schema.Domain) (*schema.WeeklyPlan, error)
	GetSleepPlan(accountNumber string) (*schema.SleepPlan, error)
	UpdateSettings(accountNumber string, settings schema.AccountSettings) error
}

func (m *mongoDB) getSettings(accountNumber string) (*schema.AccountSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	var settings schema.AccountSettings
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetWeeklyPlan returns the domain's plan, or nil when the account has none.
// A nil plan is a first-class answer; the resolver turns it into an unknown
// schedule decision rather than a default.
func (m *mongoDB) GetWeeklyPlan(accountNumber string, domain schema.Domain) (*schema.WeeklyPlan, error) {
	settings, err := m.getSettings(accountNumber)
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.Plans[domain], nil
}

func (m *mongoDB) GetSleepPlan(accountNumber string) (*schema.SleepPlan, error) {
	settings, err := m.getSettings(accountNumber)
	if err != nil || settings == nil {
		return nil, err
	}
	return settings.SleepPlan, nil
}

func (m *mongoDB) UpdateSettings(accountNumber string, settings schema.AccountSettings) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	settings.AccountNumber = accountNumber
	settings.LastUpdate = time.Now().Unix()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)
	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true))
	return err
}
