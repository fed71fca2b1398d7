package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes every collection relies on. Store code
// assumes these exist; tests run IndexAll against a clean database first.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	db := client.Database(m.database)

	accountDate := mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	for _, collection := range []string{
		DailySampleCollection,
		ReadinessCollection,
		CardioSessionCollection,
		SleepLogCollection,
	} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, accountDate); err != nil {
			log.WithFields(log.Fields{
				"prefix":     "schema",
				"collection": collection,
				"error":      err,
			}).Error("create index")
			return err
		}
	}

	// proxy sessions and rep entries can record multiple rows per date
	accountDateLoose := mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_number", Value: 1},
			{Key: "date", Value: 1},
		},
	}
	for _, collection := range []string{ProxySessionCollection, RepEntryCollection} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, accountDateLoose); err != nil {
			return err
		}
	}

	_, err = db.Collection(SettingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "account_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
