package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

type DailySampleTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewDailySampleTestSuite(connURI, dbName string) *DailySampleTestSuite {
	return &DailySampleTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *DailySampleTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	mongoClient, err := connectTestMongo(s.T(), s.connURI)
	if err != nil {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *DailySampleTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func samplePtr(v float64) *float64 { return &v }

func (s *DailySampleTestSuite) TestSampleWindow() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	samples := []schema.DailySample{
		{Date: "2026-02-20", HRV: samplePtr(52)},
		{Date: "2026-02-23", HRV: samplePtr(55), RestingHR: samplePtr(58)},
		{Date: "2026-02-25", HRV: samplePtr(50)},
		{Date: "2026-02-26", HRV: samplePtr(90)}, // after the window end
	}
	s.NoError(store.UpsertDailySamples("accountW", samples))

	end := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	window, err := store.GetSampleWindow("accountW", end, 7)
	s.NoError(err)

	// gap dates are simply absent, dates past the end never appear
	s.Len(window, 3)
	s.NotContains(window, "2026-02-26")
	s.Equal(55.0, *window["2026-02-23"].HRV)
	s.Nil(window["2026-02-25"].RestingHR)

	// the same date re-imported overwrites in place
	s.NoError(store.UpsertDailySamples("accountW", []schema.DailySample{
		{Date: "2026-02-25", HRV: samplePtr(51)},
	}))
	window, err = store.GetSampleWindow("accountW", end, 7)
	s.NoError(err)
	s.Len(window, 3)
	s.Equal(51.0, *window["2026-02-25"].HRV)
}

func (s *DailySampleTestSuite) TestCountMeasuredProxySessions() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	sessions := []schema.ProxySession{
		{Date: "2026-02-20", Score: 60, Imputed: false},
		{Date: "2026-02-21", Score: 61, Imputed: false},
		{Date: "2026-02-21", Score: 62, Imputed: true}, // imputed never counts
		{Date: "2026-02-23", Score: 63, Imputed: true},
		{Date: "2026-02-25", Score: 64, Imputed: false},
	}
	s.NoError(store.UpsertProxySessions("accountP", sessions))

	end := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	count, err := store.CountMeasuredProxySessions("accountP", end, 7)
	s.NoError(err)
	s.Equal(3, count)

	count, err = store.CountMeasuredProxySessions("nobody", end, 7)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *DailySampleTestSuite) TestCumulativeCounters() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	counters, err := store.GetCumulativeCounters("accountC")
	s.NoError(err)
	s.Empty(counters)

	s.NoError(store.SetCumulativeCounters("accountC", map[string]float64{
		"steps":   120000,
		"cardioS": 43,
	}))
	// a batch naming only one counter must not erase the other's mark
	s.NoError(store.SetCumulativeCounters("accountC", map[string]float64{
		"steps": 125000,
	}))

	counters, err = store.GetCumulativeCounters("accountC")
	s.NoError(err)
	s.Equal(125000.0, counters["steps"])
	s.Equal(43.0, counters["cardioS"])
}

func TestDailySampleTestSuite(t *testing.T) {
	suite.Run(t, NewDailySampleTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
