package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/drakonoslav/bulk-coach-sub003/schema"
)

type SettingsTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewSettingsTestSuite(connURI, dbName string) *SettingsTestSuite {
	return &SettingsTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *SettingsTestSuite) SetupSuite() {
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

func (s *SettingsTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *SettingsTestSuite) TestPlansRoundTrip() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	freq := 3
	baseline := 10.0
	settings := schema.AccountSettings{
		Plans: map[schema.Domain]*schema.WeeklyPlan{
			schema.DomainCardio: {DaysOfWeek: []int{1, 5}},
			schema.DomainLift:   {FrequencyPerWeek: &freq},
		},
		SleepPlan:         &schema.SleepPlan{BedMinute: 23 * 60, WakeMinute: 7 * 60, PlannedSleepMins: 480},
		MovementBaselines: []schema.MovementBaseline{{Movement: "squat", BaselineReps: &baseline}},
	}
	s.NoError(store.UpdateSettings("accountS", settings))

	plan, err := store.GetWeeklyPlan("accountS", schema.DomainCardio)
	s.NoError(err)
	s.NotNil(plan)
	s.Equal([]int{1, 5}, plan.DaysOfWeek)

	// sleep has no weekly plan configured: nil, not a default
	plan, err = store.GetWeeklyPlan("accountS", schema.DomainSleep)
	s.NoError(err)
	s.Nil(plan)

	sleepPlan, err := store.GetSleepPlan("accountS")
	s.NoError(err)
	s.NotNil(sleepPlan)
	s.Equal(480.0, sleepPlan.PlannedSleepMins)

	baselines, err := store.GetMovementBaselines("accountS")
	s.NoError(err)
	s.Len(baselines, 1)
	s.Equal("squat", baselines[0].Movement)
}

func (s *SettingsTestSuite) TestUnknownAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	plan, err := store.GetWeeklyPlan("nobody", schema.DomainLift)
	s.NoError(err)
	s.Nil(plan)

	sleepPlan, err := store.GetSleepPlan("nobody")
	s.NoError(err)
	s.Nil(sleepPlan)

	baselines, err := store.GetMovementBaselines("nobody")
	s.NoError(err)
	s.Nil(baselines)
}

func TestSettingsTestSuite(t *testing.T) {
	suite.Run(t, NewSettingsTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
