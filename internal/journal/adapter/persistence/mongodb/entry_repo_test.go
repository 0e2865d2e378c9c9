package mongodb_test

import (
	"context"
	"testing"
	"time"

	"travel-journal/internal/journal/adapter/persistence/mongodb"
	"travel-journal/internal/journal/domain/model"
	apperrors "travel-journal/internal/shared/errors"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EntryRepoTestSuite struct {
	suite.Suite
	client     *mongo.Client
	database   *mongo.Database
	repository *mongodb.MongoEntryRepository
}

func (suite *EntryRepoTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		suite.T().Skip("MongoDB not available for testing")
		return
	}

	suite.client = client
	suite.database = client.Database("travel_journal_entries_test")

	repo, err := mongodb.NewMongoEntryRepository(suite.database)
	if err != nil {
		suite.T().Skip("Failed to create repository for testing")
		return
	}
	suite.repository = repo
}

func (suite *EntryRepoTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.database.Drop(context.Background())
		suite.client.Disconnect(context.Background())
	}
}

func (suite *EntryRepoTestSuite) SetupTest() {
	if suite.database != nil {
		suite.database.Collection("entries").DeleteMany(context.Background(), bson.M{})
	}
}

func (suite *EntryRepoTestSuite) createEntry(owner, title, date, tripID string) *model.Entry {
	entry := &model.Entry{Title: title, Content: "content", Date: date, UserID: owner, TripID: tripID}
	suite.Require().NoError(suite.repository.Create(context.Background(), entry))
	suite.Require().NotEmpty(entry.ID)
	return entry
}

func (suite *EntryRepoTestSuite) TestList_FilteredByTrip() {
	ctx := context.Background()
	suite.createEntry("owner-1", "Day one", "2024-05-01", "trip-1")
	suite.createEntry("owner-1", "Loose note", "2024-05-02", "")

	all, err := suite.repository.List(ctx, "owner-1", "")
	suite.Require().NoError(err)
	suite.Len(all, 2)

	scoped, err := suite.repository.List(ctx, "owner-1", "trip-1")
	suite.Require().NoError(err)
	suite.Require().Len(scoped, 1)
	suite.Equal("Day one", scoped[0].Title)
}

func (suite *EntryRepoTestSuite) TestList_ScopedToOwner() {
	ctx := context.Background()
	suite.createEntry("owner-1", "Mine", "2024-05-01", "")
	suite.createEntry("owner-2", "Theirs", "2024-05-01", "")

	entries, err := suite.repository.List(ctx, "owner-1", "")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("Mine", entries[0].Title)
}

func (suite *EntryRepoTestSuite) TestUpdate_ForeignIDIsNotFound() {
	ctx := context.Background()
	entry := suite.createEntry("owner-1", "Day one", "2024-05-01", "")
	title := "Hijack attempt"

	_, err := suite.repository.Update(ctx, "owner-2", entry.ID, model.EntryUpdate{Title: &title})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *EntryRepoTestSuite) TestUpdate_DetachesTrip() {
	ctx := context.Background()
	entry := suite.createEntry("owner-1", "Day one", "2024-05-01", "trip-1")
	detached := ""

	updated, err := suite.repository.Update(ctx, "owner-1", entry.ID, model.EntryUpdate{TripID: &detached})

	suite.Require().NoError(err)
	suite.Empty(updated.TripID)

	scoped, err := suite.repository.List(ctx, "owner-1", "trip-1")
	suite.Require().NoError(err)
	suite.Empty(scoped, "the detached entry no longer matches the trip filter")
}

func (suite *EntryRepoTestSuite) TestDelete_ForeignIDIsNoOp() {
	ctx := context.Background()
	entry := suite.createEntry("owner-1", "Day one", "2024-05-01", "")

	suite.NoError(suite.repository.Delete(ctx, "owner-2", entry.ID))

	entries, err := suite.repository.List(ctx, "owner-1", "")
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *EntryRepoTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	entry := suite.createEntry("owner-1", "Day one", "2024-05-01", "")

	suite.Require().NoError(suite.repository.Delete(ctx, "owner-1", entry.ID))
	suite.NoError(suite.repository.Delete(ctx, "owner-1", entry.ID))
	suite.NoError(suite.repository.Delete(ctx, "owner-1", "not-a-hex-id"))
}

func TestEntryRepoTestSuite(t *testing.T) {
	suite.Run(t, new(EntryRepoTestSuite))
}
