package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"launderly/internal/adapters/out/postgres/requestrepo"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RequestRepositoryIntegrationTestSuite provides integration tests for
// RequestRepository using PostgreSQL containers.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requestrepo.GormRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&requestrepo.RequestDTO{}))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = requestrepo.NewGormRequestRepository(suite.db, suite.tracker)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequestRepositoryIntegrationTestSuite) newPickup() *request.Request {
	addr, err := kernel.NewAddress("Main St 5", 3.2)
	suite.Require().NoError(err)
	r, err := request.NewRequest(kernel.NewUUID(), request.Pickup, "Jane", addr)
	suite.Require().NoError(err)
	return r
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	pickup := suite.newPickup()

	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	loaded, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(pickup.ID()))
	suite.Equal(request.Pickup, loaded.Kind())
	suite.Equal(request.WaitingForDriver, loaded.Status())
	suite.Equal("Jane", loaded.CustomerName())
	suite.Equal("Main St 5", loaded.Address().Line())
	suite.InDelta(3.2, loaded.Address().DistanceKm(), 0.0001)
	suite.Equal(1, loaded.Version())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", pickup.ID(), pickup)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_AdvancesStatusAndVersion() {
	ctx := context.Background()
	pickup := suite.newPickup()
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	suite.Require().NoError(pickup.Advance())
	suite.Require().NoError(suite.repository.Update(ctx, pickup))

	loaded, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)
	suite.Equal(request.OnTheWayToCustomer, loaded.Status())
	suite.Equal(2, loaded.Version())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflict() {
	ctx := context.Background()
	pickup := suite.newPickup()
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	// Two actors load the same row; the first write wins.
	first, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Advance())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Advance())
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionConflict)

	loaded, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Version())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_MissingRow_NotFound() {
	ctx := context.Background()
	pickup := suite.newPickup()
	suite.Require().NoError(pickup.Advance())

	err := suite.repository.Update(ctx, pickup)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}
