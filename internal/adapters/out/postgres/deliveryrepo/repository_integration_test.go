package deliveryrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/deliveryrepo"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/pkg/errs"

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

// DeliveryRepositoryIntegrationTestSuite provides integration tests for DeliveryRepository
// using PostgreSQL containers to verify database persistence behavior.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	suite.assertDeliveryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_InvalidDelivery_BusinessRules() {
	testCases := []struct {
		name     string
		setup    func() (*delivery.Delivery, error)
		expected string
	}{
		{
			name: "empty street",
			setup: func() (*delivery.Delivery, error) {
				return delivery.NewDelivery(kernel.NewUUID(), "", logistics.Road)
			},
			expected: "street",
		},
		{
			name: "unknown logistics kind",
			setup: func() (*delivery.Delivery, error) {
				return delivery.NewDelivery(kernel.NewUUID(), "221B Baker Street", logistics.Unknown)
			},
			expected: "kind",
		},
		{
			name: "planned without instructions",
			setup: func() (*delivery.Delivery, error) {
				return delivery.RestoreDelivery(
					kernel.NewUUID(), "221B Baker Street", logistics.Road, delivery.Planned, "")
			},
			expected: "instructions",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			invalidDelivery, err := tc.setup()
			if err != nil {
				// Constructor validation failed as expected
				suite.Contains(err.Error(), tc.expected)
				return
			}

			err = suite.repository.Add(ctx, invalidDelivery)
			suite.Require().Error(err)
			suite.Contains(err.Error(), tc.expected)

			suite.assertDeliveryCount(0)
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_ReturnsDelivery() {
	ctx := context.Background()

	id := kernel.NewUUID()
	originalDelivery, err := delivery.NewDelivery(id, "10 Downing Street", logistics.Sea)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalDelivery).Once()

	err = suite.repository.Add(ctx, originalDelivery)
	suite.Require().NoError(err)

	retrievedDelivery, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedDelivery.ID())
	suite.Equal("10 Downing Street", retrievedDelivery.Street())
	suite.Equal(logistics.Sea, retrievedDelivery.Kind())
	suite.Equal(delivery.Requested, retrievedDelivery.Status())
	suite.Empty(retrievedDelivery.Instructions())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedDelivery, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedDelivery)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PlannedDelivery_PersistsInstructions() {
	testCases := []struct {
		name         string
		kind         logistics.Kind
		instructions string
	}{
		{
			name:         "road delivery planned with truck",
			kind:         logistics.Road,
			instructions: "Delivering by land in a box",
		},
		{
			name:         "sea delivery planned with ship",
			kind:         logistics.Sea,
			instructions: "Delivering by sea in a container",
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			initialDelivery, err := delivery.NewDelivery(kernel.NewUUID(), "221B Baker Street", tc.kind)
			suite.Require().NoError(err)

			suite.tracker.On("TrackAggregate", initialDelivery.ID(), initialDelivery).Twice()
			err = suite.repository.Add(ctx, initialDelivery)
			suite.Require().NoError(err)

			err = initialDelivery.Plan(tc.instructions)
			suite.Require().NoError(err)

			err = suite.repository.Update(ctx, initialDelivery)
			suite.Require().NoError(err)

			retrievedDelivery, err := suite.repository.Get(ctx, initialDelivery.ID())
			suite.Require().NoError(err)
			suite.Equal(delivery.Planned, retrievedDelivery.Status())
			suite.Equal(tc.instructions, retrievedDelivery.Instructions())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_ReturnsError() {
	ctx := context.Background()

	nonExistentDelivery := suite.createTestDelivery()

	// No expectations on tracker since operation should fail

	err := suite.repository.Update(ctx, nonExistentDelivery)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllInRequestedStatus_MixedStatuses_ReturnsOnlyRequested() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	requestedRoad := suite.createTestDeliveryWithKind(logistics.Road)
	requestedSea := suite.createTestDeliveryWithKind(logistics.Sea)
	plannedDelivery, err := delivery.RestoreDelivery(
		kernel.NewUUID(), "Fleet Street 12", logistics.Road, delivery.Planned, "Delivering by land in a box")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, requestedRoad))
	suite.Require().NoError(suite.repository.Add(ctx, requestedSea))
	suite.Require().NoError(suite.repository.Add(ctx, plannedDelivery))

	pending, err := suite.repository.GetAllInRequestedStatus(ctx)
	suite.Require().NoError(err)

	suite.Len(pending, 2)
	for _, d := range pending {
		suite.Equal(delivery.Requested, d.Status())
		suite.Empty(d.Instructions())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllInRequestedStatus_NoRequestedDeliveries_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Once()

	plannedDelivery, err := delivery.RestoreDelivery(
		kernel.NewUUID(), "Fleet Street 12", logistics.Sea, delivery.Planned, "Delivering by sea in a container")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, plannedDelivery))

	pending, err := suite.repository.GetAllInRequestedStatus(ctx)
	suite.Require().NoError(err)

	suite.Empty(pending)
	suite.tracker.AssertExpectations(suite.T())
}

// TestDeliveryRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *DeliveryRepositoryIntegrationTestSuite) TestDeliveryRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent delivery",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent delivery",
			operation: func() error {
				nonExistentDelivery := suite.createTestDelivery()
				return suite.repository.Update(context.Background(), nonExistentDelivery)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestDeliveryRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *DeliveryRepositoryIntegrationTestSuite) TestDeliveryRepository_Concurrency() {
	ctx := context.Background()

	initialDelivery := suite.createTestDelivery()
	suite.tracker.On("TrackAggregate", initialDelivery.ID(), initialDelivery).Once()
	err := suite.repository.Add(ctx, initialDelivery)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *delivery.Delivery, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedDelivery, readErr := suite.repository.Get(ctx, initialDelivery.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedDelivery
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialDelivery.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDelivery creates a basic test delivery with default values.
func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	return suite.createTestDeliveryWithKind(logistics.Road)
}

// createTestDeliveryWithKind creates a test delivery with the specified logistics kind.
func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDeliveryWithKind(
	kind logistics.Kind,
) *delivery.Delivery {
	testDelivery, err := delivery.NewDelivery(kernel.NewUUID(), "221B Baker Street", kind)
	suite.Require().NoError(err)
	return testDelivery
}

// assertDeliveryCount verifies the number of deliveries in the database.
func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int) {
	var count int64
	err := suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
