package queries_test

import (
	"context"
	"testing"
	"time"

	"tracker/internal/adapters/out/postgres/orderrepo"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}

type OrderQueryHandlersTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	getHandler    queries.GetOrderQueryHandler
	getAllHandler queries.GetAllOrdersQueryHandler
	orderRepo     *orderrepo.GormOrderRepository
}

func (suite *OrderQueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.getAllHandler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *OrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_ExistingOrder_MapsAllFields() {
	carrier := "DHL"
	estimated := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), &carrier, &estimated)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), resp.ID)
	suite.Equal(testOrder.CustomerID(), resp.CustomerID)
	suite.Equal(order.Pending, resp.Status)
	suite.Require().NotNil(resp.Carrier)
	suite.Equal(carrier, *resp.Carrier)
	suite.Require().NotNil(resp.EstimatedDelivery)
	suite.True(estimated.Equal(resp.EstimatedDelivery.UTC()))
	suite.False(resp.CreatedAt.IsZero())
	suite.False(resp.UpdatedAt.IsZero())
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_OrderWithoutOptionalFields_ReturnsNilPointers() {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(resp.Carrier)
	suite.Nil(resp.EstimatedDelivery)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_NonExistentOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.getHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *OrderQueryHandlersTestSuite) TestHandle_AdvancedOrder_ReflectsCurrentStatus() {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.Advance())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.Processing, resp.Status)
}

func (suite *OrderQueryHandlersTestSuite) TestHandleAll_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetAllOrdersQuery()
	suite.Require().NoError(err)

	resp, err := suite.getAllHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(resp.Orders)
	suite.Empty(resp.Orders)
}

func (suite *OrderQueryHandlersTestSuite) TestHandleAll_MultipleOrders_SortedNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)

	ids := make([]kernel.UUID, 3)
	for i := range 3 {
		createdAt := base.Add(time.Duration(i) * time.Minute)
		restored, err := order.RestoreOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			order.Pending,
			nil,
			nil,
			createdAt,
			createdAt,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), restored))
		ids[i] = restored.ID()
	}

	query, err := queries.NewGetAllOrdersQuery()
	suite.Require().NoError(err)

	resp, err := suite.getAllHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Orders, 3)

	// Newest order was created last
	suite.Equal(ids[2], resp.Orders[0].ID)
	suite.Equal(ids[1], resp.Orders[1].ID)
	suite.Equal(ids[0], resp.Orders[2].ID)
}

func (suite *OrderQueryHandlersTestSuite) TestHandleAll_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	_, err := suite.getAllHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

func (suite *OrderQueryHandlersTestSuite) TestHandleAll_ContextCancellation_ReturnsError() {
	for range 20 {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	}

	query, err := queries.NewGetAllOrdersQuery()
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.getAllHandler.Handle(ctx, query)

	suite.Require().Error(err)
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
