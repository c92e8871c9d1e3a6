package commands_test

import (
	"context"
	"errors"
	"testing"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CreateOrderRepo struct{ mock.Mock }

func (m *CreateOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *CreateOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *CreateOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *CreateOrderRepo) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type CreateOrderUoW struct{ mock.Mock }

func (m *CreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *CreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type createOrderUoWFactory struct{ uow commands.OrderUoW }

func (f createOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should create and persist an order", func(t *testing.T) {
		repo := new(CreateOrderRepo)
		uow := new(CreateOrderUoW)

		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(errors.New("no active transaction"))

		orderID := kernel.NewUUID()
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(orderID) && o.Status() == order.Pending
		})).Return(nil)

		handler := commands.NewCreateOrderCommandHandler(createOrderUoWFactory{uow: uow})
		cmd, err := commands.NewCreateOrderCommand(orderID, kernel.NewUUID(), nil, nil)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", ctx)
	})

	t.Run("should roll back when persistence fails", func(t *testing.T) {
		repo := new(CreateOrderRepo)
		uow := new(CreateOrderUoW)
		storeErr := errors.New("connection reset")

		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("Add", ctx, mock.Anything).Return(storeErr)

		handler := commands.NewCreateOrderCommandHandler(createOrderUoWFactory{uow: uow})
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		uow.AssertNotCalled(t, "Commit", ctx)
		uow.AssertCalled(t, "Rollback", ctx)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		handler := commands.NewCreateOrderCommandHandler(createOrderUoWFactory{})

		err := handler.Handle(ctx, commands.CreateOrderCommand{})

		require.Error(t, err)
		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, err)
	})
}
