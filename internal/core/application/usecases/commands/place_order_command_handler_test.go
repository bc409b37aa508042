package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"deliverydate/internal/core/application/usecases/commands"
	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/core/domain/model/order"
	"deliverydate/internal/core/domain/services"

	"cloudeng.io/logging/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryDateCalculator struct{ mock.Mock }

func (m *MockDeliveryDateCalculator) ComputeDeliveryDate(o *order.Order, isRush bool) (kernel.ManagedDate, error) {
	args := m.Called(o, isRush)
	return args.Get(0).(kernel.ManagedDate), args.Error(1)
}

func (m *MockDeliveryDateCalculator) LeadTime(state string, isRush bool) int {
	args := m.Called(state, isRush)
	return args.Int(0)
}

func (m *MockDeliveryDateCalculator) Tables() (leadtime.Table, leadtime.Table) {
	args := m.Called()
	return args.Get(0).(leadtime.Table), args.Get(1).(leadtime.Table)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(id, "NY", placedOn(), leadtime.Rush)
	require.NoError(t, err)

	calculator := new(MockDeliveryDateCalculator)
	calculator.On("ComputeDeliveryDate", mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(id) && o.DeliveryState() == "NY"
	}), true).Return(placedOn().PlusDays(3), nil).Once()

	h := commands.NewPlaceOrderCommandHandler(calculator)
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, s.OrderID().IsEqual(id))
	assert.Equal(t, leadtime.Rush, s.Speed())
	assert.Equal(t, "2021-01-04", s.DeliveryDate().DateString())
	assert.Equal(t, 3, s.LeadTimeDays())
	calculator.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_RegularSpeedSelectsRegularTable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "ME", placedOn(), leadtime.Regular)
	require.NoError(t, err)

	calculator := new(MockDeliveryDateCalculator)
	calculator.On("ComputeDeliveryDate", mock.AnythingOfType("*order.Order"), false).
		Return(placedOn().PlusDays(5), nil).Once()

	h := commands.NewPlaceOrderCommandHandler(calculator)
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "2021-01-06", s.DeliveryDate().DateString())
	calculator.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	calculator := new(MockDeliveryDateCalculator)

	h := commands.NewPlaceOrderCommandHandler(calculator)
	s, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	assert.Nil(t, s)
	calculator.AssertNotCalled(t, "ComputeDeliveryDate", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CalculatorError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "MA", placedOn(), leadtime.Rush)
	require.NoError(t, err)

	calculator := new(MockDeliveryDateCalculator)
	calculator.On("ComputeDeliveryDate", mock.Anything, true).
		Return(kernel.ManagedDate{}, errors.New("calculator error")).Once()

	h := commands.NewPlaceOrderCommandHandler(calculator)
	s, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "calculator error")
	assert.Nil(t, s)
	calculator.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DateBeforePlacement(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "MA", placedOn(), leadtime.Rush)
	require.NoError(t, err)

	calculator := new(MockDeliveryDateCalculator)
	calculator.On("ComputeDeliveryDate", mock.Anything, true).
		Return(placedOn().PlusDays(-1), nil).Once()

	h := commands.NewPlaceOrderCommandHandler(calculator)
	s, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, s)
}

func TestPlaceOrderCommandHandler_Handle_LogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "CA", placedOn(), leadtime.Regular)
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(services.NewDeliveryDateCalculator())
	s, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Order will be delivered on: Thu Jan 07 2021", s.Summary())
	assert.Contains(t, buf.String(), `"msg":"Order placed"`)
	assert.Contains(t, buf.String(), `"delivery_date":"2021-01-07"`)
	assert.Contains(t, buf.String(), `"speed":"regular"`)
}
