package commands

import (
	"context"

	"deliverydate/internal/core/domain/model/order"
	"deliverydate/internal/core/domain/model/shipment"
	"deliverydate/internal/core/ports"

	"cloudeng.io/logging/ctxlog"
)

// PlaceOrderCommandHandler builds the order, asks the calculator for its
// delivery date and returns the shipment that records the promise.
//
// The handler logs through the logger carried by ctx (see ctxlog.WithLogger).
// Without one, nothing is logged.
type PlaceOrderCommandHandler struct {
	calculator ports.DeliveryDateCalculator
}

// NewPlaceOrderCommandHandler creates a handler over the given calculator.
func NewPlaceOrderCommandHandler(calculator ports.DeliveryDateCalculator) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		calculator: calculator,
	}
}

// Handle processes the command.
// Returns the command's validation error, or whatever the order, the
// calculator or the shipment reject.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.DeliveryState(), cmd.PlacedOn())
	if err != nil {
		return nil, err
	}

	deliveryDate, err := h.calculator.ComputeDeliveryDate(o, cmd.Speed().IsRush())
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(o.ID(), o.DeliveryState(), cmd.Speed(), o.PlacedOn(), deliveryDate)
	if err != nil {
		return nil, err
	}

	ctxlog.Logger(ctx).InfoContext(ctx, "Order placed",
		"order_id", s.OrderID().String(),
		"state", s.DeliveryState(),
		"speed", s.Speed().String(),
		"placed_on", s.PlacedOn().DateString(),
		"delivery_date", s.DeliveryDate().DateString(),
	)

	return s, nil
}
