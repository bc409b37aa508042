// Package commands contains the operations that turn a placed order into a
// shipment with a promised delivery date.
package commands

import (
	"errors"

	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place an order and promise a
// delivery date for it.
//
// The delivery state is taken as given. Codes the tables do not list, the
// empty string included, fall back to the table default when the date is
// computed.
//
// Example:
//
//	placedOn, _ := kernel.ParseManagedDate("2021-01-01")
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), "MA", placedOn, leadtime.Rush)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(services.NewDeliveryDateCalculator())
//	s, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Println(s.Summary())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	deliveryState string
	placedOn      kernel.ManagedDate
	speed         leadtime.Speed

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates the order ID, the placement date and the speed, and reports
// every failure at once.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	deliveryState string,
	placedOn kernel.ManagedDate,
	speed leadtime.Speed,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryState: deliveryState,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPlacedOn(placedOn),
		cmd.setSpeed(speed),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryState returns the destination state code.
func (c PlaceOrderCommand) DeliveryState() string {
	return c.deliveryState
}

// PlacedOn returns the placement date.
func (c PlaceOrderCommand) PlacedOn() kernel.ManagedDate {
	return c.placedOn
}

// Speed returns the requested delivery speed.
func (c PlaceOrderCommand) Speed() leadtime.Speed {
	return c.speed
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setPlacedOn(placedOn kernel.ManagedDate) error {
	if err := placedOn.Validate(); err != nil {
		return err
	}

	c.placedOn = placedOn
	return nil
}

func (c *PlaceOrderCommand) setSpeed(speed leadtime.Speed) error {
	if err := speed.Validate(); err != nil {
		return err
	}

	c.speed = speed
	return nil
}
