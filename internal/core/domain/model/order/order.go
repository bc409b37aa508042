package order

import (
	"errors"

	"deliverydate/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is what a customer placed: where it goes and when it was placed.
// It is immutable once built.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid placement date
//   - Can only be created through NewOrder
//
// The delivery state is taken as given. Codes missing from the lead-time
// tables, including empty or lowercase ones, are resolved by the tables'
// fallback rather than rejected here.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// deliveryState is the short region code of the destination, e.g. "MA"
	deliveryState string

	// placedOn is when the order was placed
	placedOn kernel.ManagedDate

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order after validating its identifier and placement date.
// All validation failures are joined into the returned error.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "MA", kernel.NewManagedDateNow())
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, deliveryState string, placedOn kernel.ManagedDate) (*Order, error) {
	o := &Order{
		deliveryState: deliveryState,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedOn(placedOn),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) DeliveryState() string {
	return o.deliveryState
}

func (o *Order) PlacedOn() kernel.ManagedDate {
	return o.placedOn
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedOn(placedOn kernel.ManagedDate) error {
	if err := placedOn.Validate(); err != nil {
		return err
	}
	o.placedOn = placedOn
	return nil
}
