package shipment

import (
	"errors"
	"fmt"

	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment was not created through NewShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

const summaryPrefix = "Order will be delivered on: "

// Shipment records the delivery date promised for an order.
//
// Shipment follows these invariants:
//   - Must reference a valid order identifier
//   - Must have a valid speed
//   - Placement and delivery dates must be valid
//   - The delivery date is never before the placement date
type Shipment struct {
	orderID       kernel.UUID
	deliveryState string
	speed         leadtime.Speed
	placedOn      kernel.ManagedDate
	deliveryDate  kernel.ManagedDate

	isConstructed bool
}

// NewShipment creates a Shipment for an order whose delivery date has been computed.
//
// Example:
//
//	date, _ := calculator.RushDeliveryDate(o)
//	s, err := shipment.NewShipment(o.ID(), o.DeliveryState(), leadtime.Rush, o.PlacedOn(), date)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.Summary())
func NewShipment(
	orderID kernel.UUID,
	deliveryState string,
	speed leadtime.Speed,
	placedOn kernel.ManagedDate,
	deliveryDate kernel.ManagedDate,
) (*Shipment, error) {
	s := &Shipment{
		deliveryState: deliveryState,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setOrderID(orderID),
		s.setSpeed(speed),
		s.setDates(placedOn, deliveryDate),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate returns ErrShipmentIsNotConstructed for nil and zero-value shipments.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Shipment) DeliveryState() string {
	return s.deliveryState
}

func (s *Shipment) Speed() leadtime.Speed {
	return s.speed
}

func (s *Shipment) PlacedOn() kernel.ManagedDate {
	return s.placedOn
}

func (s *Shipment) DeliveryDate() kernel.ManagedDate {
	return s.deliveryDate
}

// LeadTimeDays is the number of calendar days between placement and delivery.
func (s *Shipment) LeadTimeDays() int {
	return s.placedOn.DaysUntil(s.deliveryDate)
}

// IsDeliveredBy reports whether the delivery day falls on or before asOf.
func (s *Shipment) IsDeliveredBy(asOf kernel.ManagedDate) bool {
	return s.deliveryDate.OnOrBefore(asOf)
}

// Summary is the confirmation line shown to the customer.
func (s *Shipment) Summary() string {
	return summaryPrefix + s.deliveryDate.String()
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setSpeed(speed leadtime.Speed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	s.speed = speed
	return nil
}

func (s *Shipment) setDates(placedOn, deliveryDate kernel.ManagedDate) error {
	if err := errors.Join(placedOn.Validate(), deliveryDate.Validate()); err != nil {
		return err
	}
	if deliveryDate.Before(placedOn) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery date is invalid",
			fmt.Errorf("%s is before placement on %s", deliveryDate.DateString(), placedOn.DateString()),
		)
	}
	s.placedOn = placedOn
	s.deliveryDate = deliveryDate
	return nil
}
