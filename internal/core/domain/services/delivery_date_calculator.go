package services

import (
	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/core/domain/model/order"
)

// DeliveryDateCalculator is a domain service that turns an order and a speed
// into a delivery date.
//
// Business rules:
//   - The rush table applies when isRush is set, the regular table otherwise
//   - The order's state code is looked up exactly and case-sensitively
//   - Unlisted codes take the table's fallback without error
//   - The result is the placement date advanced by the lead time in calendar days
//
// The calculator holds only read-only tables and is safe for concurrent use.
//
// Example usage:
//
//	calculator := services.NewDeliveryDateCalculator()
//	o, _ := order.NewOrder(kernel.NewUUID(), "MA", kernel.NewManagedDateNow())
//
//	date, err := calculator.RushDeliveryDate(o)
//	if err != nil {
//	    // The order was not built by order.NewOrder
//	    return err
//	}
//	fmt.Println("Order will be delivered on:", date)
type DeliveryDateCalculator struct {
	regular leadtime.Table
	rush    leadtime.Table
}

// NewDeliveryDateCalculator creates a calculator over the default lead-time tables.
func NewDeliveryDateCalculator() DeliveryDateCalculator {
	return DeliveryDateCalculator{
		regular: leadtime.RegularTable(),
		rush:    leadtime.RushTable(),
	}
}

// NewDeliveryDateCalculatorWithTables creates a calculator over caller-supplied tables.
// Both tables must have been built by leadtime.NewTable.
func NewDeliveryDateCalculatorWithTables(regular, rush leadtime.Table) (DeliveryDateCalculator, error) {
	if err := regular.Validate(); err != nil {
		return DeliveryDateCalculator{}, err
	}
	if err := rush.Validate(); err != nil {
		return DeliveryDateCalculator{}, err
	}
	return DeliveryDateCalculator{regular: regular, rush: rush}, nil
}

// ComputeDeliveryDate returns the order's placement date advanced by the lead
// time for its state in the table selected by isRush.
//
// Returns:
//   - kernel.ManagedDate: the delivery date, a new value
//   - error: order.ErrOrderIsNotConstructed when o is nil or a zero value
func (c DeliveryDateCalculator) ComputeDeliveryDate(o *order.Order, isRush bool) (kernel.ManagedDate, error) {
	if err := o.Validate(); err != nil {
		return kernel.ManagedDate{}, err
	}
	return o.PlacedOn().PlusDays(c.LeadTime(o.DeliveryState(), isRush)), nil
}

// RegularDeliveryDate is ComputeDeliveryDate with the regular table.
func (c DeliveryDateCalculator) RegularDeliveryDate(o *order.Order) (kernel.ManagedDate, error) {
	return c.ComputeDeliveryDate(o, false)
}

// RushDeliveryDate is ComputeDeliveryDate with the rush table.
func (c DeliveryDateCalculator) RushDeliveryDate(o *order.Order) (kernel.ManagedDate, error) {
	return c.ComputeDeliveryDate(o, true)
}

// LeadTime returns the number of days applied for state at the given speed.
func (c DeliveryDateCalculator) LeadTime(state string, isRush bool) int {
	return c.table(isRush).Lookup(state)
}

// Tables returns the regular and rush tables in use.
func (c DeliveryDateCalculator) Tables() (regular, rush leadtime.Table) {
	return c.regular, c.rush
}

func (c DeliveryDateCalculator) table(isRush bool) leadtime.Table {
	if isRush {
		return c.rush
	}
	return c.regular
}
