// Package ports declares the contracts the application layer depends on.
// Handlers receive these interfaces so tests can substitute mocks.
package ports

import (
	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/core/domain/model/order"
)

// DeliveryDateCalculator computes delivery dates from the lead-time tables.
// services.DeliveryDateCalculator satisfies it.
type DeliveryDateCalculator interface {
	// ComputeDeliveryDate advances the order's placement date by the lead
	// time for its state in the table selected by isRush.
	ComputeDeliveryDate(o *order.Order, isRush bool) (kernel.ManagedDate, error)

	// LeadTime returns the days applied for state at the given speed.
	LeadTime(state string, isRush bool) int

	// Tables returns the regular and rush tables in use.
	Tables() (regular, rush leadtime.Table)
}
