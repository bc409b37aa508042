// Package services contains domain services that don't belong to a single entity.
//
// DeliveryDateCalculator combines an order with the lead-time tables to
// produce a delivery date. It is a pure function of its inputs: no I/O, no
// shared mutable state, nothing to cancel.
package services
