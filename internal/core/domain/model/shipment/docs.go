// Package shipment provides the Shipment aggregate, which records the
// delivery date promised for an order together with the speed it was
// computed for, and renders the customer confirmation line.
package shipment
