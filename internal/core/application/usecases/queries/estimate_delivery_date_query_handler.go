package queries

import (
	"context"

	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/order"
	"deliverydate/internal/core/ports"
)

// EstimateDeliveryDateQueryHandler answers EstimateDeliveryDateQuery with
// the calculator. The order it builds is transient and gets a fresh id.
type EstimateDeliveryDateQueryHandler struct {
	calculator ports.DeliveryDateCalculator
}

// NewEstimateDeliveryDateQueryHandler creates a handler over the given calculator.
func NewEstimateDeliveryDateQueryHandler(calculator ports.DeliveryDateCalculator) EstimateDeliveryDateQueryHandler {
	return EstimateDeliveryDateQueryHandler{calculator: calculator}
}

// Handle executes the query.
func (h EstimateDeliveryDateQueryHandler) Handle(
	_ context.Context,
	query EstimateDeliveryDateQuery,
) (EstimateDeliveryDateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateDeliveryDateQueryResponse{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), query.DeliveryState(), query.PlacedOn())
	if err != nil {
		return EstimateDeliveryDateQueryResponse{}, err
	}

	isRush := query.Speed().IsRush()
	deliveryDate, err := h.calculator.ComputeDeliveryDate(o, isRush)
	if err != nil {
		return EstimateDeliveryDateQueryResponse{}, err
	}

	return EstimateDeliveryDateQueryResponse{
		DeliveryState: query.DeliveryState(),
		Speed:         query.Speed(),
		LeadTimeDays:  h.calculator.LeadTime(query.DeliveryState(), isRush),
		PlacedOn:      query.PlacedOn(),
		DeliveryDate:  deliveryDate,
	}, nil
}
