// Package queries contains read operations that answer questions about
// delivery dates and lead times without placing anything.
package queries

import (
	"errors"

	"deliverydate/internal/core/domain/model/kernel"
	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/pkg/guard"
)

var ErrEstimateDeliveryDateQueryIsNotConstructed = errors.New(
	"EstimateDeliveryDateQuery must be created via NewEstimateDeliveryDateQuery constructor",
)

// EstimateDeliveryDateQuery asks when an order placed on a given date to a
// given state would arrive.
//
// Example:
//
//	query, err := NewEstimateDeliveryDateQuery("ME", kernel.NewManagedDateNow(), leadtime.Regular)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewEstimateDeliveryDateQueryHandler(services.NewDeliveryDateCalculator())
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d days, arriving %s\n", estimate.LeadTimeDays, estimate.DeliveryDate)
type EstimateDeliveryDateQuery struct { //nolint:recvcheck //using for validation
	deliveryState string
	placedOn      kernel.ManagedDate
	speed         leadtime.Speed

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryDateQuery creates the query.
// The placement date and the speed must be valid. The state is taken as given.
func NewEstimateDeliveryDateQuery(
	deliveryState string,
	placedOn kernel.ManagedDate,
	speed leadtime.Speed,
) (EstimateDeliveryDateQuery, error) {
	query := EstimateDeliveryDateQuery{
		deliveryState: deliveryState,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPlacedOn(placedOn),
		query.setSpeed(speed),
	); err != nil {
		return EstimateDeliveryDateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimateDeliveryDateQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryDateQueryIsNotConstructed)
}

func (q EstimateDeliveryDateQuery) DeliveryState() string {
	return q.deliveryState
}

func (q EstimateDeliveryDateQuery) PlacedOn() kernel.ManagedDate {
	return q.placedOn
}

func (q EstimateDeliveryDateQuery) Speed() leadtime.Speed {
	return q.speed
}

func (q *EstimateDeliveryDateQuery) setPlacedOn(placedOn kernel.ManagedDate) error {
	if err := placedOn.Validate(); err != nil {
		return err
	}

	q.placedOn = placedOn
	return nil
}

func (q *EstimateDeliveryDateQuery) setSpeed(speed leadtime.Speed) error {
	if err := speed.Validate(); err != nil {
		return err
	}

	q.speed = speed
	return nil
}

// EstimateDeliveryDateQueryResponse is the read model of an estimate.
type EstimateDeliveryDateQueryResponse struct {
	DeliveryState string
	Speed         leadtime.Speed
	LeadTimeDays  int
	PlacedOn      kernel.ManagedDate
	DeliveryDate  kernel.ManagedDate
}
