package queries

import (
	"context"

	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/core/ports"
)

// GetLeadTimesQueryHandler reads the tables the calculator uses.
//
// Example:
//
//	handler := NewGetLeadTimesQueryHandler(services.NewDeliveryDateCalculator())
//	tables, err := handler.Handle(ctx, NewGetLeadTimesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, entry := range tables.Rush.Entries {
//	    fmt.Printf("%s\t%d\n", entry.State, entry.Days)
//	}
type GetLeadTimesQueryHandler struct {
	calculator ports.DeliveryDateCalculator
}

// NewGetLeadTimesQueryHandler creates a handler over the given calculator.
func NewGetLeadTimesQueryHandler(calculator ports.DeliveryDateCalculator) GetLeadTimesQueryHandler {
	return GetLeadTimesQueryHandler{calculator: calculator}
}

// Handle executes the query.
func (h GetLeadTimesQueryHandler) Handle(_ context.Context, query GetLeadTimesQuery) (GetLeadTimesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLeadTimesQueryResponse{}, err
	}

	regular, rush := h.calculator.Tables()
	for _, table := range []leadtime.Table{regular, rush} {
		if err := table.Validate(); err != nil {
			return GetLeadTimesQueryResponse{}, err
		}
	}

	return GetLeadTimesQueryResponse{
		Regular: toLeadTimeTable(leadtime.Regular, regular),
		Rush:    toLeadTimeTable(leadtime.Rush, rush),
	}, nil
}

func toLeadTimeTable(speed leadtime.Speed, table leadtime.Table) LeadTimeTable {
	states := table.States()
	entries := make([]LeadTimeEntry, 0, len(states))
	for _, state := range states {
		entries = append(entries, LeadTimeEntry{State: state, Days: table.Lookup(state)})
	}

	return LeadTimeTable{
		Speed:        speed,
		Entries:      entries,
		FallbackDays: table.Fallback(),
	}
}
