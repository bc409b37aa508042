package queries

import (
	"errors"

	"deliverydate/internal/core/domain/model/leadtime"
	"deliverydate/internal/pkg/guard"
)

var ErrGetLeadTimesQueryIsNotConstructed = errors.New(
	"GetLeadTimesQuery must be created via NewGetLeadTimesQuery constructor",
)

// GetLeadTimesQuery retrieves both lead-time tables.
// This is a parameterless query.
type GetLeadTimesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLeadTimesQuery creates a query to retrieve the lead-time tables.
func NewGetLeadTimesQuery() GetLeadTimesQuery {
	return GetLeadTimesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLeadTimesQueryIsNotConstructed if validation fails.
func (q GetLeadTimesQuery) Validate() error {
	return q.guard.Validate(ErrGetLeadTimesQueryIsNotConstructed)
}

// LeadTimeEntry is one listed state and its lead time in days.
type LeadTimeEntry struct {
	State string
	Days  int
}

// LeadTimeTable is the read model of one table. Entries are sorted by state.
type LeadTimeTable struct {
	Speed        leadtime.Speed
	Entries      []LeadTimeEntry
	FallbackDays int
}

// GetLeadTimesQueryResponse holds the regular and rush tables.
type GetLeadTimesQueryResponse struct {
	Regular LeadTimeTable
	Rush    LeadTimeTable
}
