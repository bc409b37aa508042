package leadtime

import (
	"errors"
	"maps"
	"slices"

	"deliverydate/internal/pkg/errs"
	"deliverydate/internal/pkg/guard"
)

const (
	// MinDays is the shortest lead time a table may hold.
	MinDays = 1
	// MaxDays is the longest lead time a table may hold.
	MaxDays = 365
)

// ErrTableIsNotConstructed is returned when validating a zero-value Table.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table maps a state code to a lead time in days, with a fallback for codes
// that are not listed. It is immutable once built: NewTable copies its input
// and no method hands out the underlying map.
//
// Lookups are exact and case-sensitive. "ma", "" and "CA" are all misses in a
// table that only lists "MA", and misses silently return the fallback.
type Table struct {
	days     map[string]int
	fallback int
	guard    guard.ConstructorGuard
}

// NewTable builds a Table from days and fallback. Every value, including the
// fallback, must lie in [MinDays, MaxDays] and no state code may be empty.
// All violations are reported together.
func NewTable(days map[string]int, fallback int) (Table, error) {
	var problems []error

	if fallback < MinDays || fallback > MaxDays {
		problems = append(problems, errs.NewValueIsOutOfRangeError("fallback", fallback, MinDays, MaxDays))
	}

	for _, state := range slices.Sorted(maps.Keys(days)) {
		if state == "" {
			problems = append(problems, errs.NewValueIsRequiredError("state code"))
			continue
		}
		if d := days[state]; d < MinDays || d > MaxDays {
			problems = append(problems, errs.NewValueIsOutOfRangeError(state, d, MinDays, MaxDays))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Table{}, err
	}

	return Table{
		days:     maps.Clone(days),
		fallback: fallback,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrTableIsNotConstructed for the zero Table.
func (t Table) Validate() error {
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Lookup returns the lead time for state, or the fallback when state is not listed.
func (t Table) Lookup(state string) int {
	if d, ok := t.days[state]; ok {
		return d
	}
	return t.fallback
}

// Has reports whether state has its own entry.
func (t Table) Has(state string) bool {
	_, ok := t.days[state]
	return ok
}

func (t Table) Fallback() int {
	return t.fallback
}

// Min returns the smallest lead time the table can produce, fallback included.
func (t Table) Min() int {
	least := t.fallback
	for _, d := range t.days {
		least = min(least, d)
	}
	return least
}

// States returns the listed state codes in sorted order.
func (t Table) States() []string {
	return slices.Sorted(maps.Keys(t.days))
}

// Entries returns a copy of the listed lead times.
func (t Table) Entries() map[string]int {
	return maps.Clone(t.days)
}
