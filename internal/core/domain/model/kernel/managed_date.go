package kernel

import (
	"time"

	"deliverydate/internal/pkg/errs"
	"deliverydate/internal/pkg/guard"
)

const (
	// DateLayout is the calendar-day form accepted by ParseManagedDate.
	DateLayout = "2006-01-02"

	displayLayout = "Mon Jan 02 2006"
	invalidDate   = "Invalid Date"
	hoursPerDay   = 24
)

// ErrManagedDateIsNotConstructed is returned when validating a zero-value ManagedDate
// or one built from the zero time.Time.
var ErrManagedDateIsNotConstructed = errs.NewValueIsRequiredError(
	"managed date must be created via NewManagedDate, NewManagedDateNow or ParseManagedDate")

// ManagedDate is an immutable point in time used at calendar-day granularity.
// Every derivation returns a new value; nothing mutates the wrapped time.
//
// The zero value is the invalid date. Deriving from it yields another invalid
// date, so the condition surfaces wherever Validate is eventually called.
//
// Example:
//
//	placed := kernel.NewManagedDate(time.Date(2021, time.January, 31, 0, 0, 0, 0, time.Local))
//	fmt.Println(placed.PlusDays(1)) // Mon Feb 01 2021
type ManagedDate struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewManagedDate wraps an explicit point in time. The zero time.Time yields
// the invalid date.
func NewManagedDate(when time.Time) ManagedDate {
	if when.IsZero() {
		return ManagedDate{}
	}
	return ManagedDate{
		value: when,
		guard: guard.NewConstructorGuard(),
	}
}

// NewManagedDateNow wraps the current moment.
func NewManagedDateNow() ManagedDate {
	return NewManagedDate(time.Now())
}

// ParseManagedDate parses a DateLayout string into local midnight of that day.
func ParseManagedDate(s string) (ManagedDate, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return ManagedDate{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return NewManagedDate(t), nil
}

// Validate returns ErrManagedDateIsNotConstructed for the invalid date.
func (d ManagedDate) Validate() error {
	return d.guard.Validate(ErrManagedDateIsNotConstructed)
}

// PlusDays returns a new date advanced by days calendar days, rolling over
// month and year boundaries. Negative values move backwards. The time of day
// and location are kept.
func (d ManagedDate) PlusDays(days int) ManagedDate {
	if d.Validate() != nil {
		return ManagedDate{}
	}
	return NewManagedDate(d.value.AddDate(0, 0, days))
}

// Time returns the wrapped time.
func (d ManagedDate) Time() time.Time {
	return d.value
}

// CalendarDay returns the same date at midnight in the date's location.
func (d ManagedDate) CalendarDay() ManagedDate {
	if d.Validate() != nil {
		return ManagedDate{}
	}
	y, m, day := d.value.Date()
	return NewManagedDate(time.Date(y, m, day, 0, 0, 0, 0, d.value.Location()))
}

// DaysUntil returns the number of calendar days from d to other, ignoring the
// time of day. It is negative when other falls on an earlier day.
func (d ManagedDate) DaysUntil(other ManagedDate) int {
	y1, m1, d1 := d.value.Date()
	y2, m2, d2 := other.value.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / hoursPerDay)
}

// OnOrBefore reports whether d falls on the same calendar day as other or earlier.
func (d ManagedDate) OnOrBefore(other ManagedDate) bool {
	return d.DaysUntil(other) >= 0
}

func (d ManagedDate) Equal(other ManagedDate) bool {
	return d.value.Equal(other.value)
}

func (d ManagedDate) Before(other ManagedDate) bool {
	return d.value.Before(other.value)
}

func (d ManagedDate) After(other ManagedDate) bool {
	return d.value.After(other.value)
}

// DateString renders the date in DateLayout.
func (d ManagedDate) DateString() string {
	if d.Validate() != nil {
		return invalidDate
	}
	return d.value.Format(DateLayout)
}

// String renders the date for people, e.g. "Sat Jan 02 2021".
func (d ManagedDate) String() string {
	if d.Validate() != nil {
		return invalidDate
	}
	return d.value.Format(displayLayout)
}
