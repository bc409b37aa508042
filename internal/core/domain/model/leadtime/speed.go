package leadtime

import (
	"fmt"
	"strings"

	"deliverydate/internal/pkg/errs"
)

// Speed selects the shipping tier and with it the lead-time table.
type Speed int

const (
	// Unknown catches uninitialized Speed values.
	Unknown Speed = iota

	// Regular is standard delivery.
	Regular

	// Rush is expedited delivery with shorter lead times.
	Rush
)

func getSpeedStrings() map[Speed]string {
	return map[Speed]string{
		Unknown: "unknown",
		Regular: "regular",
		Rush:    "rush",
	}
}

// SpeedFromRush maps the rush flag used by callers to a Speed.
func SpeedFromRush(isRush bool) Speed {
	if isRush {
		return Rush
	}
	return Regular
}

// ParseSpeed accepts "regular" or "rush" in any case.
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return Regular, nil
	case "rush":
		return Rush, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("speed", fmt.Errorf("%q is not a valid speed", s))
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Speed) Validate() error {
	if s != Regular && s != Rush {
		return errs.NewValueIsInvalidErrorWithCause("speed", fmt.Errorf("%d is not a valid speed", s))
	}
	return nil
}

// IsRush reports whether the rush table applies.
func (s Speed) IsRush() bool {
	return s == Rush
}

// Table returns the lead-time table for the speed. Anything other than Rush
// uses the regular table.
func (s Speed) Table() Table {
	return TableFor(s.IsRush())
}

func (s Speed) String() string {
	if str, ok := getSpeedStrings()[s]; ok {
		return str
	}
	return "unknown"
}
