package courier

import (
	"fmt"

	"freshdispatch/internal/pkg/errs"
)

// OperatingStatus says whether a courier is currently working.
type OperatingStatus int

const (
	StatusUnknown OperatingStatus = iota
	Active
	Inactive
	Suspended
)

var operatingStatusNames = map[OperatingStatus]string{
	Active:    "active",
	Inactive:  "inactive",
	Suspended: "suspended",
}

func ParseOperatingStatus(s string) (OperatingStatus, error) {
	for status, name := range operatingStatusNames {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"operatingStatus", fmt.Errorf("%q is not a valid operating status", s))
}

func (s OperatingStatus) String() string {
	if name, ok := operatingStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s OperatingStatus) Validate() error {
	if _, ok := operatingStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("operatingStatus", fmt.Errorf("%d is not a valid operating status", s))
	}
	return nil
}
