package strata

import (
	"fmt"
	"math"
)

// ValidateSections strictly checks a section list before it is handed to
// NewTimeline. The Timeline itself deliberately accepts anything, including
// negative mounts, zero durations, and NaN, so hosts that want early failure
// call this first. Returns an error naming the first offending section, or
// nil (an empty list is valid: it yields an inert Timeline).
func ValidateSections(sections []Section) error {
	for i := range sections {
		s := &sections[i]
		switch {
		case s.Controller == nil:
			return fmt.Errorf("validate sections: section %d has no controller", i)
		case math.IsNaN(s.MountPoint) || math.IsInf(s.MountPoint, 0):
			return fmt.Errorf("validate sections: section %d has non-finite mount point %v", i, s.MountPoint)
		case math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0):
			return fmt.Errorf("validate sections: section %d has non-finite duration %v", i, s.Duration)
		case s.Duration <= 0:
			return fmt.Errorf("validate sections: section %d has non-positive duration %v", i, s.Duration)
		}
	}
	return nil
}
