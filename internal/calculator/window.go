package calculator

import "fmt"

// TimeRange is a history window selectable on the dashboard, in days.
type TimeRange int

const (
	Range5Days   TimeRange = 5
	Range10Days  TimeRange = 10
	Range1Month  TimeRange = 30
	Range3Months TimeRange = 90
	Range1Year   TimeRange = 365

	DefaultRange = Range10Days
)

// TimeRanges lists the selectable windows in display order.
var TimeRanges = []TimeRange{Range5Days, Range10Days, Range1Month, Range3Months, Range1Year}

// ParseTimeRange accepts a day count from TimeRanges.
func ParseTimeRange(days int) (TimeRange, error) {
	for _, r := range TimeRanges {
		if int(r) == days {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unsupported time range %d days", days)
}

// Label is the dashboard caption of the window.
func (r TimeRange) Label() string {
	switch r {
	case Range1Month:
		return "1 Month"
	case Range3Months:
		return "3 Months"
	case Range1Year:
		return "1 Year"
	default:
		return fmt.Sprintf("%d Days", int(r))
	}
}
