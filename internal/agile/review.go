package agile

import "time"

const (
	reviewLowThreshold  = 1
	reviewHighThreshold = 3
)

// ReviewLevel classifies how long an issue has been waiting after resolution
type ReviewLevel int

const (
	ReviewUnknown ReviewLevel = iota
	ReviewLow
	ReviewMedium
	ReviewHigh
)

func (l ReviewLevel) String() string {
	switch l {
	case ReviewLow:
		return "low"
	case ReviewMedium:
		return "medium"
	case ReviewHigh:
		return "high"
	default:
		return "unknown"
	}
}

// DaysOnReview returns the whole days elapsed between the resolution date and
// now. The result is negative when the resolution date lies in the future.
// ok is false when the issue is not resolved.
func (i Issue) DaysOnReview(now time.Time) (days int, ok bool) {
	if i.ResolutionDate == nil {
		return 0, false
	}
	return int(now.Sub(*i.ResolutionDate) / (24 * time.Hour)), true
}

// ReviewLevel classifies DaysOnReview: Low up to 1 day, Medium for 2 and 3
// days, High above 3 days, Unknown without a resolution date.
func (i Issue) ReviewLevel(now time.Time) ReviewLevel {
	days, ok := i.DaysOnReview(now)
	if !ok {
		return ReviewUnknown
	}
	return LevelForDays(days)
}

// LevelForDays classifies a day count
func LevelForDays(days int) ReviewLevel {
	switch {
	case days <= reviewLowThreshold:
		return ReviewLow
	case days <= reviewHighThreshold:
		return ReviewMedium
	default:
		return ReviewHigh
	}
}
