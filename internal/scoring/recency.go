package scoring

import (
	"math"
	"time"
)

// RecencyScore returns the time-decay contribution of a posting's age, in
// [0, maxScore]. The age in whole days is clamped to windowDays, so postings
// at or beyond the window contribute 0 and brand-new postings contribute the
// maximum. The decay is linear and the result is rounded to a whole point.
func RecencyScore(createdAt, now time.Time, windowDays int, maxScore float64) float64 {
	if windowDays <= 0 || maxScore <= 0 {
		return 0
	}
	days := math.Floor(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		// Clock skew can put CreatedAt slightly in the future; treat as new.
		days = 0
	}
	clamped := math.Min(days, float64(windowDays))
	return math.Max(0, math.Round((1-clamped/float64(windowDays))*maxScore))
}
