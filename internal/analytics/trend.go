package analytics

// Trend labels a month-over-month movement.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// ClassifyTrend compares a current-period count against the previous period.
// Total over all non-negative pairs; equal counts are stable.
func ClassifyTrend(thisPeriod, lastPeriod int) Trend {
	switch {
	case thisPeriod > lastPeriod:
		return TrendIncreasing
	case thisPeriod < lastPeriod:
		return TrendDecreasing
	default:
		return TrendStable
	}
}
