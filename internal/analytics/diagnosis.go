package analytics

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
)

const topN = 10

// DiagnosisStat is one row of the diagnosis frequency ranking.
type DiagnosisStat struct {
	Diagnosis  string  `json:"diagnosis"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	ThisMonth  int     `json:"this_month"`
	LastMonth  int     `json:"last_month"`
	Trend      Trend   `json:"trend"`
}

// DiagnosisFrequency ranks diagnoses across all patient visits by total
// occurrence count, with month-over-month trend relative to now. Visits with
// an empty diagnosis are skipped. Returns at most the top 10, ordered by
// count descending with ties kept in first-encounter order.
func DiagnosisFrequency(patients []*patient.Patient, now time.Time) []DiagnosisStat {
	lastYear, lastMonth := previousMonth(now)

	type bucket struct {
		label     string
		count     int
		thisMonth int
		lastMonth int
	}
	buckets := make(map[string]*bucket)
	var order []string
	grandTotal := 0

	for _, p := range patients {
		for _, v := range p.Visits {
			if v.Diagnosis == nil {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(*v.Diagnosis))
			if key == "" {
				continue
			}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{label: capitalize(key)}
				buckets[key] = b
				order = append(order, key)
			}
			b.count++
			grandTotal++
			if sameMonth(v.Date, now) {
				b.thisMonth++
			} else if inMonth(v.Date, lastYear, lastMonth) {
				b.lastMonth++
			}
		}
	}

	stats := make([]DiagnosisStat, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		pct := 0.0
		if grandTotal > 0 {
			pct = float64(b.count) / float64(grandTotal) * 100
		}
		stats = append(stats, DiagnosisStat{
			Diagnosis:  b.label,
			Count:      b.count,
			Percentage: pct,
			ThisMonth:  b.thisMonth,
			LastMonth:  b.lastMonth,
			Trend:      ClassifyTrend(b.thisMonth, b.lastMonth),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
