package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/inventory"
)

// MedicationStat is one row of the medication sales ranking.
type MedicationStat struct {
	MedicationID  *uuid.UUID `json:"medication_id,omitempty"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	TotalSold     int        `json:"total_sold"`
	Revenue       float64    `json:"revenue"`
	CurrentStock  int        `json:"current_stock"`
	ProfitMargin  float64    `json:"profit_margin"`
	StockTurnover float64    `json:"stock_turnover"`
	ThisMonth     int        `json:"this_month"`
	LastMonth     int        `json:"last_month"`
	Trend         Trend      `json:"trend"`
}

// MedicationSalesRanking ranks medications by revenue across every line item
// of every transaction, regardless of transaction status. Catalog entries
// supply name, category, stock and cost price; line items whose medication
// is missing from the catalog fall back to the name recorded at sale time,
// category "Unknown" and cost 0. Top 10 by revenue, ties in first-encounter
// order.
func MedicationSalesRanking(transactions []*billing.Transaction, catalog []*inventory.Medication, now time.Time) []MedicationStat {
	lastYear, lastMonth := previousMonth(now)

	byID := make(map[uuid.UUID]*inventory.Medication, len(catalog))
	for _, m := range catalog {
		byID[m.ID] = m
	}

	type bucket struct {
		medicationID *uuid.UUID
		name         string
		totalSold    int
		revenue      float64
		thisMonth    int
		lastMonth    int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, t := range transactions {
		for _, li := range t.Items {
			var key string
			if li.MedicationID != nil {
				key = li.MedicationID.String()
			} else {
				key = "name:" + strings.ToLower(li.Name)
			}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{medicationID: li.MedicationID, name: li.Name}
				buckets[key] = b
				order = append(order, key)
			}
			b.totalSold += li.Quantity
			b.revenue += li.LineTotal
			if sameMonth(t.OccurredAt, now) {
				b.thisMonth += li.Quantity
			} else if inMonth(t.OccurredAt, lastYear, lastMonth) {
				b.lastMonth += li.Quantity
			}
		}
	}

	stats := make([]MedicationStat, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		name := b.name
		category := "Unknown"
		stock := 0
		costPrice := 0.0
		if b.medicationID != nil {
			if m, ok := byID[*b.medicationID]; ok {
				name = m.Name
				if m.Category != nil {
					category = *m.Category
				}
				stock = m.Stock
				if m.CostPrice != nil {
					costPrice = *m.CostPrice
				}
			}
		}

		margin := 0.0
		if costPrice > 0 && b.revenue > 0 {
			margin = (b.revenue - costPrice*float64(b.totalSold)) / b.revenue * 100
		}
		turnover := 0.0
		if stock > 0 {
			turnover = float64(b.totalSold) / float64(stock)
		}

		stats = append(stats, MedicationStat{
			MedicationID:  b.medicationID,
			Name:          name,
			Category:      category,
			TotalSold:     b.totalSold,
			Revenue:       b.revenue,
			CurrentStock:  stock,
			ProfitMargin:  margin,
			StockTurnover: turnover,
			ThisMonth:     b.thisMonth,
			LastMonth:     b.lastMonth,
			Trend:         ClassifyTrend(b.thisMonth, b.lastMonth),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Revenue > stats[j].Revenue })
	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}
