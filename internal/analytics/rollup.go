package analytics

import (
	"time"

	"github.com/clinicdesk/clinicdesk/internal/domain/billing"
	"github.com/clinicdesk/clinicdesk/internal/domain/expense"
)

// RevenueSummary holds three independent revenue figures relative to a
// reference time: same calendar day, rolling 7-day window, and same
// calendar month. A transaction can qualify for all three.
type RevenueSummary struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// RevenueRollup sums transaction totals into daily, weekly and monthly
// buckets. The weekly window is a rolling lookback from now, not a calendar
// week. Each bucket is an independent scan of the full set.
func RevenueRollup(transactions []*billing.Transaction, now time.Time) RevenueSummary {
	weekStart := now.AddDate(0, 0, -7)

	var s RevenueSummary
	for _, t := range transactions {
		if sameDay(t.OccurredAt, now) {
			s.Daily += t.TotalAmount
		}
		if !t.OccurredAt.Before(weekStart) && !t.OccurredAt.After(now) {
			s.Weekly += t.TotalAmount
		}
		if sameMonth(t.OccurredAt, now) {
			s.Monthly += t.TotalAmount
		}
	}
	return s
}

// ScopeKind selects the window of a financial summary.
type ScopeKind string

const (
	ScopeDay   ScopeKind = "day"
	ScopeMonth ScopeKind = "month"
)

// FinancialSummary is the expense/revenue rollup for one day or one month.
// Categories with no expenses in scope are absent from the map; consumers
// treat a missing key as zero.
type FinancialSummary struct {
	TotalExpenses      float64                      `json:"total_expenses"`
	TotalRevenue       float64                      `json:"total_revenue"`
	NetProfit          float64                      `json:"net_profit"`
	ExpensesByCategory map[expense.Category]float64 `json:"expenses_by_category"`
	TransactionCount   int                          `json:"transaction_count"`
	ExpenseCount       int                          `json:"expense_count"`
}

// ExpenseRollup summarizes expenses and completed-transaction revenue for
// the day or month containing scopeDate. Pending and confirmed transactions
// are excluded from revenue.
func ExpenseRollup(expenses []*expense.Expense, transactions []*billing.Transaction, scopeDate time.Time, kind ScopeKind) FinancialSummary {
	inScope := func(t time.Time) bool {
		if kind == ScopeDay {
			return sameDay(t, scopeDate)
		}
		return sameMonth(t, scopeDate)
	}

	s := FinancialSummary{ExpensesByCategory: make(map[expense.Category]float64)}
	for _, e := range expenses {
		if !inScope(e.Date) {
			continue
		}
		s.TotalExpenses += e.Amount
		s.ExpensesByCategory[e.Category] += e.Amount
		s.ExpenseCount++
	}
	for _, t := range transactions {
		if t.Status != billing.StatusCompleted || !inScope(t.OccurredAt) {
			continue
		}
		s.TotalRevenue += t.TotalAmount
		s.TransactionCount++
	}
	s.NetProfit = s.TotalRevenue - s.TotalExpenses
	return s
}
