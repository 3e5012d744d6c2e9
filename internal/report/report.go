package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillview-dev/tillview/internal/model"
)

// Analyze buckets movements by calendar day over [start, end] inclusive and
// produces one DailySummary per day, most recent first. Days without
// movements still appear, carrying the previous day's closing balance
// forward. A non-empty filter set keeps only the days matching every
// filter. If start is after end the result is empty.
func Analyze(movements []model.CashMovement, start, end time.Time, filters FilterSet) []model.DailySummary {
	first := dayStart(start)
	last := dayStart(end)

	// The opening-balance lookup runs against the full history, not the
	// displayed range, so a range starting mid-history still seeds from the
	// true previous close.
	lastBalance := lastBalanceByDay(movements)

	buckets := make(map[time.Time][]model.CashMovement)
	for _, m := range movements {
		day := dayStart(m.Timestamp)
		if day.Before(first) || day.After(last) {
			continue
		}
		buckets[day] = append(buckets[day], m)
	}

	var summaries []model.DailySummary
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		opening := decimal.Zero
		if b, ok := lastBalance[day.AddDate(0, 0, -1)]; ok {
			opening = b
		}

		s := summarizeDay(day, buckets[day], opening)
		if filters.Matches(s) {
			summaries = append(summaries, s)
		}
	}

	// Most recent day first; the walk above built them ascending.
	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}
	return summaries
}

func summarizeDay(day time.Time, entries []model.CashMovement, opening decimal.Decimal) model.DailySummary {
	s := model.DailySummary{
		Date:           day,
		OpeningBalance: opening,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		ClosingBalance: opening,
		Discrepancies:  decimal.Zero,
	}

	if len(entries) == 0 {
		return s
	}

	sorted := make([]model.CashMovement, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	for _, m := range sorted {
		switch m.Category {
		case model.CategoryCashSale, model.CategoryCashIn:
			s.TotalIncome = s.TotalIncome.Add(m.Income)
		case model.CategoryCashOut, model.CategoryRefund, model.CategoryChangeFloat:
			s.TotalExpense = s.TotalExpense.Add(m.Expense.Abs())
		}

		if m.Difference.Valid {
			s.Discrepancies = s.Discrepancies.Add(m.Difference.Decimal)
		}

		if m.Category.Recognized() {
			s.Events = append(s.Events, model.InfoFor(m))
		}
	}

	// The export records a running balance on every row, so the day's final
	// row closes it. Among rows sharing the final timestamp the earliest
	// source row wins, same as the carry-forward index.
	last := sorted[0]
	for _, m := range sorted[1:] {
		if m.Timestamp.After(last.Timestamp) {
			last = m
		}
	}
	s.ClosingBalance = last.Balance
	s.Transactions = sorted

	return s
}

// lastBalanceByDay indexes each day's final recorded balance, keyed by the
// day's midnight. Among rows sharing the day's final timestamp the earliest
// source row wins.
func lastBalanceByDay(movements []model.CashMovement) map[time.Time]decimal.Decimal {
	latest := make(map[time.Time]time.Time)
	balances := make(map[time.Time]decimal.Decimal)
	for _, m := range movements {
		day := dayStart(m.Timestamp)
		if t, ok := latest[day]; ok && !m.Timestamp.After(t) {
			continue
		}
		latest[day] = m.Timestamp
		balances[day] = m.Balance
	}
	return balances
}

// dayStart truncates to midnight UTC of the timestamp's calendar day.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
