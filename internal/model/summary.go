package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is the reconciliation result for one calendar day.
// Transactions and Events are chronologically ascending; an empty day has
// zero totals and ClosingBalance equal to OpeningBalance.
type DailySummary struct {
	Date           time.Time // midnight of the day
	OpeningBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal // absolute value, never negative
	ClosingBalance decimal.Decimal
	Discrepancies  decimal.Decimal // sum of recorded closing-count deviations
	Transactions   []CashMovement
	Events         []CategoryInfo
}

// HasEvent reports whether any of the day's recognized events has the
// given category.
func (s DailySummary) HasEvent(c EventCategory) bool {
	for _, e := range s.Events {
		if e.Category == c {
			return true
		}
	}
	return false
}
