package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCategoryOf(t *testing.T) {
	for _, c := range Categories() {
		assert.Equal(t, c, CategoryOf(string(c)))
		assert.True(t, c.Recognized())
	}

	assert.Equal(t, CategoryOther, CategoryOf("Trinkgeld"))
	assert.Equal(t, CategoryOther, CategoryOf(""))
	assert.False(t, CategoryOther.Recognized())
}

func TestInfoFor(t *testing.T) {
	base := CashMovement{
		Timestamp: time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC),
		Reason:    "Grund",
		Note:      "Notiz",
		Income:    dec("10"),
		Expense:   dec("-4"),
		Balance:   dec("106"),
		Expected:  decimal.NullDecimal{Decimal: dec("110"), Valid: true},
	}

	cashIn := base
	cashIn.Category = CategoryCashIn
	cashIn.RawName = "Bargeldeingang"
	info := InfoFor(cashIn)
	assert.Equal(t, "Bargeldeingang", info.Name)
	assert.Equal(t, "Grund", info.Reason)
	require.True(t, info.Income.Valid)
	assert.True(t, info.Income.Decimal.Equal(dec("10")))
	assert.False(t, info.Expense.Valid)
	assert.False(t, info.Balance.Valid)

	for _, c := range []EventCategory{CategoryCashOut, CategoryRefund} {
		out := base
		out.Category = c
		info = InfoFor(out)
		require.True(t, info.Expense.Valid, "%s carries its expense", c)
		assert.True(t, info.Expense.Decimal.Equal(dec("-4")))
		assert.False(t, info.Income.Valid)
	}

	opening := base
	opening.Category = CategoryOpeningFloat
	info = InfoFor(opening)
	require.True(t, info.Balance.Valid)
	assert.True(t, info.Balance.Decimal.Equal(dec("106")))
	assert.False(t, info.Expected.Valid, "opening float has no reconciliation target")

	closing := base
	closing.Category = CategoryClosingCount
	info = InfoFor(closing)
	require.True(t, info.Balance.Valid)
	require.True(t, info.Expected.Valid)
	assert.True(t, info.Expected.Decimal.Equal(dec("110")))

	sale := base
	sale.Category = CategoryCashSale
	info = InfoFor(sale)
	assert.False(t, info.Income.Valid, "sales appear in totals, not in the category view amounts")
	assert.False(t, info.Balance.Valid)
}

func TestHasEvent(t *testing.T) {
	s := DailySummary{
		Events: []CategoryInfo{
			{Category: CategoryOpeningFloat},
			{Category: CategoryCashSale},
		},
	}

	assert.True(t, s.HasEvent(CategoryOpeningFloat))
	assert.True(t, s.HasEvent(CategoryCashSale))
	assert.False(t, s.HasEvent(CategoryClosingCount))
}
