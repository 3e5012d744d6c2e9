package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventCategory classifies a cash movement by the event name the POS
// system exported. The recognized names form a closed set; anything else
// maps to CategoryOther while the raw name stays on the movement.
type EventCategory string

const (
	CategoryCashIn       EventCategory = "Bargeldeingang"        // non-sale deposit
	CategoryCashSale     EventCategory = "Bargeldverkauf"        // cash sale
	CategoryCashOut      EventCategory = "Bargeldauszahlung"     // manual withdrawal
	CategoryOpeningFloat EventCategory = "Anfangssaldo"          // declared day-start float
	CategoryClosingCount EventCategory = "Schlussbilanz"         // end-of-day reconciliation
	CategoryChangeFloat  EventCategory = "Wechselgeld in bar"    // change top-up
	CategoryRefund       EventCategory = "Bargeldrückerstattung" // cash refund to customer
	CategoryOther        EventCategory = ""
)

// Categories lists the recognized event categories in export order.
func Categories() []EventCategory {
	return []EventCategory{
		CategoryCashIn,
		CategoryCashSale,
		CategoryCashOut,
		CategoryOpeningFloat,
		CategoryClosingCount,
		CategoryChangeFloat,
		CategoryRefund,
	}
}

// CategoryOf maps an exported event name to its category, or CategoryOther.
func CategoryOf(name string) EventCategory {
	switch EventCategory(name) {
	case CategoryCashIn, CategoryCashSale, CategoryCashOut,
		CategoryOpeningFloat, CategoryClosingCount,
		CategoryChangeFloat, CategoryRefund:
		return EventCategory(name)
	default:
		return CategoryOther
	}
}

// Recognized reports whether the category is in the closed set.
func (c EventCategory) Recognized() bool {
	return c != CategoryOther
}

// CategoryInfo is a CashMovement reduced to the fields that matter for its
// category. Amount fields are Null unless the category carries them.
type CategoryInfo struct {
	Category  EventCategory
	Name      string
	Reason    string
	Note      string
	Timestamp time.Time
	Income    decimal.NullDecimal
	Expense   decimal.NullDecimal
	Balance   decimal.NullDecimal
	Expected  decimal.NullDecimal
}

// InfoFor projects a movement into its category view.
func InfoFor(m CashMovement) CategoryInfo {
	info := CategoryInfo{
		Category:  m.Category,
		Name:      m.RawName,
		Reason:    m.Reason,
		Note:      m.Note,
		Timestamp: m.Timestamp,
	}

	switch m.Category {
	case CategoryCashIn:
		info.Income = decimal.NullDecimal{Decimal: m.Income, Valid: true}
	case CategoryCashOut, CategoryRefund:
		info.Expense = decimal.NullDecimal{Decimal: m.Expense, Valid: true}
	case CategoryOpeningFloat:
		info.Balance = decimal.NullDecimal{Decimal: m.Balance, Valid: true}
	case CategoryClosingCount:
		info.Balance = decimal.NullDecimal{Decimal: m.Balance, Valid: true}
		info.Expected = m.Expected
	}
	return info
}
