package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovement is one parsed row of a POS cash-book export.
type CashMovement struct {
	Timestamp  time.Time // minute precision, from the combined date/time cell
	Category   EventCategory
	RawName    string // event name exactly as exported, kept for display
	Reason     string
	Note       string
	Income     decimal.Decimal     // cash added by this movement, zero if none
	Expense    decimal.Decimal     // cash removed, stored negative as exported
	Balance    decimal.Decimal     // drawer balance recorded on the row
	Expected   decimal.NullDecimal // reconciliation target, closing counts only
	Difference decimal.NullDecimal // recorded minus expected, closing counts only
}
