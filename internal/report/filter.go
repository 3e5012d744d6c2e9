package report

import (
	"fmt"

	"github.com/tillview-dev/tillview/internal/model"
)

// Filter is a named day-inclusion predicate, evaluated against a single
// day's own events and transactions. The names match the source system's
// filter panel verbatim.
type Filter string

const (
	FilterNoOpeningFloat Filter = "kein Anfangssaldo"
	FilterNoClosingCount Filter = "keine Schlussbilanz"
	FilterInactive       Filter = "Kasse nicht aktiv"
	FilterNoCashOut      Filter = "keine Bargeldauszahlung"
	FilterOpeningFloat   Filter = "Anfangssaldo vorhanden"
	FilterClosingCount   Filter = "Schlussbilanz vorhanden"
	FilterCashOut        Filter = "Bargeldauszahlung vorhanden"
	FilterCashIn         Filter = "Bargeldeingang vermerkt"
	FilterRefund         Filter = "Bargeldrückerstattung vermerkt"
)

// Filters lists every known filter in panel order.
func Filters() []Filter {
	return []Filter{
		FilterNoOpeningFloat,
		FilterNoClosingCount,
		FilterInactive,
		FilterNoCashOut,
		FilterOpeningFloat,
		FilterClosingCount,
		FilterCashOut,
		FilterCashIn,
		FilterRefund,
	}
}

// Describe returns a one-line description of the filter.
func (f Filter) Describe() string {
	switch f {
	case FilterNoOpeningFloat:
		return "Tage ohne Anfangssaldo"
	case FilterNoClosingCount:
		return "Tage ohne Schlussbilanz"
	case FilterInactive:
		return "Tage ohne Kassenbewegungen"
	case FilterNoCashOut:
		return "Tage ohne Bargeldauszahlung"
	case FilterOpeningFloat:
		return "Tage mit Anfangssaldo"
	case FilterClosingCount:
		return "Tage mit Schlussbilanz"
	case FilterCashOut:
		return "Tage mit Bargeldauszahlung"
	case FilterCashIn:
		return "Tage mit Bargeldeingang"
	case FilterRefund:
		return "Tage mit Bargeldrückerstattung"
	default:
		return ""
	}
}

// ParseFilter validates a filter name.
func ParseFilter(name string) (Filter, error) {
	f := Filter(name)
	for _, known := range Filters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", name)
}

// Matches reports whether the day satisfies this filter.
func (f Filter) Matches(s model.DailySummary) bool {
	switch f {
	case FilterNoOpeningFloat:
		return !s.HasEvent(model.CategoryOpeningFloat)
	case FilterNoClosingCount:
		return !s.HasEvent(model.CategoryClosingCount)
	case FilterInactive:
		return len(s.Transactions) == 0
	case FilterNoCashOut:
		return !s.HasEvent(model.CategoryCashOut)
	case FilterOpeningFloat:
		return s.HasEvent(model.CategoryOpeningFloat)
	case FilterClosingCount:
		return s.HasEvent(model.CategoryClosingCount)
	case FilterCashOut:
		return s.HasEvent(model.CategoryCashOut)
	case FilterCashIn:
		return s.HasEvent(model.CategoryCashIn)
	case FilterRefund:
		return s.HasEvent(model.CategoryRefund)
	default:
		return true
	}
}

// FilterSet is a conjunction of filters. An empty set matches every day.
type FilterSet []Filter

// ParseFilterSet validates a list of filter names.
func ParseFilterSet(names []string) (FilterSet, error) {
	var set FilterSet
	for _, name := range names {
		f, err := ParseFilter(name)
		if err != nil {
			return nil, err
		}
		set = append(set, f)
	}
	return set, nil
}

// Matches reports whether the day satisfies every filter in the set.
func (fs FilterSet) Matches(s model.DailySummary) bool {
	for _, f := range fs {
		if !f.Matches(s) {
			return false
		}
	}
	return true
}
