package usecase

import "github.com/luckylamd/flight-search-engine/internal/domain"

// DefaultVisibleResults is the collapsed page size of the result list.
const DefaultVisibleResults = 15

// ResultView tracks the collapsed/expanded state of the result list. The
// list starts collapsed to the first DefaultVisibleResults flights and
// expands to the full list on explicit request; it collapses again
// whenever the flight set, filters, or sort change.
type ResultView struct {
	showAll bool
}

// NewResultView creates a collapsed result view.
func NewResultView() *ResultView {
	return &ResultView{}
}

// ShowAll expands the view to the full result list.
func (v *ResultView) ShowAll() {
	v.showAll = true
}

// Reset collapses the view. Call on every flight-set, filter, or sort
// change.
func (v *ResultView) Reset() {
	v.showAll = false
}

// Expanded reports whether the full list is visible.
func (v *ResultView) Expanded() bool {
	return v.showAll
}

// Visible returns the subset of flights to display: the full list when
// expanded (or short enough), otherwise the first DefaultVisibleResults.
func (v *ResultView) Visible(flights []domain.Flight) []domain.Flight {
	if v.showAll || len(flights) <= DefaultVisibleResults {
		return flights
	}
	return flights[:DefaultVisibleResults]
}
