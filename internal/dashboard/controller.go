// Package dashboard implements the selection and valuation rules of
// the stock dashboard: which instrument is selected, what the user has
// typed into the buy-price field, whether the sidebar is expanded, and
// the profit/loss figure derived from all of that.
package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/aristath/stockdesk/internal/catalog"
)

// Controller owns all interactive dashboard state. It is a plain
// synchronous state holder: every method completes immediately and the
// caller re-reads state afterwards. Not safe for concurrent use; the
// dashboard is single-actor by design.
type Controller struct {
	prices catalog.PriceTable

	selected        *catalog.Instrument
	buyPriceText    string
	sidebarExpanded bool
}

// New creates a controller with the documented initial state: nothing
// selected, empty buy-price field, sidebar expanded.
func New(prices catalog.PriceTable) *Controller {
	return &Controller{
		prices:          prices,
		sidebarExpanded: true,
	}
}

// ToggleSidebar flips the sidebar collapse state. Purely cosmetic:
// selection and the buy-price field are untouched.
func (c *Controller) ToggleSidebar() {
	c.sidebarExpanded = !c.sidebarExpanded
}

// SidebarExpanded reports the current sidebar collapse state.
func (c *Controller) SidebarExpanded() bool {
	return c.sidebarExpanded
}

// SelectInstrument makes inst the selected instrument and clears the
// buy-price field. The field is cleared even when inst is already
// selected: re-selection always discards the prior entry, so a stale
// price can never be compared against a freshly picked instrument.
// Callers only offer catalog members, so membership is not re-checked.
func (c *Controller) SelectInstrument(inst catalog.Instrument) {
	c.selected = &inst
	c.buyPriceText = ""
}

// Selected returns the selected instrument, if any.
func (c *Controller) Selected() (catalog.Instrument, bool) {
	if c.selected == nil {
		return catalog.Instrument{}, false
	}
	return *c.selected, true
}

// SetBuyPriceText stores the raw buy-price field content verbatim.
// No parsing or clamping happens here; the text is interpreted only
// when a valuation is read.
func (c *Controller) SetBuyPriceText(text string) {
	c.buyPriceText = text
}

// BuyPriceText returns the raw buy-price field content.
func (c *Controller) BuyPriceText() string {
	return c.buyPriceText
}

// Valuation derives the current profit/loss figure. It is recomputed
// from the raw field text on every call rather than cached, so the
// figure can never drift from what the user sees in the input.
//
// The figure is defined only when an instrument is selected and the
// field parses to a finite number; empty or unparseable text means
// "not yet entered", which is not an error. The raw value carries no
// rounding; two-decimal display is a presentation concern.
func (c *Controller) Valuation() Valuation {
	if c.selected == nil {
		return Valuation{}
	}
	buy, err := strconv.ParseFloat(strings.TrimSpace(c.buyPriceText), 64)
	if err != nil || math.IsNaN(buy) || math.IsInf(buy, 0) {
		return Valuation{}
	}
	// Every catalogued symbol has a price; Validate guarantees it at startup.
	reference := c.prices[c.selected.Symbol]
	return Valuation{ProfitLoss: reference - buy, OK: true}
}
