// Package catalog holds the static instrument catalog, the reference
// price table and the fixed trend series. All of it is immutable
// configuration supplied at startup; nothing here changes while the
// dashboard runs.
package catalog

import "fmt"

// Instrument is a tradable entity identified by a unique symbol.
type Instrument struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

// Group is an ordered partition of the catalog (one market). The
// currency code is presentation-only: it picks the symbol shown next
// to valuation figures for instruments in the group.
type Group struct {
	Label       string       `yaml:"label"`
	Currency    string       `yaml:"currency"`
	Instruments []Instrument `yaml:"instruments"`
}

// Catalog is the full instrument directory. Group order and the order
// of instruments within each group are fixed and meaningful for display.
type Catalog struct {
	Groups []Group `yaml:"groups"`
}

// PriceTable maps symbol -> static reference price.
type PriceTable map[string]float64

// TrendPoint is one labeled sample of the decorative trend chart.
type TrendPoint struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// TrendSeries is the fixed weekly series rendered in the chart panel.
// It is unrelated to the sidebar selection.
type TrendSeries struct {
	Symbol string       `yaml:"symbol"`
	Points []TrendPoint `yaml:"points"`
}

// Instruments returns all catalog instruments in display order.
func (c Catalog) Instruments() []Instrument {
	var out []Instrument
	for _, g := range c.Groups {
		out = append(out, g.Instruments...)
	}
	return out
}

// Currency returns the currency code of the group containing symbol,
// or "" when the symbol is not catalogued.
func (c Catalog) Currency(symbol string) string {
	for _, g := range c.Groups {
		for _, inst := range g.Instruments {
			if inst.Symbol == symbol {
				return g.Currency
			}
		}
	}
	return ""
}

// Validate checks that the catalog and price table are consistent:
// every catalogued symbol is unique and has a positive reference
// price. A gap is a configuration defect, so the caller should refuse
// to start rather than limp along.
func Validate(c Catalog, prices PriceTable) error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("catalog has no groups")
	}
	seen := make(map[string]bool)
	for _, g := range c.Groups {
		if g.Currency == "" {
			return fmt.Errorf("group %q has no currency code", g.Label)
		}
		for _, inst := range g.Instruments {
			if inst.Symbol == "" {
				return fmt.Errorf("group %q contains an instrument with no symbol", g.Label)
			}
			if seen[inst.Symbol] {
				return fmt.Errorf("duplicate symbol %q in catalog", inst.Symbol)
			}
			seen[inst.Symbol] = true

			price, ok := prices[inst.Symbol]
			if !ok {
				return fmt.Errorf("no reference price for catalogued symbol %q", inst.Symbol)
			}
			if price <= 0 {
				return fmt.Errorf("reference price for %q must be positive, got %v", inst.Symbol, price)
			}
		}
	}
	return nil
}
