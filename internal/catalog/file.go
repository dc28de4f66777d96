package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog override. Any section left
// out falls back to the built-in dataset.
type File struct {
	Groups []Group     `yaml:"groups"`
	Prices PriceTable  `yaml:"prices"`
	Trend  TrendSeries `yaml:"trend"`
}

// LoadFile reads a YAML catalog file and merges it with the built-in
// defaults. The result is validated before being returned, so a bad
// file fails at startup rather than mid-session.
func LoadFile(path string) (Catalog, PriceTable, TrendSeries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, nil, TrendSeries{}, fmt.Errorf("reading catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, nil, TrendSeries{}, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	cat := DefaultCatalog()
	if len(f.Groups) > 0 {
		cat = Catalog{Groups: f.Groups}
	}
	prices := DefaultPrices()
	if len(f.Prices) > 0 {
		prices = f.Prices
	}
	trend := DefaultTrend()
	if len(f.Trend.Points) > 0 {
		trend = f.Trend
	}

	if err := Validate(cat, prices); err != nil {
		return Catalog{}, nil, TrendSeries{}, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return cat, prices, trend, nil
}
