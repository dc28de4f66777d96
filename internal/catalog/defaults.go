package catalog

// Built-in dataset: the NSE top-10 plus a handful of US symbols, with
// mock reference prices. Used whenever no catalog file is configured.

// DefaultCatalog returns the built-in instrument directory.
func DefaultCatalog() Catalog {
	return Catalog{
		Groups: []Group{
			{
				Label:    "NSE",
				Currency: "INR",
				Instruments: []Instrument{
					{Name: "Reliance Industries Ltd", Symbol: "RELIANCE"},
					{Name: "Tata Consultancy Services", Symbol: "TCS"},
					{Name: "Infosys Ltd", Symbol: "INFY"},
					{Name: "HDFC Bank Ltd", Symbol: "HDFCBANK"},
					{Name: "ICICI Bank Ltd", Symbol: "ICICIBANK"},
					{Name: "State Bank of India", Symbol: "SBIN"},
					{Name: "Bajaj Finance Ltd", Symbol: "BAJFINANCE"},
					{Name: "Larsen & Toubro Ltd", Symbol: "LT"},
					{Name: "ITC Ltd", Symbol: "ITC"},
					{Name: "Bharti Airtel Ltd", Symbol: "BHARTIARTL"},
				},
			},
			{
				Label:    "US",
				Currency: "USD",
				Instruments: []Instrument{
					{Name: "Apple Inc", Symbol: "AAPL"},
					{Name: "Microsoft Corp", Symbol: "MSFT"},
					{Name: "Alphabet Inc", Symbol: "GOOGL"},
					{Name: "Tesla Inc", Symbol: "TSLA"},
				},
			},
		},
	}
}

// DefaultPrices returns the built-in reference price table.
func DefaultPrices() PriceTable {
	return PriceTable{
		"RELIANCE":   2800,
		"TCS":        3900,
		"INFY":       1520,
		"HDFCBANK":   1655,
		"ICICIBANK":  1210,
		"SBIN":       845,
		"BAJFINANCE": 6920,
		"LT":         3580,
		"ITC":        465,
		"BHARTIARTL": 1540,
		"AAPL":       195,
		"MSFT":       428,
		"GOOGL":      172,
		"TSLA":       248,
	}
}

// DefaultTrend returns the fixed weekly series for the chart panel.
func DefaultTrend() TrendSeries {
	return TrendSeries{
		Symbol: "RELIANCE",
		Points: []TrendPoint{
			{Label: "Mon", Value: 2752.40},
			{Label: "Tue", Value: 2781.10},
			{Label: "Wed", Value: 2769.85},
			{Label: "Thu", Value: 2804.60},
			{Label: "Fri", Value: 2800.00},
		},
	}
}
