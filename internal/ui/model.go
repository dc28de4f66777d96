package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/aristath/stockdesk/internal/catalog"
	"github.com/aristath/stockdesk/internal/dashboard"
)

// Model is the rendering collaborator around the dashboard controller.
// It translates key events into controller operations and re-reads the
// controller state on every View call; it holds no valuation state of
// its own.
type Model struct {
	ctrl   *dashboard.Controller
	cat    catalog.Catalog
	prices catalog.PriceTable
	trend  catalog.TrendSeries
	log    zerolog.Logger

	// UI state
	width     int
	height    int
	maxWidth  int
	maxHeight int
	ready     bool

	// Sidebar cursor over the flattened instrument list.
	cursor int

	// Buy-price entry
	priceInput   textinput.Model
	inputFocused bool
}

func NewModel(ctrl *dashboard.Controller, cat catalog.Catalog, prices catalog.PriceTable, trend catalog.TrendSeries, log zerolog.Logger, maxWidth, maxHeight int) Model {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = "❯ "
	ti.CharLimit = 16
	ti.Width = 14

	return Model{
		ctrl:       ctrl,
		cat:        cat,
		prices:     prices,
		trend:      trend,
		log:        log,
		maxWidth:   maxWidth,
		maxHeight:  maxHeight,
		priceInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// instruments returns the catalog flattened in display order, which is
// the coordinate space of the sidebar cursor.
func (m Model) instruments() []catalog.Instrument {
	return m.cat.Instruments()
}
