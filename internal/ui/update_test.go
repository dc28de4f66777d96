package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/stockdesk/internal/catalog"
	"github.com/aristath/stockdesk/internal/dashboard"
)

func newTestModel(t *testing.T) (Model, *dashboard.Controller) {
	t.Helper()

	cat := catalog.DefaultCatalog()
	prices := catalog.DefaultPrices()
	require.NoError(t, catalog.Validate(cat, prices))

	ctrl := dashboard.New(prices)
	m := NewModel(ctrl, cat, prices, catalog.DefaultTrend(), zerolog.Nop(), 0, 0)

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return resized.(Model), ctrl
}

func keyPress(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = keyPress(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestUpdate_SelectAndValue(t *testing.T) {
	m, ctrl := newTestModel(t)

	// Cursor starts on RELIANCE; enter selects it and focuses the input.
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel, ok := ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, "RELIANCE", sel.Symbol)
	assert.True(t, m.inputFocused)

	m = typeText(m, "2750")
	assert.Equal(t, "2750", ctrl.BuyPriceText())

	v := ctrl.Valuation()
	require.True(t, v.OK)
	assert.Equal(t, 50.0, v.ProfitLoss)
	assert.Equal(t, dashboard.OutcomeProfit, v.Outcome())
}

func TestUpdate_CursorNavigation(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel, ok := ctrl.Selected()
	require.True(t, ok)
	assert.Equal(t, "INFY", sel.Symbol)

	// Cursor stops at the top.
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	for i := 0; i < 30; i++ {
		m = keyPress(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor)
}

func TestUpdate_ReselectionClearsInput(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "2750")
	require.True(t, ctrl.Valuation().OK)

	// Back to the list, re-select the same instrument.
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "", ctrl.BuyPriceText())
	assert.Equal(t, "", m.priceInput.Value())
	assert.False(t, ctrl.Valuation().OK)
}

func TestUpdate_SidebarToggleLeavesStateAlone(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "2750")
	before := ctrl.Valuation()

	// Toggle works while the input is focused too.
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, ctrl.SidebarExpanded())
	assert.Equal(t, "2750", ctrl.BuyPriceText())
	assert.Equal(t, before, ctrl.Valuation())
	assert.True(t, m.inputFocused)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, ctrl.SidebarExpanded())
}

func TestUpdate_GarbageInputSuppressesValuation(t *testing.T) {
	m, ctrl := newTestModel(t)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "2750x")

	assert.Equal(t, "2750x", ctrl.BuyPriceText())
	assert.False(t, ctrl.Valuation().OK)
}

func TestView_RendersWithoutSelection(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "RELIANCE")
	assert.Contains(t, out, "Select a company")
}

func TestView_RendersValuation(t *testing.T) {
	m, _ := newTestModel(t)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "2750")

	out := m.View()
	assert.Contains(t, out, "Profit")
	assert.Contains(t, out, "₹50.00")
}
