package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/aristath/stockdesk/internal/dashboard"
	"github.com/aristath/stockdesk/internal/theme"
)

const (
	sidebarExpandedWidth  = 32
	sidebarCollapsedWidth = 14
	chartHeight           = 8
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	t := theme.Default

	sidebar := m.viewSidebar()

	mainWidth := m.width - lipgloss.Width(sidebar)
	main := lipgloss.NewStyle().
		Width(mainWidth).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			m.viewHeader(mainWidth-6),
			"",
			m.viewValuation(),
			"",
			m.viewChart(mainWidth-6),
		))

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	page := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Background(t.Base)

	return page.Render(body)
}

func (m Model) viewSidebar() string {
	t := theme.Default

	width := sidebarExpandedWidth
	if !m.ctrl.SidebarExpanded() {
		width = sidebarCollapsedWidth
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.Subtext)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Base).Background(t.Primary).Bold(true)

	selected, hasSelection := m.ctrl.Selected()

	var lines []string
	flat := 0
	for _, g := range m.cat.Groups {
		lines = append(lines, headerStyle.Render(strings.ToUpper(g.Label)))
		for _, inst := range g.Instruments {
			label := inst.Symbol
			if m.ctrl.SidebarExpanded() {
				label = fmt.Sprintf("%-10s %s", inst.Symbol, truncate(inst.Name, width-16))
			}

			marker := "  "
			if hasSelection && selected.Symbol == inst.Symbol {
				marker = "● "
			}

			style := rowStyle
			if flat == m.cursor && !m.inputFocused {
				style = cursorStyle
			}
			lines = append(lines, style.Render(marker+label))
			flat++
		}
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.height).
		Padding(1, 2).
		Background(t.Surface).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewHeader(width int) string {
	t := theme.Default

	title := theme.GradientText(renderFiglet("stockdesk"), t.Primary, t.Accent)
	help := lipgloss.NewStyle().Foreground(t.Muted).
		Render("↑/↓ move · enter select · tab sidebar · esc back · q quit")
	sep := theme.GradientText(strings.Repeat("─", max(width, 1)), t.Primary, t.Accent)

	return lipgloss.JoinVertical(lipgloss.Left, title, help, sep)
}

func (m Model) viewValuation() string {
	t := theme.Default

	selected, ok := m.ctrl.Selected()
	if !ok {
		return lipgloss.NewStyle().Foreground(t.Muted).
			Render("Select a company from the sidebar to run a what-if comparison.")
	}

	currency := m.cat.Currency(selected.Symbol)

	name := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(selected.Name)
	symbol := lipgloss.NewStyle().Foreground(t.Subtext).Render(" · " + selected.Symbol)

	reference := lipgloss.NewStyle().Foreground(t.Subtext).
		Render(fmt.Sprintf("Reference price  %s", FormatAmount(m.prices[selected.Symbol], currency)))

	inputLabel := lipgloss.NewStyle().Foreground(t.Info).Render("Buy price")
	inputRow := lipgloss.JoinHorizontal(lipgloss.Top, inputLabel, "  ", m.priceInput.View())

	lines := []string{name + symbol, reference, "", inputRow, ""}

	v := m.ctrl.Valuation()
	if !v.OK {
		hint := lipgloss.NewStyle().Foreground(t.Muted).
			Render("Enter a buy price to compare against the reference.")
		lines = append(lines, hint)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	var color lipgloss.Color
	switch v.Outcome() {
	case dashboard.OutcomeProfit:
		color = t.Profit
	case dashboard.OutcomeLoss:
		color = t.Loss
	default:
		color = t.Info
	}

	display := FormatAmount(math.Abs(v.ProfitLoss), currency)
	label := lipgloss.NewStyle().Foreground(color).Bold(true).
		Render(fmt.Sprintf("%s · %s", v.Outcome().String(), display))
	// The figlet font only carries ASCII, so the big figure drops the
	// currency grapheme; the exact display string sits on the label row.
	amount := lipgloss.NewStyle().Foreground(color).
		Render(renderFiglet(fmt.Sprintf("%.2f", math.Abs(v.ProfitLoss))))

	lines = append(lines, label, amount)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewChart(width int) string {
	t := theme.Default

	title := lipgloss.NewStyle().Foreground(t.Info).
		Render(fmt.Sprintf("%s · last week", m.trend.Symbol))
	chart := RenderTrendChart(m.trend, max(width, 10), chartHeight, t.Profit, t.Loss, t.Muted)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", chart)
}

// renderFiglet renders text using go-figure's standard font.
func renderFiglet(text string) string {
	fig := figure.NewFigure(text, "", false)
	return strings.Join(fig.Slicify(), "\n")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
