package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aristath/stockdesk/internal/catalog"
)

// Block elements for sub-character vertical resolution (1/8 to 8/8).
var blockChars = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderTrendChart renders the fixed trend series as a filled area
// chart built from Unicode block elements, with the point labels in a
// row underneath. Columns above the first point's value are colored
// upColor, columns below it downColor. Returns a multi-line string.
func RenderTrendChart(series catalog.TrendSeries, width, height int, upColor, downColor, labelColor lipgloss.Color) string {
	if len(series.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Each point owns an equal run of columns, so the chart reads as
	// labeled steps rather than a single spike per point.
	perPoint := width / len(series.Points)
	if perPoint < 1 {
		perPoint = 1
	}
	cols := make([]float64, 0, perPoint*len(series.Points))
	for _, p := range series.Points {
		for i := 0; i < perPoint; i++ {
			cols = append(cols, p.Value)
		}
	}

	baseline := series.Points[0].Value

	// Find min/max for normalization.
	minVal, maxVal := cols[0], cols[0]
	for _, v := range cols {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	// Total sub-cell levels across all rows.
	totalLevels := height * 8
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
	}

	// Scale each column to 1..totalLevels (at least 1 so every column is visible).
	scaled := make([]int, len(cols))
	for i, v := range cols {
		norm := (v - minVal) / valRange
		s := int(norm*float64(totalLevels-1)) + 1
		if s > totalLevels {
			s = totalLevels
		}
		scaled[i] = s
	}

	// Build the chart row by row, top to bottom.
	rows := make([]string, 0, height+1)
	for row := 0; row < height; row++ {
		rowBottom := (height - 1 - row) * 8

		var sb strings.Builder
		for col := 0; col < len(scaled); col++ {
			fill := scaled[col] - rowBottom
			if fill <= 0 {
				sb.WriteRune(' ')
				continue
			}
			if fill > 8 {
				fill = 8
			}

			ch := blockChars[fill]
			color := upColor
			if cols[col] < baseline {
				color = downColor
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(ch)))
		}
		rows = append(rows, sb.String())
	}

	rows = append(rows, renderLabelRow(series.Points, perPoint, labelColor))
	return strings.Join(rows, "\n")
}

// renderLabelRow centers each point label inside its run of columns.
func renderLabelRow(points []catalog.TrendPoint, perPoint int, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color)

	var sb strings.Builder
	for _, p := range points {
		label := p.Label
		if len(label) > perPoint {
			label = label[:perPoint]
		}
		pad := perPoint - len(label)
		left := pad / 2
		sb.WriteString(strings.Repeat(" ", left))
		sb.WriteString(style.Render(label))
		sb.WriteString(strings.Repeat(" ", pad-left))
	}
	return strings.TrimRight(sb.String(), " ")
}
